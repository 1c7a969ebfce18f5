package factory

import (
	"bytes"
	"net/http/httptest"
	"time"

	"github.com/smartcare-id/admin-console/internal/dependencies/mocks"
	"github.com/smartcare-id/admin-console/internal/rest"
	"github.com/smartcare-id/admin-console/internal/resttest"
	"github.com/smartcare-id/admin-console/internal/storage/memory"
	"github.com/smartcare-id/admin-console/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Backend is the fake PostgREST server the app is wired against
	Backend *resttest.Server
	// Out captures console output
	Out *bytes.Buffer

	MockClock *mocks.MockClock

	server *httptest.Server
}

// NewTestApp creates an App wired against an in-process fake backend and
// in-memory session storage. Call Close when done.
func NewTestApp() *TestApp {
	logger := testutil.NopLogger()

	backend := resttest.NewServer("test-key", logger)
	server := httptest.NewServer(backend.Handler())
	client := rest.NewClient(server.URL, "test-key", logger)

	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	out := &bytes.Buffer{}

	app := newWithDependencies(memory.New(), mockClock, client, logger, out)

	return &TestApp{
		App:       app,
		Backend:   backend,
		Out:       out,
		MockClock: mockClock,
		server:    server,
	}
}

// Close shuts down the fake backend
func (t *TestApp) Close() {
	t.server.Close()
}
