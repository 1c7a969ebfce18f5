package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
	"github.com/smartcare-id/admin-console/internal/resttest"
	"github.com/smartcare-id/admin-console/internal/testutil"
)

func newService(t *testing.T) (*resttest.Server, *Service) {
	t.Helper()
	backend := resttest.NewServer("key", testutil.NopLogger())
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)
	client := rest.NewClient(ts.URL, "key", testutil.NopLogger())
	return backend, New(client, testutil.NopLogger())
}

func TestListNewestFirst(t *testing.T) {
	backend, service := newService(t)
	require.NoError(t, backend.Seed(model.TableUsers,
		model.User{ID: "u1", Nama: "Budi", CreatedAt: "2025-01-01T00:00:00Z"},
		model.User{ID: "u2", Nama: "Siti", CreatedAt: "2025-02-01T00:00:00Z"},
	))

	users, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "u1", users[1].ID)
}

func TestListBackendFailure(t *testing.T) {
	backend, service := newService(t)
	backend.FailWith(http.MethodGet, model.TableUsers, http.StatusServiceUnavailable)

	users, err := service.List(context.Background())
	var reqErr *rest.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusServiceUnavailable, reqErr.Status)
	assert.Nil(t, users)
}
