package factory

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/smartcare-id/admin-console/internal/config"
	"github.com/smartcare-id/admin-console/internal/console"
	"github.com/smartcare-id/admin-console/internal/dependencies/clock"
	"github.com/smartcare-id/admin-console/internal/rest"
	"github.com/smartcare-id/admin-console/internal/services/catalog"
	"github.com/smartcare-id/admin-console/internal/services/directory"
	"github.com/smartcare-id/admin-console/internal/services/feedback"
	"github.com/smartcare-id/admin-console/internal/services/maintenance"
	"github.com/smartcare-id/admin-console/internal/services/order"
	"github.com/smartcare-id/admin-console/internal/services/partner"
	"github.com/smartcare-id/admin-console/internal/services/report"
	"github.com/smartcare-id/admin-console/internal/services/session"
	"github.com/smartcare-id/admin-console/internal/storage"
	"github.com/smartcare-id/admin-console/internal/storage/memory"
	redisstorage "github.com/smartcare-id/admin-console/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock
	Client  *rest.Client

	Services console.Services
	Shell    *console.Shell
}

// Config holds configuration for the application factory
type Config struct {
	// Settings is the resolved application config (required)
	Settings *config.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Out receives console output (optional, defaults to stdout)
	Out io.Writer
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.Settings == nil {
		return nil, errors.New("Settings is required")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	var store storage.Storage
	switch cfg.Settings.StorageType {
	case config.StorageMemory:
		store = memory.New()
	case config.StorageRedis:
		redisStore, err := redisstorage.New(redisstorage.Config{URL: cfg.Settings.RedisURL})
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	client := rest.NewClient(cfg.Settings.SupabaseURL, cfg.Settings.AnonKey, logger)

	return newWithDependencies(store, clock.New(), client, logger, out), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, client *rest.Client, logger *slog.Logger, out io.Writer) *App {
	services := console.Services{
		Session:     session.New(store, clk, logger),
		Directory:   directory.New(client, logger),
		Partner:     partner.New(client, logger),
		Catalog:     catalog.New(client, logger),
		Order:       order.New(client, logger),
		Feedback:    feedback.New(client, logger),
		Report:      report.New(client, logger),
		Maintenance: maintenance.New(client, logger),
	}

	return &App{
		Storage:  store,
		Clock:    clk,
		Client:   client,
		Services: services,
		Shell:    console.NewShell(services, logger, out),
	}
}
