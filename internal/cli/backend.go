package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smartcare-id/admin-console/internal/httpserver"
	"github.com/smartcare-id/admin-console/internal/resttest"
)

// fake-backend serves an in-memory PostgREST lookalike, useful for demoing
// the console without a Supabase project.
func newFakeBackendCmd() *cobra.Command {
	var port int
	var apiKey string

	cmd := &cobra.Command{
		Use:   "fake-backend",
		Short: "Serve an in-memory stand-in for the Supabase backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := newLogger(cfg.Verbose)
			backend := resttest.NewServer(apiKey, logger)

			serverCfg := httpserver.DefaultConfig()
			serverCfg.Port = port
			server := httpserver.New(backend.Handler(), serverCfg, logger)

			fmt.Printf("Serving fake backend on :%d (anon key %q)\n", port, apiKey)
			fmt.Printf("Point the console at it with --supabase-url http://localhost:%d --anon-key %s\n", port, apiKey)
			return server.Run(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 54321, "Listen port")
	cmd.Flags().StringVar(&apiKey, "api-key", "local-dev-key", "Anon key the fake backend requires")

	return cmd
}
