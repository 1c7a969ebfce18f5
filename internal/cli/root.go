package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcare-id/admin-console/internal/config"
	"github.com/smartcare-id/admin-console/internal/factory"
)

var (
	cfg *config.Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = config.Default()
	var configFile string
	var outputFormat string

	rootCmd := &cobra.Command{
		Use:   "smartcare-admin",
		Short: "Admin console for the SmartCare service marketplace",
		Long: `smartcare-admin manages the SmartCare marketplace backend: partner
verification, user and service listings, order monitoring, complaint
handling, and full data resets.

Data lives in a Supabase (PostgREST) backend; admin credentials and the
login session are kept in local storage (in-memory or Redis).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.LoadFile(configFile); err != nil {
					return err
				}
			}

			var err error
			app, err = factory.New(factory.Config{
				Settings: cfg,
				Logger:   newLogger(cfg.Verbose),
			})
			return err
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.SupabaseURL, "supabase-url", cfg.SupabaseURL, "Backend base URL (env: SMARTCARE_SUPABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.AnonKey, "anon-key", cfg.AnonKey, "Backend anon key (env: SMARTCARE_SUPABASE_ANON_KEY)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Session storage: memory, redis (env: SMARTCARE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for session storage (env: SMARTCARE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")

	rootCmd.AddCommand(newConsoleCmd())
	rootCmd.AddCommand(newListCmd(&outputFormat))
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newReportCmd(&outputFormat))
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newFakeBackendCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
