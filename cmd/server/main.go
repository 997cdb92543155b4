// Package main implements the sari-sari store API server. The serve
// command runs the HTTP API; the migrate command manages the schema.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/sarisari-api/internal/config"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sarisari-api",
		Short:         "Sari-sari store inventory API",
		Long:          "CRUD API for students, products, suppliers and ice cream with JSON/XML responses and token authentication.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to a YAML config file (default: ./config.yaml if present)")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	return root
}

// bootstrap loads configuration and sets up structured logging.
func bootstrap(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"auto_migrate", cfg.Database.AutoMigrate)
	return cfg, log, nil
}
