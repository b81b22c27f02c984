// Package cmd provides the admin commands of the paluwagan CLI.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	portssvc "github.com/SscSPs/paluwagan_app/internal/core/ports/services"
	"github.com/SscSPs/paluwagan_app/internal/core/services"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/SscSPs/paluwagan_app/internal/platform/clock"
	"github.com/SscSPs/paluwagan_app/internal/platform/config"
	"github.com/SscSPs/paluwagan_app/internal/platform/store"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command has connected the store.
type app struct {
	storeDriver string
	boltPath    string
	actorID     string
	debug       bool

	services   *portssvc.ServiceContainer
	closeStore func()
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "paluwagan",
		Short: "Administer the paluwagan savings and loan ledger",
		Long: `paluwagan runs the ledger's administrative jobs against the configured record store.

Example:
  paluwagan accrue-interest
  paluwagan archive --year 2024
  paluwagan running-balance --year 2025 --desc
  paluwagan starting-balance set --year 2025 --amount 15000`,
		SilenceUsage:      true,
		PersistentPreRunE: a.connect,
	}

	rootCmd.PersistentFlags().StringVar(&a.storeDriver, "store", "", "record store: postgres or bolt (default from STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&a.boltPath, "bolt-path", "", "bolt file path (default from BOLT_PATH)")
	rootCmd.PersistentFlags().StringVar(&a.actorID, "actor", "cli", "user id recorded as the actor of changes")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newAccrueInterestCmd(a),
		newArchiveCmd(a),
		newRunningBalanceCmd(a),
		newStartingBalanceCmd(a),
		newDevTokenCmd(a),
	)
	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupLogging installs a text logger on stderr as the default.
func (a *app) setupLogging() *slog.Logger {
	logLevel := slog.LevelInfo
	if a.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}

// connect sets up logging, loads configuration and opens the store.
func (a *app) connect(cmd *cobra.Command, args []string) error {
	logger := a.setupLogging()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// Flags win over the environment
	if a.storeDriver != "" {
		cfg.StoreDriver = strings.ToLower(a.storeDriver)
	}
	if a.boltPath != "" {
		cfg.BoltPath = a.boltPath
	}

	ctx := middleware.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	repos, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	a.closeStore = closeStore
	a.services = services.NewServiceContainer(cfg, repos, clock.InLocation(clock.System{}, cfg.FiscalLocation))
	slog.Debug("Store connected", slog.String("driver", cfg.StoreDriver))
	return nil
}

// run wraps a subcommand body so the store is released even when the body fails.
// Cobra skips post-run hooks after an error.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			if a.closeStore != nil {
				a.closeStore()
				a.closeStore = nil
			}
		}()
		return fn(cmd)
	}
}
