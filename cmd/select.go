package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"snaplist/internal/config"
	"snaplist/internal/reporting"
	"snaplist/internal/seed"
	"snaplist/internal/store"
	"snaplist/internal/tui/controller"
	"snaplist/internal/tui/model"
	"snaplist/pkg/logging"
)

func newSelectCmd() *cobra.Command {
	var (
		output   string
		debug    bool
		logFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Run the featured-snaps screen and print the selection",
		Long: `Shows the featured snaps of the configured store section in an
interactive screen. Snaps already in the target system's seed are not
offered.

On Done the selection is written as seed-style YAML to --output, or to
stdout. On Cancel nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if debug {
				level = logging.LevelDebug
			}
			mirror, closeMirror, err := openLogFile(logFile)
			if err != nil {
				return err
			}
			defer closeMirror()
			logChannel := logging.InitForTUI(level, mirror)
			defer logging.CloseTUIChannel()

			recorder := reporting.NewRecorder(logging.ForSubsystem("Report"))
			catalog, err := newCatalog(cfg, logging.ForSubsystem("Store"))
			if err != nil {
				return err
			}

			program := controller.NewProgram(model.Config{
				Title:          cfg.UI.Title,
				DefaultChannel: cfg.UI.DefaultChannel,
				DebugMode:      debug,
				Catalog:        catalog,
				Reporter:       recorder,
				Preinstalled:   seed.Load(cfg, logging.ForSubsystem("Seed")),
				Log:            logging.ForSubsystem("TUI"),
				LogChannel:     logChannel,
			})
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running featured snaps screen: %w", err)
			}
			logging.CloseTUIChannel()
			if n := logging.Dropped(); n > 0 {
				logging.Warn("TUI", "%d log entries did not reach the activity log", n)
			}

			return reporting.NewConsoleReporter(cmd.OutOrStdout(), output).Flush(recorder)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the selection to this file instead of stdout")
	cmd.Flags().BoolVar(&debug, "debug", false, "Show debug messages in the activity log")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Also append log messages to this file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Lowest level logged: debug, info, warn or error")
	return cmd
}

// newCatalog builds what the screen fetches from: a caching catalogue over
// the store, or the built-in one in dry-run mode.
func newCatalog(cfg config.SnaplistConfig, log logging.Logger) (model.Catalog, error) {
	if cfg.DryRun {
		return store.LoadFixture(cfg.DryRunDelay, time.Now())
	}
	return store.NewCatalog(store.NewClient(cfg.Store, log), log), nil
}

// openLogFile opens path for appending. An empty path logs nowhere but the
// activity log.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// fetchContext bounds the store calls of the non-interactive commands.
func fetchContext(cmd *cobra.Command, cfg config.SnaplistConfig) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := cfg.Store.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
