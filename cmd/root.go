package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"snaplist/internal/config"
	"snaplist/internal/seed"
	"snaplist/internal/snaps"
	"snaplist/internal/store"
	"snaplist/pkg/logging"
)

// Flags shared by every command that talks to the store.
var (
	dryRun   bool
	storeURL string
	seedPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "snaplist",
	Short: "Pick featured server snaps to install",
	Long: `snaplist shows the featured snaps of a snap store section, minus the
snaps the target system's seed already ships, and lets you pick which ones
to install and from which channel.

The selection is written as a seed-style YAML document.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreachable store, bad config files)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "snaplist version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Use the built-in snap catalogue and seed instead of the store and the filesystem")
	rootCmd.PersistentFlags().StringVar(&storeURL, "store-url", "", "Base URL of the snap store API")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "Path to the seed.yaml of the target system")

	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadConfig layers the command line flags over the configuration files.
func loadConfig() (config.SnaplistConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.SnaplistConfig{}, err
	}
	if dryRun {
		cfg.DryRun = true
	}
	if storeURL != "" {
		cfg.Store.URL = storeURL
	}
	if seedPath != "" {
		cfg.Seed.Path = seedPath
	}
	return cfg, nil
}

// newSource picks the store client, or the built-in catalogue in dry-run
// mode, answering after delay.
func newSource(cfg config.SnaplistConfig, delay time.Duration, log logging.Logger) (store.Source, error) {
	if cfg.DryRun {
		return store.LoadFixture(delay, time.Now())
	}
	return store.NewClient(cfg.Store, log), nil
}

// offered drops the preinstalled snaps from a store listing.
func offered(list []snaps.Snap, preinstalled seed.Set) []snaps.Snap {
	out := make([]snaps.Snap, 0, len(list))
	for _, s := range list {
		if !preinstalled.Has(s.Name) {
			out = append(out, s)
		}
	}
	return out
}

// initCLILogging sends log output to w, with debug output when asked for.
func initCLILogging(debug bool, w io.Writer) {
	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, w)
}
