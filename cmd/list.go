package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"snaplist/internal/seed"
	"snaplist/internal/snaps"
	"snaplist/internal/tui/utils"
	"snaplist/pkg/logging"
)

func newListCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the featured snaps that would be offered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			initCLILogging(debug, cmd.ErrOrStderr())

			src, err := newSource(cfg, 0, logging.ForSubsystem("Store"))
			if err != nil {
				return err
			}
			ctx, cancel := fetchContext(cmd, cfg)
			defer cancel()

			list, err := src.Find(ctx)
			if err != nil {
				return fmt.Errorf("listing featured snaps: %w", err)
			}
			preinstalled := seed.Load(cfg, logging.ForSubsystem("Seed"))
			renderSnapTable(cmd.OutOrStdout(), offered(list, preinstalled))
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}

// listSummaryWidth keeps a row of the table on one line of a normal terminal.
const listSummaryWidth = 48

func renderSnapTable(w io.Writer, list []snaps.Snap) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Publisher", "Confinement", "Summary"})
	table.SetAutoWrapText(false)
	for _, s := range list {
		publisher := s.Publisher
		if s.Verified {
			publisher += "✓"
		}
		table.Append([]string{s.Name, publisher, string(s.Confinement), utils.TruncateString(s.Summary, listSummaryWidth)})
	}
	table.Render()
}
