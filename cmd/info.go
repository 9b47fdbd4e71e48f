package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"snaplist/internal/seed"
	"snaplist/internal/snaps"
	"snaplist/internal/store"
	"snaplist/internal/tui/utils"
	"snaplist/pkg/logging"
)

// maxSuggestionDistance is how far off a name may be to still be suggested.
const maxSuggestionDistance = 3

func newInfoCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "info NAME",
		Short: "Print the channels of a featured snap",
		Args:  cobra.ExactArgs(1),
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

			found, err := src.Find(ctx)
			if err != nil {
				return fmt.Errorf("listing featured snaps: %w", err)
			}
			// Only what the screen would offer.
			list := offered(found, seed.Load(cfg, logging.ForSubsystem("Seed")))
			listed, ok := findSnap(list, args[0])
			if !ok {
				if suggestion := suggest(list, args[0]); suggestion != "" {
					return fmt.Errorf("snap %q is not featured, did you mean %q?", args[0], suggestion)
				}
				return fmt.Errorf("snap %q is not featured", args[0])
			}

			info, err := src.Info(ctx, listed.Name)
			if err != nil {
				return err
			}
			s := store.Merge(listed, info)
			renderSnapInfo(cmd.OutOrStdout(), s, time.Now())
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}

func findSnap(list []snaps.Snap, name string) (snaps.Snap, bool) {
	for _, s := range list {
		if s.Name == name {
			return s, true
		}
	}
	return snaps.Snap{}, false
}

// suggest returns the listed name closest to name, or "" when none is
// close enough.
func suggest(list []snaps.Snap, name string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, s := range list {
		if d := levenshtein.ComputeDistance(name, s.Name); d < bestDistance {
			best, bestDistance = s.Name, d
		}
	}
	return best
}

func renderSnapInfo(w io.Writer, s snaps.Snap, now time.Time) {
	publisher := s.Publisher
	if s.Verified {
		publisher += " ✓"
	}
	fmt.Fprintf(w, "%s by %s\n%s\n\n", s.Name, publisher, s.Summary)
	fmt.Fprintf(w, "license:      %s\n", s.License)
	fmt.Fprintf(w, "last updated: %s\n\n", utils.FormatDatetime(now, s.LatestUpdate()))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Channel", "Version", "Revision", "Size", "Published", "Confinement"})
	for _, c := range s.Channels {
		table.Append([]string{
			c.Name,
			c.Version,
			c.Revision,
			utils.HumanizeSize(c.Size),
			utils.FormatDatetime(now, c.ReleasedAt),
			string(c.Confinement),
		})
	}
	table.Render()
}
