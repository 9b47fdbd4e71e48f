package reporting

import (
	"fmt"
	"io"
	"os"

	"snaplist/internal/seed"
	"snaplist/internal/snaps"
)

// ConsoleReporter writes a selection as a seed-style YAML document, to a
// file when a path is set and to stdout otherwise.
type ConsoleReporter struct {
	stdout io.Writer
	path   string
}

// NewConsoleReporter creates a ConsoleReporter. An empty path means stdout.
func NewConsoleReporter(stdout io.Writer, path string) *ConsoleReporter {
	return &ConsoleReporter{stdout: stdout, path: path}
}

// Write writes selections.
func (c *ConsoleReporter) Write(selections map[string]snaps.Selection) error {
	out, err := seed.FromSelections(selections).Marshal()
	if err != nil {
		return err
	}
	if c.path == "" {
		_, err = c.stdout.Write(out)
		return err
	}
	if err := os.WriteFile(c.path, out, 0644); err != nil {
		return fmt.Errorf("writing selection to %s: %w", c.path, err)
	}
	return nil
}

// Flush writes the recorded selections if the screen ended with Done.
// Nothing is written after Cancel.
func (c *ConsoleReporter) Flush(r *Recorder) error {
	if r.Outcome() != OutcomeDone {
		return nil
	}
	return c.Write(r.Selections())
}
