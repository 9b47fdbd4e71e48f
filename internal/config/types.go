package config

import "time"

// SnaplistConfig is the top-level configuration structure for snaplist.
type SnaplistConfig struct {
	Store       StoreConfig   `yaml:"store"`
	Seed        SeedConfig    `yaml:"seed"`
	UI          UIConfig      `yaml:"ui"`
	DryRun      bool          `yaml:"dryRun,omitempty"`
	DryRunDelay time.Duration `yaml:"dryRunDelay,omitempty"` // simulated store latency in dry-run mode
}

// StoreConfig points at the snap store API.
type StoreConfig struct {
	URL     string        `yaml:"url,omitempty"`
	Section string        `yaml:"section,omitempty"` // store category listed on the screen
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// SeedConfig locates the seed manifest of the system being installed.
type SeedConfig struct {
	Path       string `yaml:"path,omitempty"`
	SourceRoot string `yaml:"sourceRoot,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title          string `yaml:"title,omitempty"`
	DefaultChannel string `yaml:"defaultChannel,omitempty"`
}
