package config

import "time"

const (
	DefaultStoreURL    = "https://api.snapcraft.io"
	DefaultSection     = "server"
	DefaultTitle       = "Featured Server Snaps"
	DefaultChannelName = "stable"
)

// GetDefaultConfig returns the configuration used when nothing overrides it.
func GetDefaultConfig() SnaplistConfig {
	return SnaplistConfig{
		Store: StoreConfig{
			URL:     DefaultStoreURL,
			Section: DefaultSection,
			Timeout: 30 * time.Second,
		},
		Seed: SeedConfig{
			SourceRoot: "/",
		},
		UI: UIConfig{
			Title:          DefaultTitle,
			DefaultChannel: DefaultChannelName,
		},
		DryRunDelay: time.Second,
	}
}
