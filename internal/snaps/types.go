package snaps

import (
	"time"

	"github.com/snapcore/snapd/snap"
)

// Confinement is the isolation mode of a snap or of one of its revisions.
type Confinement = snap.ConfinementType

const (
	ConfinementStrict  = snap.StrictConfinement
	ConfinementClassic = snap.ClassicConfinement
	ConfinementDevMode = snap.DevModeConfinement
)

// DefaultChannel is used when a snap is ticked without visiting its details.
const DefaultChannel = "stable"

// Snap is an installable package as offered by the store.
type Snap struct {
	Name        string        `json:"name" yaml:"name"`
	Summary     string        `json:"summary" yaml:"summary"`
	Description string        `json:"description" yaml:"description"`
	Publisher   string        `json:"publisher" yaml:"publisher"`
	Verified    bool          `json:"verified" yaml:"verified"`
	Confinement Confinement   `json:"confinement" yaml:"confinement"`
	License     string        `json:"license" yaml:"license"`
	Channels    []ChannelInfo `json:"channels,omitempty" yaml:"channels,omitempty"`
}

// ChannelInfo describes what a single channel of a snap currently carries.
type ChannelInfo struct {
	Name        string      `json:"name" yaml:"name"`
	Version     string      `json:"version" yaml:"version"`
	Revision    string      `json:"revision" yaml:"revision"`
	Size        int64       `json:"size" yaml:"size"`
	ReleasedAt  time.Time   `json:"released-at" yaml:"released-at"`
	Confinement Confinement `json:"confinement" yaml:"confinement"`
}

// Selection is what the user chose for one snap.
type Selection struct {
	Channel   string `json:"channel" yaml:"channel"`
	IsClassic bool   `json:"classic" yaml:"classic"`
}

// IsClassic reports whether the snap as a whole uses classic confinement.
func (s Snap) IsClassic() bool {
	return s.Confinement == ConfinementClassic
}

// DefaultSelection is the selection made by ticking the snap's checkbox
// without visiting its details. An empty channel means DefaultChannel.
func (s Snap) DefaultSelection(channel string) Selection {
	if channel == "" {
		channel = DefaultChannel
	}
	return Selection{Channel: channel, IsClassic: s.IsClassic()}
}

// SelectionFor is the selection made by choosing the given channel.
func (c ChannelInfo) SelectionFor() Selection {
	return Selection{Channel: c.Name, IsClassic: c.Confinement == ConfinementClassic}
}

// LatestUpdate returns the most recent release time across all channels,
// or the zero time when the snap has no channels.
func (s Snap) LatestUpdate() time.Time {
	var latest time.Time
	for _, c := range s.Channels {
		if c.ReleasedAt.After(latest) {
			latest = c.ReleasedAt
		}
	}
	return latest
}

// Channel looks a channel up by name.
func (s Snap) Channel(name string) (ChannelInfo, bool) {
	for _, c := range s.Channels {
		if c.Name == name {
			return c, true
		}
	}
	return ChannelInfo{}, false
}

// Revision formats a store revision number the way snapd prints it.
func Revision(n int) string {
	return snap.R(n).String()
}
