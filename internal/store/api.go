package store

import (
	"time"

	"snaplist/internal/snaps"
)

// Wire types of the snap store v2 API, trimmed to the fields the screen shows.

// FindResponse is the body of GET /v2/snaps/find.
type FindResponse struct {
	Results []FindResult `json:"results"`
}

// FindResult is one hit of a find query.
type FindResult struct {
	Name   string      `json:"name"`
	SnapID string      `json:"snap-id"`
	Snap   SnapDetails `json:"snap"`
}

// InfoResponse is the body of GET /v2/snaps/info/{name}.
type InfoResponse struct {
	Name       string            `json:"name"`
	SnapID     string            `json:"snap-id"`
	Snap       SnapDetails       `json:"snap"`
	ChannelMap []ChannelMapEntry `json:"channel-map"`
}

// SnapDetails carries the snap-level metadata.
type SnapDetails struct {
	Title       string    `json:"title,omitempty"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	License     string    `json:"license"`
	Confinement string    `json:"confinement,omitempty"`
	Publisher   Publisher `json:"publisher"`
}

// Publisher identifies the account publishing a snap.
type Publisher struct {
	ID          string `json:"id,omitempty"`
	Username    string `json:"username"`
	DisplayName string `json:"display-name"`
	Validation  string `json:"validation,omitempty"`
}

// ChannelMapEntry is what one channel of one architecture carries.
type ChannelMapEntry struct {
	Channel     ChannelRef `json:"channel"`
	Version     string     `json:"version"`
	Revision    int        `json:"revision"`
	Confinement string     `json:"confinement"`
	Download    Download   `json:"download"`
}

// ChannelRef names a channel.
type ChannelRef struct {
	Name         string    `json:"name"`
	Track        string    `json:"track"`
	Risk         string    `json:"risk"`
	Architecture string    `json:"architecture"`
	ReleasedAt   time.Time `json:"released-at"`
}

// Download describes the snap file of a revision.
type Download struct {
	Size int64  `json:"size"`
	URL  string `json:"url,omitempty"`
}

const (
	validationVerified = "verified"
	validationStarred  = "starred"
	latestTrack        = "latest"
)

// DisplayName is the channel name shown to users: the bare risk on the
// latest track, "track/risk" otherwise.
func (c ChannelRef) DisplayName() string {
	if c.Track == "" || c.Track == latestTrack {
		if c.Risk != "" {
			return c.Risk
		}
		return c.Name
	}
	return c.Track + "/" + c.Risk
}

func (p Publisher) name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

func (p Publisher) verified() bool {
	return p.Validation == validationVerified || p.Validation == validationStarred
}

func (d SnapDetails) toSnap(name string) snaps.Snap {
	return snaps.Snap{
		Name:        name,
		Summary:     d.Summary,
		Description: d.Description,
		Publisher:   d.Publisher.name(),
		Verified:    d.Publisher.verified(),
		Confinement: snaps.Confinement(d.Confinement),
		License:     d.License,
	}
}

// channelsFor converts a channel map into ChannelInfo for one architecture.
// Entries without an architecture match every architecture. The first
// entry wins when a channel name repeats.
func channelsFor(entries []ChannelMapEntry, architecture string) []snaps.ChannelInfo {
	seen := make(map[string]bool)
	var channels []snaps.ChannelInfo
	for _, e := range entries {
		if e.Channel.Architecture != "" && architecture != "" && e.Channel.Architecture != architecture {
			continue
		}
		name := e.Channel.DisplayName()
		if seen[name] {
			continue
		}
		seen[name] = true
		channels = append(channels, snaps.ChannelInfo{
			Name:        name,
			Version:     e.Version,
			Revision:    snaps.Revision(e.Revision),
			Size:        e.Download.Size,
			ReleasedAt:  e.Channel.ReleasedAt,
			Confinement: snaps.Confinement(e.Confinement),
		})
	}
	return channels
}
