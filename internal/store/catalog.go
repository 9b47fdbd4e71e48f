package store

import (
	"context"
	"sync"

	"snaplist/internal/fetch"
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

// Catalog puts a cache in front of a Source. Answers already in the cache
// are returned Ready; everything else is Pending and cached once it arrives.
// Failed lookups are not cached so that "try again" really retries.
type Catalog struct {
	src Source
	log logging.Logger

	mu   sync.Mutex
	list []snaps.Snap
	info map[string]snaps.Snap
}

// NewCatalog wraps src.
func NewCatalog(src Source, log logging.Logger) *Catalog {
	return &Catalog{
		src:  src,
		log:  log,
		info: make(map[string]snaps.Snap),
	}
}

// SnapList returns the featured snaps. An empty list means the fetch failed.
func (c *Catalog) SnapList(ctx context.Context) fetch.Result[[]snaps.Snap] {
	c.mu.Lock()
	cached := c.list
	c.mu.Unlock()
	if len(cached) > 0 {
		return fetch.Ready(cached)
	}

	return fetch.Pending(func() []snaps.Snap {
		list, err := c.src.Find(ctx)
		if err != nil {
			c.log.Error(err, "loading snap list failed")
			return nil
		}
		c.log.Info("loaded %d snaps from the store", len(list))
		if len(list) > 0 {
			c.mu.Lock()
			c.list = list
			c.mu.Unlock()
		}
		return list
	})
}

// SnapInfo returns a copy of s populated with its channels. No channels
// means the fetch failed.
func (c *Catalog) SnapInfo(ctx context.Context, s snaps.Snap) fetch.Result[snaps.Snap] {
	c.mu.Lock()
	cached, ok := c.info[s.Name]
	c.mu.Unlock()
	if ok {
		return fetch.Ready(cached)
	}

	return fetch.Pending(func() snaps.Snap {
		info, err := c.src.Info(ctx, s.Name)
		if err != nil {
			c.log.Error(err, "loading info for %s failed", s.Name)
			failed := s
			failed.Channels = nil
			return failed
		}
		populated := Merge(s, info)
		if len(populated.Channels) > 0 {
			c.mu.Lock()
			c.info[s.Name] = populated
			c.mu.Unlock()
		}
		return populated
	})
}

// Merge fills the listed snap with what the info call returned. Fields the
// list already had win, except channels which only info knows.
func Merge(listed, info snaps.Snap) snaps.Snap {
	out := listed
	if out.Summary == "" {
		out.Summary = info.Summary
	}
	if out.Description == "" {
		out.Description = info.Description
	}
	if out.Publisher == "" {
		out.Publisher = info.Publisher
		out.Verified = info.Verified
	}
	if out.Confinement == "" {
		out.Confinement = info.Confinement
	}
	if out.License == "" {
		out.License = info.License
	}
	out.Channels = append([]snaps.ChannelInfo(nil), info.Channels...)
	return out
}
