package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"snaplist/internal/fetch"
	"snaplist/internal/snaps"
)

//go:embed fixtures/snaps.json
var fixtureData []byte

// fixtureAge is how long ago the newest fixture release appears to be.
const fixtureAge = 3 * time.Hour

// Fixture is an offline catalogue used in dry-run mode and by tests. With a
// zero delay it answers Ready, otherwise Pending after the delay.
type Fixture struct {
	list  []snaps.Snap
	delay time.Duration
}

// NewFixture serves list, each answer taking delay.
func NewFixture(list []snaps.Snap, delay time.Duration) *Fixture {
	return &Fixture{list: list, delay: delay}
}

// LoadFixture serves the embedded catalogue. Release times are shifted so
// the newest one is a few hours before now, which keeps the humanized
// timestamps interesting.
func LoadFixture(delay time.Duration, now time.Time) (*Fixture, error) {
	var list []snaps.Snap
	if err := json.Unmarshal(fixtureData, &list); err != nil {
		return nil, fmt.Errorf("decoding embedded snap catalogue: %w", err)
	}

	var newest time.Time
	for _, s := range list {
		if t := s.LatestUpdate(); t.After(newest) {
			newest = t
		}
	}
	shift := now.Add(-fixtureAge).Sub(newest)
	for i := range list {
		for j := range list[i].Channels {
			list[i].Channels[j].ReleasedAt = list[i].Channels[j].ReleasedAt.Add(shift)
		}
	}
	return NewFixture(list, delay), nil
}

// Find implements Source.
func (f *Fixture) Find(ctx context.Context) ([]snaps.Snap, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.listing(), nil
}

// Info implements Source.
func (f *Fixture) Info(ctx context.Context, name string) (snaps.Snap, error) {
	if err := f.wait(ctx); err != nil {
		return snaps.Snap{}, err
	}
	for _, s := range f.list {
		if s.Name == name {
			s.Channels = append([]snaps.ChannelInfo(nil), s.Channels...)
			return s, nil
		}
	}
	return snaps.Snap{}, fmt.Errorf("snap %q not found", name)
}

// SnapList answers like Catalog.SnapList.
func (f *Fixture) SnapList(ctx context.Context) fetch.Result[[]snaps.Snap] {
	if f.delay <= 0 {
		return fetch.Ready(f.listing())
	}
	return fetch.Pending(func() []snaps.Snap {
		list, err := f.Find(ctx)
		if err != nil {
			return nil
		}
		return list
	})
}

// SnapInfo answers like Catalog.SnapInfo.
func (f *Fixture) SnapInfo(ctx context.Context, s snaps.Snap) fetch.Result[snaps.Snap] {
	lookup := func() snaps.Snap {
		info, err := f.Info(ctx, s.Name)
		if err != nil {
			failed := s
			failed.Channels = nil
			return failed
		}
		return Merge(s, info)
	}
	if f.delay <= 0 {
		return fetch.Ready(lookup())
	}
	return fetch.Pending(lookup)
}

// listing is the catalogue as find returns it: without channels.
func (f *Fixture) listing() []snaps.Snap {
	out := make([]snaps.Snap, len(f.list))
	for i, s := range f.list {
		s.Channels = nil
		out[i] = s
	}
	return out
}

func (f *Fixture) wait(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
