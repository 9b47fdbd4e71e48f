package snaps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectionStore_SetGet(t *testing.T) {
	s := NewSelectionStore()
	sel := Selection{Channel: "edge", IsClassic: true}

	s.Set("lxd", sel)

	got, ok := s.Get("lxd")
	assert.True(t, ok)
	assert.Equal(t, sel, got)
	assert.True(t, s.Has("lxd"))
	assert.Equal(t, 1, s.Len())
}

func TestSelectionStore_SetOverwrites(t *testing.T) {
	s := NewSelectionStore()
	s.Set("lxd", Selection{Channel: "stable"})
	s.Set("lxd", Selection{Channel: "candidate"})

	got, _ := s.Get("lxd")
	assert.Equal(t, "candidate", got.Channel)
	assert.Equal(t, 1, s.Len())
}

func TestSelectionStore_Remove(t *testing.T) {
	s := NewSelectionStore()
	s.Set("lxd", Selection{Channel: "stable"})

	s.Remove("lxd")
	_, ok := s.Get("lxd")
	assert.False(t, ok)

	// Removing again, or removing something never added, is harmless.
	s.Remove("lxd")
	s.Remove("never-added")
	assert.Equal(t, 0, s.Len())
}

func TestSelectionStore_AllIsACopy(t *testing.T) {
	s := NewSelectionStore()
	s.Set("a", Selection{Channel: "stable"})

	all := s.All()
	all["b"] = Selection{Channel: "edge"}
	delete(all, "a")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("b"))
}

func TestSelectionStore_NamesSorted(t *testing.T) {
	s := NewSelectionStore()
	for _, n := range []string{"wekan", "docker", "microk8s"} {
		s.Set(n, Selection{Channel: DefaultChannel})
	}
	assert.Equal(t, []string{"docker", "microk8s", "wekan"}, s.Names())
}

func TestSnap_DefaultSelection(t *testing.T) {
	classic := Snap{Name: "aws-cli", Confinement: ConfinementClassic}
	strict := Snap{Name: "lxd", Confinement: ConfinementStrict}

	assert.Equal(t, Selection{Channel: "stable", IsClassic: true}, classic.DefaultSelection(""))
	assert.Equal(t, Selection{Channel: "stable", IsClassic: false}, strict.DefaultSelection(""))
	assert.Equal(t, Selection{Channel: "candidate", IsClassic: false}, strict.DefaultSelection("candidate"))
}

func TestChannelInfo_SelectionFor(t *testing.T) {
	c := ChannelInfo{Name: "3.0/edge", Confinement: ConfinementClassic}
	assert.Equal(t, Selection{Channel: "3.0/edge", IsClassic: true}, c.SelectionFor())
}

func TestSnap_LatestUpdate(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := Snap{Channels: []ChannelInfo{{Name: "edge", ReleasedAt: t1}, {Name: "stable", ReleasedAt: t2}}}

	assert.Equal(t, t2, s.LatestUpdate())
	assert.True(t, Snap{}.LatestUpdate().IsZero())
}

func TestSnap_Channel(t *testing.T) {
	s := Snap{Channels: []ChannelInfo{{Name: "stable", Version: "1.0"}}}

	c, ok := s.Channel("stable")
	assert.True(t, ok)
	assert.Equal(t, "1.0", c.Version)

	_, ok = s.Channel("edge")
	assert.False(t, ok)
}

func TestRevision(t *testing.T) {
	assert.Equal(t, "42", Revision(42))
}
