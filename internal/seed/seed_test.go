package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaplist/internal/config"
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

func TestPreinstalled(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "dry run manifest",
			doc:  DryRunManifest,
			want: []string{"core", "lxd"},
		},
		{
			name: "entries without names are skipped",
			doc:  "snaps:\n  - name: core18\n  - channel: stable\n  - name: \"\"\n",
			want: []string{"core18"},
		},
		{
			name: "no snaps key",
			doc:  "architecture: amd64\n",
			want: []string{},
		},
		{
			name: "empty document",
			doc:  "",
			want: []string{},
		},
		{
			name: "malformed yaml",
			doc:  "snaps: [name: core\n",
			want: []string{},
		},
		{
			name: "snaps is not a list",
			doc:  "snaps: 5\n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preinstalled([]byte(tt.doc), logging.Discard())
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestPath(t *testing.T) {
	log := logging.Discard()

	assert.Equal(t, "/explicit/seed.yaml", Path(config.SeedConfig{Path: "/explicit/seed.yaml", SourceRoot: "/target"}, log))
	assert.Equal(t, "/target/var/lib/snapd/seed/seed.yaml", Path(config.SeedConfig{SourceRoot: "/target"}, log))
	assert.Equal(t, "/media/filesystem/var/lib/snapd/seed/seed.yaml", Path(config.SeedConfig{SourceRoot: "cp:///media/filesystem"}, log))
	assert.Equal(t, "", Path(config.SeedConfig{SourceRoot: "http://example.com/root"}, log))
	assert.Equal(t, "", Path(config.SeedConfig{}, log))
}

func TestLoad_ReadsManifestUnderSourceRoot(t *testing.T) {
	root := t.TempDir()
	seedDir := filepath.Join(root, filepath.Dir(RelativePath))
	require.NoError(t, os.MkdirAll(seedDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, RelativePath), []byte("snaps:\n  - name: core20\n  - name: snapd\n"), 0644))

	cfg := config.GetDefaultConfig()
	cfg.Seed.SourceRoot = root

	got := Load(cfg, logging.Discard())
	assert.Equal(t, []string{"core20", "snapd"}, got.Sorted())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Seed.Path = filepath.Join(t.TempDir(), "nope.yaml")

	got := Load(cfg, logging.Discard())
	assert.Empty(t, got)
}

func TestLoad_DryRunIgnoresFilesystem(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.DryRun = true
	cfg.Seed.Path = "/definitely/not/here"

	got := Load(cfg, logging.Discard())
	assert.True(t, got.Has("lxd"))
	assert.True(t, got.Has("core"))
	assert.False(t, got.Has("microk8s"))
}

func TestFromSelections(t *testing.T) {
	manifest := FromSelections(map[string]snaps.Selection{
		"wekan":    {Channel: "stable"},
		"microk8s": {Channel: "1.29/stable", IsClassic: true},
	})

	out, err := manifest.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `snaps:
    - name: microk8s
      channel: 1.29/stable
      classic: true
    - name: wekan
      channel: stable
      classic: false
`, string(out))

	empty, err := FromSelections(nil).Marshal()
	require.NoError(t, err)
	assert.Equal(t, "snaps: []\n", string(empty))
}
