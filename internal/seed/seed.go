// Package seed reads the snapd seed manifest of the system being installed
// to find out which snaps it already ships. Those snaps are not offered on
// the featured-snaps screen.
//
// Nothing in here is fatal: a missing or unparseable manifest is logged and
// treated as "nothing preinstalled".
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"snaplist/internal/config"
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

// RelativePath is where snapd keeps the seed manifest inside a root filesystem.
const RelativePath = "var/lib/snapd/seed/seed.yaml"

const installSourceScheme = "cp://"

// DryRunManifest stands in for the real manifest in dry-run mode.
const DryRunManifest = `snaps:
  -
    name: core
    channel: stable
    file: core_4486.snap
  -
    name: lxd
    channel: stable/ubuntu-18.04
    file: lxd_59.snap
`

// Manifest is the subset of seed.yaml snaplist cares about.
type Manifest struct {
	Snaps []Entry `yaml:"snaps"`
}

// Entry is one seeded snap.
type Entry struct {
	Name    string `yaml:"name"`
	Channel string `yaml:"channel,omitempty"`
	File    string `yaml:"file,omitempty"`
	Classic bool   `yaml:"classic"`
}

// Set is a set of snap names.
type Set map[string]struct{}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in the set in sorted order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the location of the seed manifest for cfg. An explicit path
// wins; otherwise the manifest is looked up under the install source root.
// The root may be given as a plain path or as a "cp://" install source; any
// other scheme is logged and yields "".
func Path(cfg config.SeedConfig, log logging.Logger) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	root := cfg.SourceRoot
	if strings.Contains(root, "://") {
		if !strings.HasPrefix(root, installSourceScheme) {
			log.Warn("cannot parse install source %q", root)
			return ""
		}
		root = strings.TrimPrefix(root, installSourceScheme)
	}
	if root == "" {
		return ""
	}
	log.Debug("install source %q", root)
	return filepath.Join(root, RelativePath)
}

// Preinstalled parses doc and returns the names of the seeded snaps.
// A parse failure is logged and yields an empty set.
func Preinstalled(doc []byte, log logging.Logger) Set {
	names := Set{}

	var manifest Manifest
	if err := yaml.Unmarshal(doc, &manifest); err != nil {
		log.Debug("failed to parse seed.yaml: %v", err)
		return names
	}
	for _, entry := range manifest.Snaps {
		if entry.Name != "" {
			names[entry.Name] = struct{}{}
		}
	}
	log.Debug("pre-seeded snaps %v", names.Sorted())
	return names
}

// Load reads and parses the manifest described by cfg. In dry-run mode the
// canned DryRunManifest is used instead of the filesystem.
func Load(cfg config.SnaplistConfig, log logging.Logger) Set {
	if cfg.DryRun {
		return Preinstalled([]byte(DryRunManifest), log)
	}

	path := Path(cfg.Seed, log)
	if path == "" {
		return Set{}
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("could not find seed at %q", path)
		} else {
			log.Error(err, "could not read seed at %q", path)
		}
		return Set{}
	}
	return Preinstalled(doc, log)
}

// FromSelections builds the manifest of the snaps the user picked, sorted
// by name.
func FromSelections(selections map[string]snaps.Selection) Manifest {
	names := make([]string, 0, len(selections))
	for name := range selections {
		names = append(names, name)
	}
	sort.Strings(names)

	manifest := Manifest{Snaps: make([]Entry, 0, len(names))}
	for _, name := range names {
		sel := selections[name]
		manifest.Snaps = append(manifest.Snaps, Entry{
			Name:    name,
			Channel: sel.Channel,
			Classic: sel.IsClassic,
		})
	}
	return manifest
}

// Marshal renders the manifest as seed.yaml.
func (m Manifest) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding seed manifest: %w", err)
	}
	return out, nil
}
