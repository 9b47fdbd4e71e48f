package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content SnaplistConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockConfigPaths points both file layers into dir and restores them afterwards.
func mockConfigPaths(t *testing.T, dir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(dir, "user", configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(dir, "project", configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "user"), configFileName, SnaplistConfig{
		Store: StoreConfig{URL: "http://localhost:8080"},
		UI:    UIConfig{Title: "Featured Desktop Snaps"},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", loadedConfig.Store.URL)
	assert.Equal(t, "Featured Desktop Snaps", loadedConfig.UI.Title)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultSection, loadedConfig.Store.Section)
	assert.Equal(t, DefaultChannelName, loadedConfig.UI.DefaultChannel)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "user"), configFileName, SnaplistConfig{
		Store: StoreConfig{URL: "http://user-store", Timeout: 5 * time.Second},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project"), configFileName, SnaplistConfig{
		Store:  StoreConfig{URL: "http://project-store"},
		Seed:   SeedConfig{Path: "/tmp/seed.yaml"},
		DryRun: true,
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://project-store", loadedConfig.Store.URL)
	assert.Equal(t, 5*time.Second, loadedConfig.Store.Timeout)
	assert.Equal(t, "/tmp/seed.yaml", loadedConfig.Seed.Path)
	assert.True(t, loadedConfig.DryRun)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	userDir := filepath.Join(tempDir, "user")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, configFileName), []byte("store: [not, a, map"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	t.Setenv("SNAPLIST_STORE_URL", "http://env-store")
	t.Setenv("SNAPLIST_STORE_TIMEOUT", "2s")
	t.Setenv("SNAPLIST_SEED_SOURCEROOT", "cp:///media/filesystem")
	t.Setenv("SNAPLIST_DRYRUN", "true")

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://env-store", loadedConfig.Store.URL)
	assert.Equal(t, 2*time.Second, loadedConfig.Store.Timeout)
	assert.Equal(t, "cp:///media/filesystem", loadedConfig.Seed.SourceRoot)
	assert.True(t, loadedConfig.DryRun)
}

func TestMergeConfigs_ZeroOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig()
	assert.Equal(t, base, mergeConfigs(base, SnaplistConfig{}))
}

func TestGetUserConfigPath(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/ubuntu", nil }

	path, err := getUserConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/ubuntu/.config/snaplist/config.yaml", path)
}
