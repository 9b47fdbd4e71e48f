package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/snaplist"
	projectConfigDir = ".snaplist"
	configFileName   = "config.yaml"
	envPrefix        = "SNAPLIST"
)

// LoadConfig layers the user and project config files, then SNAPLIST_*
// environment variables, over the defaults. Missing files are skipped.
func LoadConfig() (SnaplistConfig, error) {
	config := GetDefaultConfig()

	layers := []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	}
	for _, layer := range layers {
		path, err := layer.path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not determine %s config path: %v\n", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		fileConfig, err := loadConfigFromFile(path)
		if err != nil {
			return SnaplistConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		config = mergeConfigs(config, fileConfig)
	}

	return applyEnvOverrides(config)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a SnaplistConfig from a YAML file.
func loadConfigFromFile(filePath string) (SnaplistConfig, error) {
	var config SnaplistConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SnaplistConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SnaplistConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay SnaplistConfig) SnaplistConfig {
	merged := base

	if overlay.Store.URL != "" {
		merged.Store.URL = overlay.Store.URL
	}
	if overlay.Store.Section != "" {
		merged.Store.Section = overlay.Store.Section
	}
	if overlay.Store.Timeout > 0 {
		merged.Store.Timeout = overlay.Store.Timeout
	}

	if overlay.Seed.Path != "" {
		merged.Seed.Path = overlay.Seed.Path
	}
	if overlay.Seed.SourceRoot != "" {
		merged.Seed.SourceRoot = overlay.Seed.SourceRoot
	}

	if overlay.UI.Title != "" {
		merged.UI.Title = overlay.UI.Title
	}
	if overlay.UI.DefaultChannel != "" {
		merged.UI.DefaultChannel = overlay.UI.DefaultChannel
	}

	if overlay.DryRun {
		merged.DryRun = true
	}
	if overlay.DryRunDelay > 0 {
		merged.DryRunDelay = overlay.DryRunDelay
	}

	return merged
}

// applyEnvOverrides reads SNAPLIST_* variables on top of the file layers.
func applyEnvOverrides(config SnaplistConfig) (SnaplistConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{"store.url", "store.section", "store.timeout", "seed.path", "seed.sourceroot", "dryrun"}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return SnaplistConfig{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if v.IsSet("store.url") {
		config.Store.URL = v.GetString("store.url")
	}
	if v.IsSet("store.section") {
		config.Store.Section = v.GetString("store.section")
	}
	if v.IsSet("store.timeout") {
		if d := v.GetDuration("store.timeout"); d > 0 {
			config.Store.Timeout = d
		}
	}
	if v.IsSet("seed.path") {
		config.Seed.Path = v.GetString("seed.path")
	}
	if v.IsSet("seed.sourceroot") {
		config.Seed.SourceRoot = v.GetString("seed.sourceroot")
	}
	if v.IsSet("dryrun") {
		config.DryRun = v.GetBool("dryrun")
	}
	return config, nil
}
