package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the base name of the configuration file.
const FileName = "watersort"

// LoadWaterSort loads the game configuration.
// Search order: customPath -> ~/.watersort/configs/watersort.{yaml,toml} ->
// ./configs/watersort.{yaml,toml} -> embedded default.
// Fields a file leaves out keep their default values.
func LoadWaterSort(customPath string) (WaterSortConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WaterSortConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return WaterSortConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return WaterSortConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Then the user and local config directories; unusable files are skipped.
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("watersort.yaml", defaultWaterSortYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultWaterSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the defaults, choosing the format by extension.
func decode(path string, data []byte) (WaterSortConfig, error) {
	cfg := DefaultWaterSortConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return cfg, nil
}

func searchPaths() []string {
	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	var paths []string
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".toml"} {
			paths = append(paths, filepath.Join(dir, FileName+ext))
		}
	}
	return paths
}

// userConfigDir returns ~/.watersort/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".watersort", "configs")
}
