package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for presets, the database and logs.
const AppDir = ".memory-match"

// LoadLevels loads difficulty presets.
// Search order: customPath -> ~/.memory-match/levels.yaml -> ./configs/levels.yaml -> embedded default
// A file that exists but does not parse is an error rather than skipped.
func LoadLevels(customPath string) (Presets, error) {
	var p Presets

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return p, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return p, nil
	}

	candidates := []string{filepath.Join("configs", "levels.yaml")}
	if userCfgPath := userConfigPath("levels.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Presets{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return p, nil
	}

	if err := yaml.Unmarshal(defaultLevelsYAML, &p); err != nil {
		return DefaultPresets(), nil // Fallback to hardcoded if embed fails
	}
	return p, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
