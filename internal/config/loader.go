package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceEmbedded names the built-in configuration in Load's result.
const SourceEmbedded = "embedded"

// Load loads the flappy configuration and reports where it came from.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. The user and
// local files are optional and skipped when missing or invalid.
func Load(customPath string) (FlappyConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlappyConfig(), "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "flappy.yaml")
	if cfg, ok := tryFile(localPath); ok {
		return cfg, localPath, nil
	}

	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile parses an optional config file.
func tryFile(path string) (FlappyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return FlappyConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
