package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.dodger/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// Only an explicit customPath surfaces read, parse or validation errors; the
// implicit locations are skipped when unusable.
func Load(variant, customPath string) (DodgeConfig, error) {
	fallback, ok := Default(variant)
	if !ok {
		return DodgeConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath, fallback)
		if err != nil {
			return fallback, err
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath, fallback); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", filename), fallback); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(GetDefaultYAML(variant), fallback)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses a YAML file on top of base.
// Keys missing from the file keep the base values.
func loadFile(path string, base DodgeConfig) (DodgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data, base)
	if err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte, base DodgeConfig) (DodgeConfig, error) {
	cfg := base
	// Patterns are replaced wholesale rather than merged element-wise.
	cfg.Patterns = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse: %w", err)
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = clonePatterns(base.Patterns)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Marshal renders a config as YAML, used by the CLI to dump effective settings.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return out, nil
}
