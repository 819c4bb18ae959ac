package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "screenmenu.yaml"

// For mocking in tests
var osUserConfigDir = os.UserConfigDir

// DefaultPath returns <user config dir>/screenmenu/screenmenu.yaml.
func DefaultPath() (string, error) {
	dir, err := osUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "screenmenu", configFileName), nil
}

// Load reads the file at path on top of Default. A missing file is created
// with the defaults so operators have something to edit.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := WriteDefault(path); err != nil {
			return cfg, fmt.Errorf("write default config %s: %w", path, err)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	// yaml merges into non-nil maps, so presets in the file replace the
	// defaults instead of adding to them. An explicit empty map disables them.
	cfg.Settings.Resolutions = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Settings.Resolutions == nil {
		cfg.Settings.Resolutions = Default().Settings.Resolutions
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault marshals Default to path, creating parent directories.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the menu cannot work with.
func (c Config) Validate() error {
	switch c.Settings.MenuType {
	case "KeyPress", "Scrollable", "Both":
	default:
		return fmt.Errorf("settings.menu_type %q must be KeyPress, Scrollable or Both", c.Settings.MenuType)
	}
	if c.Calibration.Step <= 0 {
		return fmt.Errorf("calibration.step must be positive")
	}
	if c.Server.TickRate <= 0 {
		return fmt.Errorf("server.tick_rate must be positive")
	}
	if _, ok := c.Lang["en"]; !ok {
		return fmt.Errorf("lang.en is required as the fallback language")
	}
	return nil
}
