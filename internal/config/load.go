package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// configFile is the name looked up in the working and OS config directories.
const configFile = "config.yaml"

// Load builds the configuration from the process command line.
func Load() (*Config, error) {
	return LoadWith(cli)
}

// LoadWith layers defaults, the YAML file and f, in increasing priority,
// and validates the result. The file named by f.Config must exist; without
// it the first config.yaml found in the usual places is used, if any. With
// f.SaveConfig the result is also written to the user config directory.
func LoadWith(f Flags) (*Config, error) {
	cfg := Default()

	path := f.Config
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if f.SaveConfig {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving config: %w", err)
		}
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		path := filepath.Join(dir, configFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory of the viewer.
func ConfigDir() string {
	name := "seaworld"
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		name = "Seaworld"
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, name)
}

// loadFromFile merges the YAML at path over cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%g far=%g", c.Graphics.Near, c.Graphics.Far))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom || c.Camera.MaxZoom >= 180 {
		errs = append(errs, fmt.Errorf("zoom range [%g, %g]", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	if c.Camera.Speed < 0 || c.Camera.Sensitivity < 0 {
		errs = append(errs, errors.New("negative camera speed or sensitivity"))
	}
	return errors.Join(errs...)
}
