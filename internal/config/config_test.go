package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1200 {
		t.Errorf("expected width 1200, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.Near != 0.1 || cfg.Graphics.Far != 100 {
		t.Errorf("expected clip planes 0.1/100, got %f/%f", cfg.Graphics.Near, cfg.Graphics.Far)
	}

	// Test camera defaults
	if cfg.Camera.Speed != 2.5 {
		t.Errorf("expected camera speed 2.5, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.Sensitivity != 0.1 {
		t.Errorf("expected sensitivity 0.1, got %f", cfg.Camera.Sensitivity)
	}
	if cfg.Camera.MinZoom != 1 || cfg.Camera.MaxZoom != 45 {
		t.Errorf("expected zoom range [1, 45], got [%f, %f]", cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	}
	if !cfg.Camera.ConstrainPitch {
		t.Error("expected pitch to be constrained by default")
	}

	// Test scene defaults
	if cfg.Scene.ResourceDir != "resources" {
		t.Errorf("expected resource dir 'resources', got %s", cfg.Scene.ResourceDir)
	}
	if got := cfg.Scene.StatePath(); got != filepath.Join("resources", "program_state.txt") {
		t.Errorf("expected state path 'resources/program_state.txt', got %s", got)
	}
	if cfg.Scene.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Scene.ScreenshotDir)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  far: 250

camera:
  speed: 5
  constrain_pitch: false

scene:
  resource_dir: "/opt/seaworld"
  state_file: "/tmp/state.txt"

logging:
  level: "debug"
  log_file: "seaworld.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Far != 250 {
		t.Errorf("expected far plane 250, got %f", cfg.Graphics.Far)
	}
	// Untouched keys keep their defaults
	if cfg.Graphics.Near != 0.1 {
		t.Errorf("expected near plane to stay 0.1, got %f", cfg.Graphics.Near)
	}

	if cfg.Camera.Speed != 5 {
		t.Errorf("expected camera speed 5, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.ConstrainPitch {
		t.Error("expected constrain_pitch to be false")
	}
	if cfg.Camera.Sensitivity != 0.1 {
		t.Errorf("expected sensitivity to stay 0.1, got %f", cfg.Camera.Sensitivity)
	}

	if cfg.Scene.ResourceDir != "/opt/seaworld" {
		t.Errorf("expected resource dir /opt/seaworld, got %s", cfg.Scene.ResourceDir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "seaworld.log" {
		t.Errorf("expected log file 'seaworld.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"far before near", func(c *Config) { c.Graphics.Far = 0.05 }, true},
		{"inverted zoom", func(c *Config) { c.Camera.MinZoom = 50 }, true},
		{"negative speed", func(c *Config) { c.Camera.Speed = -1 }, true},
		{"narrow zoom", func(c *Config) { c.Camera.MinZoom, c.Camera.MaxZoom = 30, 30 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStatePath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, filepath.Join("resources", "program_state.txt")},
		{"follows resources", []string{"-resources", "/data/sea"}, filepath.Join("/data/sea", "program_state.txt")},
		{"explicit state", []string{"-resources", "/data/sea", "-state", "/tmp/state.txt"}, "/tmp/state.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			parseFlags(t, tt.args...).apply(cfg)
			if got := cfg.Scene.StatePath(); got != tt.want {
				t.Errorf("StatePath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSaveConfigFlag(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only moves the config directory on linux")
	}
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	cfg, err := LoadWith(parseFlags(t, "-save-config", "-width", "1024", "-resources", "/data/sea"))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	path := filepath.Join(dir, "xdg", "seaworld", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	// The next start picks the saved file up without any flags
	again, err := LoadWith(Flags{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *again != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", *again, *cfg)
	}
	if again.Scene.StatePath() != filepath.Join("/data/sea", "program_state.txt") {
		t.Errorf("state path %s should follow the saved resource dir", again.Scene.StatePath())
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path = findConfigFile(); path != "config.yaml" {
		t.Errorf("expected config.yaml in the working directory, got %q", path)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 640
	cfg.Camera.ConstrainPitch = false
	cfg.Scene.StateFile = "state.txt"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", *loaded, *cfg)
	}
}

func parseFlags(t *testing.T, args ...string) Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("seaworld", flag.ContinueOnError)
	f.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return f
}

func TestFlagsApply(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "no flags",
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("config changed without flags: %+v", *cfg)
				}
			},
		},
		{
			name: "debug",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("log level %s, want debug", cfg.Logging.Level)
				}
			},
		},
		{
			name: "fullscreen wins over windowed",
			args: []string{"-windowed", "-fullscreen"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen")
				}
			},
		},
		{
			name: "window size",
			args: []string{"-width", "2560", "-height=1440"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("size %dx%d, want 2560x1440", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
		},
		{
			name: "resources and state",
			args: []string{"-resources", "/data/sea", "-state", "/data/sea/state.txt"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.ResourceDir != "/data/sea" {
					t.Errorf("resource dir %s", cfg.Scene.ResourceDir)
				}
				if cfg.Scene.StateFile != "/data/sea/state.txt" {
					t.Errorf("state file %s", cfg.Scene.StateFile)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			parseFlags(t, tt.args...).apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestWindowedOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  fullscreen: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWith(parseFlags(t, "-config", path, "-windowed"))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("-windowed should override the file")
	}
}

func TestLoadPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadWith(Flags{Config: path, Width: 1920})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("graphics:\n  near: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("graphics: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}

	for name, path := range map[string]string{
		"zero near plane": invalid,
		"malformed yaml":  broken,
		"missing file":    filepath.Join(dir, "nope.yaml"),
	} {
		if _, err := LoadWith(Flags{Config: path}); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
