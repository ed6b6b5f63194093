// Package config handles viewer configuration loading and management.
package config

import "path/filepath"

// stateFile is the default state file name inside the resource directory.
const stateFile = "program_state.txt"

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	Near       float32 `yaml:"near"` // Near clip plane
	Far        float32 `yaml:"far"`  // Far clip plane
}

// CameraConfig holds fly camera tuning.
type CameraConfig struct {
	Speed          float32 `yaml:"speed"`       // World units per second
	Sensitivity    float32 `yaml:"sensitivity"` // Degrees per pixel of mouse motion
	MinZoom        float32 `yaml:"min_zoom"`
	MaxZoom        float32 `yaml:"max_zoom"`
	ConstrainPitch bool    `yaml:"constrain_pitch"`
}

// SceneConfig holds asset, state file and screenshot locations. An empty
// StateFile keeps the state next to the resources.
type SceneConfig struct {
	ResourceDir   string `yaml:"resource_dir"`
	StateFile     string `yaml:"state_file"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1200,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			Near:       0.1,
			Far:        100,
		},
		Camera: CameraConfig{
			Speed:          2.5,
			Sensitivity:    0.1,
			MinZoom:        1,
			MaxZoom:        45,
			ConstrainPitch: true,
		},
		Scene: SceneConfig{
			ResourceDir:   "resources",
			StateFile:     "",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StatePath returns where the viewer state is loaded from and saved to.
func (s SceneConfig) StatePath() string {
	if s.StateFile != "" {
		return s.StateFile
	}
	return filepath.Join(s.ResourceDir, stateFile)
}
