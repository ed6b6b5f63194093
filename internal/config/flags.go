package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config as
// loaded from defaults and file.
type Flags struct {
	Config     string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Resources  string
	State      string
	SaveConfig bool
}

// Bind registers the flags on fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.StringVar(&f.Resources, "resources", "", "Directory holding models, textures and the skybox")
	fs.StringVar(&f.State, "state", "", "Path of the persisted viewer state file (default <resources>/program_state.txt)")
	fs.BoolVar(&f.SaveConfig, "save-config", false, "Write the resulting config to the user config directory")
}

// cli is bound to the process command line.
var cli Flags

func init() {
	cli.Bind(flag.CommandLine)
}

// ParseFlags parses the process command line. Call it early in main.
func ParseFlags() {
	flag.Parse()
}

// apply overrides cfg with every flag that was set.
func (f Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	switch {
	case f.Fullscreen:
		cfg.Graphics.Fullscreen = true
	case f.Windowed:
		cfg.Graphics.Fullscreen = false
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Resources != "" {
		cfg.Scene.ResourceDir = f.Resources
	}
	if f.State != "" {
		cfg.Scene.StateFile = f.State
	}
}
