package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagFPS    = flag.Int("fps", 0, "Frames per second")
	flagMesh   = flag.String("mesh", "", "Mesh to display: cube or pyramid")
	flagScale  = flag.Float64("scale", 0, "Uniform mesh scale")
	flagStill  = flag.Bool("still", false, "Start with auto-rotation off")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFPS > 0 {
		cfg.Viewer.FPS = *flagFPS
	}
	if *flagMesh != "" {
		cfg.Spin.Mesh = *flagMesh
	}
	if *flagScale > 0 {
		cfg.Spin.Scale = float32(*flagScale)
	}
	if *flagStill {
		cfg.Spin.AutoRotate = false
	}
}
