// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Spin    SpinConfig    `yaml:"spin"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewerConfig holds display settings for the terminal viewer.
type ViewerConfig struct {
	FPS   int `yaml:"fps"`
	Style int `yaml:"style"` // shading ramp index
}

// SpinConfig holds the transform applied to the mesh each frame.
type SpinConfig struct {
	Mesh       string     `yaml:"mesh"` // "cube" or "pyramid"
	Size       float32    `yaml:"size"`
	Scale      float32    `yaml:"scale"`
	DegPerSec  [3]float32 `yaml:"deg_per_sec"` // rotation speed per axis
	Translate  [3]float32 `yaml:"translate"`
	AutoRotate bool       `yaml:"auto_rotate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			FPS:   25,
			Style: 0,
		},
		Spin: SpinConfig{
			Mesh:       "cube",
			Size:       2,
			Scale:      1,
			DegPerSec:  [3]float32{20, 35, 15},
			AutoRotate: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
