// Package main is the entry point for the meshview terminal viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/affine/internal/config"
	"github.com/Faultbox/affine/internal/logger"
	"github.com/Faultbox/affine/internal/mesh"
	"github.com/Faultbox/affine/internal/render"
	"github.com/Faultbox/affine/pkg/math"
)

var flagDump = flag.Bool("dump", false, "Print the composed transform and exit")

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// While the tcell screen owns the terminal, console logging would
	// garble it; log to file only in viewer mode.
	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, *flagDump); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m, err := buildMesh(cfg)
	if err != nil {
		logger.Error("failed to build mesh", zap.Error(err))
		os.Exit(1)
	}

	fps := cfg.Viewer.FPS
	if fps <= 0 {
		fps = 25
	}
	opts := render.Options{
		FPS:       fps,
		Style:     cfg.Viewer.Style,
		Scale:     cfg.Spin.Scale,
		AutoSpin:  cfg.Spin.AutoRotate,
		Translate: vec3(cfg.Spin.Translate),
		Spin:      vec3(cfg.Spin.DegPerSec).Scale(1 / float32(fps)),
	}
	viewer := render.NewViewer(m, opts)

	if *flagDump {
		dumpTransform(viewer.Transform())
		return
	}

	logger.Info("starting viewer",
		zap.String("mesh", cfg.Spin.Mesh),
		zap.Float32("size", cfg.Spin.Size))

	if err := viewer.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func buildMesh(cfg *config.Config) (*mesh.TriMesh, error) {
	switch cfg.Spin.Mesh {
	case "cube", "":
		return mesh.Cube(cfg.Spin.Size), nil
	case "pyramid":
		return mesh.Pyramid(cfg.Spin.Size, cfg.Spin.Size), nil
	default:
		return nil, fmt.Errorf("unknown mesh %q", cfg.Spin.Mesh)
	}
}

// dumpTransform prints the initial model matrix in both row-major text
// form and the column-major layout a graphics API would receive.
func dumpTransform(tf math.Mat4) {
	fmt.Print(tf)

	cm := tf.ColumnMajor()
	fmt.Print("column-major:")
	for i, v := range cm {
		if i%4 == 0 {
			fmt.Print("\n ")
		}
		fmt.Printf(" %g", v)
	}
	fmt.Println()
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
