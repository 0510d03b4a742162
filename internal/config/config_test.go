package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test viewer defaults
	if cfg.Viewer.FPS != 25 {
		t.Errorf("expected fps 25, got %d", cfg.Viewer.FPS)
	}
	if cfg.Viewer.Style != 0 {
		t.Errorf("expected style 0, got %d", cfg.Viewer.Style)
	}

	// Test spin defaults
	if cfg.Spin.Mesh != "cube" {
		t.Errorf("expected mesh 'cube', got %s", cfg.Spin.Mesh)
	}
	if cfg.Spin.Size != 2 {
		t.Errorf("expected size 2, got %f", cfg.Spin.Size)
	}
	if cfg.Spin.Scale != 1 {
		t.Errorf("expected scale 1, got %f", cfg.Spin.Scale)
	}
	if !cfg.Spin.AutoRotate {
		t.Error("expected auto_rotate to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  fps: 60
  style: 2

spin:
  mesh: "pyramid"
  size: 3
  scale: 1.5
  deg_per_sec: [10, 20, 30]
  translate: [0, 0.5, 0]
  auto_rotate: false

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Viewer.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Viewer.FPS)
	}
	if cfg.Viewer.Style != 2 {
		t.Errorf("expected style 2, got %d", cfg.Viewer.Style)
	}
	if cfg.Spin.Mesh != "pyramid" {
		t.Errorf("expected mesh 'pyramid', got %s", cfg.Spin.Mesh)
	}
	if cfg.Spin.Scale != 1.5 {
		t.Errorf("expected scale 1.5, got %f", cfg.Spin.Scale)
	}
	if cfg.Spin.DegPerSec != [3]float32{10, 20, 30} {
		t.Errorf("expected deg_per_sec [10 20 30], got %v", cfg.Spin.DegPerSec)
	}
	if cfg.Spin.AutoRotate {
		t.Error("expected auto_rotate to be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileMergesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Partial file: untouched sections keep their defaults.
	yamlContent := `
viewer:
  fps: 30
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Viewer.FPS)
	}
	if cfg.Spin.Mesh != "cube" {
		t.Errorf("expected default mesh 'cube', got %s", cfg.Spin.Mesh)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Viewer.FPS = 50
	cfg.Spin.Translate = [3]float32{1, 2, 3}

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("config round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}
