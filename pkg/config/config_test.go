package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aetheriaxai/graal/internal/bytesize"
)

func TestLoad_DefaultConfig(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Write minimal config
	configContent := `
logging:
  level: "INFO"

catalog:
  event_buffer: 64
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	// Load config
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify defaults were applied
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.Catalog.EventBuffer != 64 {
		t.Errorf("Expected event buffer 64, got %d", cfg.Catalog.EventBuffer)
	}
	if cfg.Export.Prometheus.Enabled {
		t.Error("Expected prometheus export to default to disabled")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Loading with no config file returns a valid default config.
	// This allows running the CLI without a config file for quick inspection.
	tmpDir := t.TempDir()
	nonExistentPath := filepath.Join(tmpDir, "nonexistent.yaml")

	cfg, err := Load(nonExistentPath)
	if err != nil {
		t.Fatalf("Expected no error when loading default config, got: %v", err)
	}

	// Verify default config is returned
	if cfg == nil {
		t.Fatal("Expected default config to be returned")
	}

	if cfg.Catalog.EventBuffer != 64 {
		t.Errorf("Expected default event buffer 64, got %d", cfg.Catalog.EventBuffer)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	// Write invalid YAML
	configContent := `
logging:
  level: INFO
  invalid yaml here [[[
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	// Should return error
	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[logging]
level = "WARN"
format = "json"

[catalog]
memory_threshold = "64MB"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
	if cfg.Catalog.MemoryThreshold != 64*bytesize.MB {
		t.Errorf("Expected memory threshold 64MB, got %v", cfg.Catalog.MemoryThreshold)
	}
}

func TestLoad_DecodeHooks(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Human-readable sizes and durations parse through the decode hooks
	configContent := `
logging:
  level: "INFO"

catalog:
  memory_threshold: "1Gi"
  follow_timeout: "30s"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Catalog.MemoryThreshold != bytesize.GiB {
		t.Errorf("Expected memory threshold 1Gi, got %v", cfg.Catalog.MemoryThreshold)
	}
	if cfg.Catalog.FollowTimeout != 30*time.Second {
		t.Errorf("Expected follow timeout 30s, got %v", cfg.Catalog.FollowTimeout)
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	// Verify all defaults are set
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default log format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default log output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.Catalog.EventBuffer != 64 {
		t.Errorf("Expected default event buffer 64, got %d", cfg.Catalog.EventBuffer)
	}
	if cfg.Catalog.MemoryThreshold != 0 {
		t.Errorf("Expected memory threshold to default to 0, got %v", cfg.Catalog.MemoryThreshold)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()

	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected filename 'config.yaml', got %q", filepath.Base(path))
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if filepath.Base(dir) != "graal" {
		t.Errorf("Expected directory name 'graal', got %q", filepath.Base(dir))
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	// Set environment variables
	_ = os.Setenv("GRAAL_LOGGING_LEVEL", "ERROR")
	_ = os.Setenv("GRAAL_CATALOG_EVENT_BUFFER", "128")
	defer func() {
		_ = os.Unsetenv("GRAAL_LOGGING_LEVEL")
		_ = os.Unsetenv("GRAAL_CATALOG_EVENT_BUFFER")
	}()

	// Create minimal config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: "INFO"

catalog:
  event_buffer: 64
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify environment variables override config file
	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.Catalog.EventBuffer != 128 {
		t.Errorf("Expected event buffer 128 from env var, got %d", cfg.Catalog.EventBuffer)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Logging.Level = "DEBUG"
	cfg.Catalog.Disabled = []string{"build"}
	cfg.Export.Prometheus.Enabled = true
	cfg.Export.Prometheus.Namespace = "acme"

	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loaded.Logging.Level != "DEBUG" {
		t.Errorf("Expected level 'DEBUG' after round trip, got %q", loaded.Logging.Level)
	}
	if len(loaded.Catalog.Disabled) != 1 || loaded.Catalog.Disabled[0] != "build" {
		t.Errorf("Expected disabled [build] after round trip, got %v", loaded.Catalog.Disabled)
	}
	if !loaded.Export.Prometheus.Enabled || loaded.Export.Prometheus.Namespace != "acme" {
		t.Errorf("Expected prometheus export preserved, got %+v", loaded.Export.Prometheus)
	}
}
