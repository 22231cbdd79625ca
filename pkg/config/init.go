package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// sampleConfig is the documented configuration file written by `graal init`.
// It must stay loadable by Load; TestGeneratedConfigIsLoadable pins this.
const sampleConfig = `# graal Configuration File
#
# This file configures the graal catalog CLI. Every value can be
# overridden with GRAAL_* environment variables (for example
# GRAAL_LOGGING_LEVEL=DEBUG) or with CLI flags.

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: "INFO"
  # Output format: text, json
  format: "text"
  # Where logs are written: stdout, stderr, or a file path
  output: "stdout"

catalog:
  # Per-subscriber event channel buffer size
  event_buffer: 64
  # Heap size that arms the memory threshold event ("64MB", "1Gi").
  # Zero leaves the event disarmed.
  memory_threshold: 0
  # Standard groups to leave out of the catalog.
  # Valid values: runtime, threading, memory, pools, os, build
  # disabled: [build]

export:
  prometheus:
    # Build the Prometheus bridge over the materialized catalog
    enabled: false
    # Metric name prefix
    namespace: "graal"
`

// InitConfig creates a configuration file at the default location.
//
// Parameters:
//   - force: Overwrite an existing file
//
// Returns the path of the created file.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath creates a configuration file at the given path.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
