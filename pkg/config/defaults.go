package config

import (
	"strings"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyCatalogDefaults(&cfg.Catalog)
	applyExportDefaults(&cfg.Export)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

// applyCatalogDefaults sets catalog assembly defaults.
func applyCatalogDefaults(cfg *CatalogConfig) {
	// Match the broadcaster's default per-subscriber buffer
	if cfg.EventBuffer == 0 {
		cfg.EventBuffer = 64
	}
	// MemoryThreshold defaults to 0: the threshold event stays disarmed
	// FollowTimeout defaults to 0: wait until interrupted
}

// applyExportDefaults sets export surface defaults.
func applyExportDefaults(cfg *ExportConfig) {
	// Namespace defaults to "graal" when the bridge is enabled
	if cfg.Prometheus.Enabled && cfg.Prometheus.Namespace == "" {
		cfg.Prometheus.Namespace = "graal"
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
