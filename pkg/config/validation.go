package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tag rules are
// stateless, so one instance serves all Validate calls.
var validate = validator.New()

// metricNamespacePattern is the Prometheus metric name prefix grammar.
var metricNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks the configuration for invalid or inconsistent values.
//
// Field-level rules are declared as `validate:` struct tags on the config
// types; rules that span fields are checked explicitly afterwards.
//
// Validate does not modify the configuration. Normalization (such as
// upper-casing the log level) happens in ApplyDefaults.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Export.Prometheus.Enabled {
		ns := cfg.Export.Prometheus.Namespace
		if ns != "" && !metricNamespacePattern.MatchString(ns) {
			return fmt.Errorf("export.prometheus.namespace %q is not a valid metric namespace", ns)
		}
	}

	return nil
}
