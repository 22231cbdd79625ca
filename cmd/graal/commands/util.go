package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aetheriaxai/graal/internal/cli/output"
	"github.com/aetheriaxai/graal/internal/logger"
	"github.com/aetheriaxai/graal/pkg/config"
	"github.com/aetheriaxai/graal/pkg/platform"
	"github.com/aetheriaxai/graal/pkg/query"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadConfig loads the configuration from the --config flag or the default
// location, falling back to built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// materializeCatalog assembles the standard platform catalog for this
// process and materializes it into a query server. The returned support
// keeps the live objects reachable for commands that drive them directly.
func materializeCatalog(cfg *config.Config) (*platform.Support, *query.Server, error) {
	support, err := platform.New(cfg.PlatformOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to assemble platform catalog: %w", err)
	}

	srv, err := support.Server()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to materialize catalog: %w", err)
	}

	return support, srv, nil
}

// printOutput prints data in the configured format (JSON, YAML, or table).
// For table format, it displays emptyMsg if data is empty, otherwise uses
// the tableRenderer.
func printOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return output.PrintTable(w, tableRenderer)
	}
}

// printSuccessWithInfo prints a success message followed by additional info
// lines. The info lines are only printed in table format.
func printSuccessWithInfo(msg string, infoLines ...string) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil || format != output.FormatTable {
		return
	}
	printer := output.NewPrinter(os.Stdout, format, !noColor)
	printer.Success(msg)
	for _, line := range infoLines {
		fmt.Println(line)
	}
}

// formatValue renders an attribute value for table display.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case time.Duration:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
