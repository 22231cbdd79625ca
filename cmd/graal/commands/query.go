package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/aetheriaxai/graal/internal/cli/output"
	"github.com/aetheriaxai/graal/internal/logger"
	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query OBJECT [ATTRIBUTE...]",
	Short: "Read attributes of a catalog object",
	Long: `Read attribute values from one object in the materialized catalog.

With no attribute arguments, all attributes of the object are read.

Examples:
  # Read all attributes of the runtime object
  graal query go.runtime:type=Runtime

  # Read selected attributes
  graal query go.runtime:type=Memory HeapAlloc GCCount

  # Output as JSON
  graal query go.runtime:type=OperatingSystem -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

// QueryResult holds the attribute values read from one object.
type QueryResult struct {
	Object     string         `json:"object" yaml:"object"`
	Domain     string         `json:"domain" yaml:"domain"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`

	// order preserves the attribute listing order for table output.
	order []string
}

// Headers implements TableRenderer.
func (qr *QueryResult) Headers() []string {
	return []string{"ATTRIBUTE", "VALUE"}
}

// Rows implements TableRenderer.
func (qr *QueryResult) Rows() [][]string {
	rows := make([][]string, 0, len(qr.order))
	for _, attr := range qr.order {
		rows = append(rows, []string{attr, formatValue(qr.Attributes[attr])})
	}
	return rows
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	name, err := managed.ParseName(args[0])
	if err != nil {
		return fmt.Errorf("invalid object name %q: %w", args[0], err)
	}

	_, srv, err := materializeCatalog(cfg)
	if err != nil {
		return err
	}

	adapter, err := srv.Lookup(name)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", name, err)
	}

	attrs := args[1:]
	if len(attrs) == 0 {
		attrs = adapter.AttributeNames()
	}

	start := time.Now()
	result := &QueryResult{
		Object:     name.String(),
		Domain:     name.Domain(),
		Attributes: make(map[string]any, len(attrs)),
		order:      attrs,
	}
	for _, attr := range attrs {
		value, err := srv.Attribute(name, attr)
		if err != nil {
			return fmt.Errorf("failed to read %s on %s: %w", attr, name, err)
		}
		result.Attributes[attr] = value
	}
	logger.Debug("attribute read complete",
		"object", name.String(),
		"count", len(attrs),
		"duration_ms", logger.Duration(start))

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, result)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, result)
	default:
		fmt.Printf("%s\n\n", name)
		return output.PrintTable(os.Stdout, result)
	}
}
