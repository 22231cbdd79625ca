package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var inspectDomain string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Browse the platform catalog",
	Long: `Browse the platform introspection catalog for this process.

The catalog is assembled and materialized on every invocation, so listings
always reflect the current process.`,
}

var inspectObjectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List catalog objects",
	Long: `List all objects in the materialized catalog.

Examples:
  # List all objects
  graal inspect objects

  # List objects in one domain
  graal inspect objects --domain go.runtime

  # List as JSON
  graal inspect objects -o json`,
	RunE: runInspectObjects,
}

var inspectDomainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List catalog domains",
	Long: `List the domains of the materialized catalog with their object counts.

Examples:
  # List all domains
  graal inspect domains

  # List as YAML
  graal inspect domains -o yaml`,
	RunE: runInspectDomains,
}

func init() {
	inspectObjectsCmd.Flags().StringVar(&inspectDomain, "domain", "", "Only list objects in this domain")

	inspectCmd.AddCommand(inspectObjectsCmd)
	inspectCmd.AddCommand(inspectDomainsCmd)
}

// ObjectInfo describes one catalog object in a listing.
type ObjectInfo struct {
	Name       string `json:"name" yaml:"name"`
	Domain     string `json:"domain" yaml:"domain"`
	Shape      string `json:"shape" yaml:"shape"`
	Attributes int    `json:"attributes" yaml:"attributes"`
}

// ObjectList is a list of catalog objects for table rendering.
type ObjectList []ObjectInfo

// Headers implements TableRenderer.
func (ol ObjectList) Headers() []string {
	return []string{"NAME", "DOMAIN", "SHAPE", "ATTRIBUTES"}
}

// Rows implements TableRenderer.
func (ol ObjectList) Rows() [][]string {
	rows := make([][]string, 0, len(ol))
	for _, o := range ol {
		rows = append(rows, []string{o.Name, o.Domain, o.Shape, strconv.Itoa(o.Attributes)})
	}
	return rows
}

// DomainInfo describes one catalog domain in a listing.
type DomainInfo struct {
	Domain  string `json:"domain" yaml:"domain"`
	Objects int    `json:"objects" yaml:"objects"`
}

// DomainList is a list of catalog domains for table rendering.
type DomainList []DomainInfo

// Headers implements TableRenderer.
func (dl DomainList) Headers() []string {
	return []string{"DOMAIN", "OBJECTS"}
}

// Rows implements TableRenderer.
func (dl DomainList) Rows() [][]string {
	rows := make([][]string, 0, len(dl))
	for _, d := range dl {
		rows = append(rows, []string{d.Domain, strconv.Itoa(d.Objects)})
	}
	return rows
}

func runInspectObjects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	_, srv, err := materializeCatalog(cfg)
	if err != nil {
		return err
	}

	names := srv.Names()
	if inspectDomain != "" {
		names = srv.NamesInDomain(inspectDomain)
	}

	objects := make(ObjectList, 0, len(names))
	for _, name := range names {
		adapter, err := srv.Lookup(name)
		if err != nil {
			return fmt.Errorf("failed to look up %s: %w", name, err)
		}
		objects = append(objects, ObjectInfo{
			Name:       name.String(),
			Domain:     name.Domain(),
			Shape:      adapter.Shape().String(),
			Attributes: len(adapter.AttributeNames()),
		})
	}

	return printOutput(os.Stdout, objects, len(objects) == 0, "No objects found.", objects)
}

func runInspectDomains(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	_, srv, err := materializeCatalog(cfg)
	if err != nil {
		return err
	}

	domains := make(DomainList, 0, len(srv.Domains()))
	for _, domain := range srv.Domains() {
		domains = append(domains, DomainInfo{
			Domain:  domain,
			Objects: len(srv.NamesInDomain(domain)),
		})
	}

	return printOutput(os.Stdout, domains, len(domains) == 0, "No domains found.", domains)
}
