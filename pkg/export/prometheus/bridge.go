// Package prometheus republishes a materialized catalog through a
// Prometheus registry. Every numeric attribute of every catalog object
// becomes a gauge, labeled with the object's domain and full name, read
// live at scrape time.
package prometheus

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aetheriaxai/graal/internal/logger"
	"github.com/aetheriaxai/graal/pkg/query"
)

// DefaultNamespace prefixes bridge metrics unless overridden.
const DefaultNamespace = "graal"

// Bridge is a prometheus.Collector over a catalog server. Non-numeric
// attributes are skipped; unreadable ones are logged and skipped, never
// fatal to the scrape.
type Bridge struct {
	srv       *query.Server
	namespace string
}

var _ prometheus.Collector = (*Bridge)(nil)

// NewBridge builds a collector over the server. An empty namespace
// selects DefaultNamespace.
func NewBridge(srv *query.Server, namespace string) *Bridge {
	if srv == nil {
		panic("prometheus: NewBridge called with nil server")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Bridge{srv: srv, namespace: namespace}
}

// Describe implements prometheus.Collector. The metric set depends on the
// catalog's contents, so it is derived from a collection pass.
func (b *Bridge) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(b, ch)
}

// Collect implements prometheus.Collector by walking every object and
// publishing each numeric attribute as a gauge.
func (b *Bridge) Collect(ch chan<- prometheus.Metric) {
	for _, name := range b.srv.Names() {
		adapter, err := b.srv.Lookup(name)
		if err != nil {
			continue
		}
		for _, attr := range adapter.AttributeNames() {
			value, err := adapter.Attribute(attr)
			if err != nil {
				logger.Debug("skipping unreadable attribute",
					"object", name.String(), "attribute", attr, "error", err)
				continue
			}
			num, ok := numericValue(value)
			if !ok {
				continue
			}
			desc := prometheus.NewDesc(
				prometheus.BuildFQName(b.namespace, "", metricName(attr)),
				fmt.Sprintf("Catalog attribute %q.", attr),
				[]string{"domain", "object"}, nil,
			)
			metric, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, num,
				name.Domain(), name.String())
			if err != nil {
				continue
			}
			ch <- metric
		}
	}
}

// numericValue maps an attribute value onto a gauge reading. Durations
// become seconds, timestamps become Unix seconds, booleans become 0 or 1.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case time.Duration:
		return x.Seconds(), true
	case time.Time:
		return float64(x.UnixNano()) / float64(time.Second), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// metricName converts an attribute name to Prometheus form: camel case
// becomes snake case, separators become underscores.
func metricName(attr string) string {
	var sb strings.Builder
	var prev rune
	for i, r := range attr {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		case r == '.' || r == '-' || r == ' ':
			sb.WriteByte('_')
		default:
			sb.WriteRune(r)
		}
		prev = r
	}
	return sb.String()
}
