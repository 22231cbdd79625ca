package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/query"
	"github.com/aetheriaxai/graal/pkg/registry"
)

type probeView interface {
	managed.Object
	Requests() uint64
}

var probeTag = registry.TagFor[probeView]()

// probe is a hand-written queryable with one attribute of each value
// class the bridge has to handle.
type probe struct {
	name managed.Name
}

func (p *probe) ObjectName() managed.Name { return p.name }

func (p *probe) Requests() uint64 { return 42 }

func (p *probe) AttributeNames() []string {
	return []string{"latency.max", "requests.total", "tls.enabled", "version"}
}

func (p *probe) Attribute(attr string) (any, error) {
	switch attr {
	case "requests.total":
		return p.Requests(), nil
	case "latency.max":
		return 250 * time.Millisecond, nil
	case "tls.enabled":
		return true, nil
	case "version":
		return "v1.2.3", nil
	}
	return nil, managed.ErrNoSuchAttribute
}

func buildBridgeServer(t *testing.T) *query.Server {
	t.Helper()

	reg := registry.New()
	p := &probe{name: managed.MustName("test.bridge:type=Probe")}
	if err := reg.RegisterSingleton(probeTag, p); err != nil {
		t.Fatalf("RegisterSingleton failed: %v", err)
	}
	srv, err := query.NewMaterializer(reg).Server()
	if err != nil {
		t.Fatalf("Server failed: %v", err)
	}
	return srv
}

func mustGather(t *testing.T, reg *prometheus.Registry) []*io_prometheus_client.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	return families
}

// findGauge returns the gauge value for the named family whose labels
// include every entry of want, failing the test when absent.
func findGauge(t *testing.T, families []*io_prometheus_client.MetricFamily, name string, want map[string]string) float64 {
	t.Helper()
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, want) {
				return metric.GetGauge().GetValue()
			}
		}
	}
	t.Fatalf("no gauge %q with labels %v", name, want)
	return 0
}

func matchLabels(metric *io_prometheus_client.Metric, want map[string]string) bool {
	got := make(map[string]string)
	for _, pair := range metric.GetLabel() {
		got[pair.GetName()] = pair.GetValue()
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}

func hasFamily(families []*io_prometheus_client.MetricFamily, name string) bool {
	for _, family := range families {
		if family.GetName() == name {
			return true
		}
	}
	return false
}

func TestBridgePublishesNumericAttributes(t *testing.T) {
	srv := buildBridgeServer(t)

	// Dedicated registry so the test never collides with global state.
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(NewBridge(srv, ""))

	families := mustGather(t, promReg)
	labels := map[string]string{
		"domain": "test.bridge",
		"object": "test.bridge:type=Probe",
	}

	if got := findGauge(t, families, "graal_requests_total", labels); got != 42 {
		t.Errorf("requests.total = %v, want 42", got)
	}
	if got := findGauge(t, families, "graal_latency_max", labels); got != 0.25 {
		t.Errorf("latency.max = %v, want 0.25 seconds", got)
	}
	if got := findGauge(t, families, "graal_tls_enabled", labels); got != 1 {
		t.Errorf("tls.enabled = %v, want 1", got)
	}
}

func TestBridgeSkipsNonNumericAttributes(t *testing.T) {
	srv := buildBridgeServer(t)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(NewBridge(srv, ""))

	if hasFamily(mustGather(t, promReg), "graal_version") {
		t.Error("string attribute published as a metric")
	}
}

func TestBridgeCustomNamespace(t *testing.T) {
	srv := buildBridgeServer(t)

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(NewBridge(srv, "acme"))

	families := mustGather(t, promReg)
	if !hasFamily(families, "acme_requests_total") {
		t.Error("custom namespace missing from family name")
	}
	if hasFamily(families, "graal_requests_total") {
		t.Error("default namespace used despite override")
	}
}

func TestNewBridgeRejectsNilServer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil server")
		}
	}()
	NewBridge(nil, "")
}

func TestMetricName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"requests.total", "requests_total"},
		{"HeapAlloc", "heap_alloc"},
		{"GCPauseTotal", "gcpause_total"},
		{"PID", "pid"},
		{"tracked.live", "tracked_live"},
		{"mixed-Case Name", "mixed_case_name"},
	}
	for _, tc := range cases {
		if got := metricName(tc.in); got != tc.want {
			t.Errorf("metricName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
