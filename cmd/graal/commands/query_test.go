package commands

import (
	"testing"
	"time"
)

func TestQueryResultRows(t *testing.T) {
	result := &QueryResult{
		Object: "go.runtime:type=Memory",
		Domain: "go.runtime",
		Attributes: map[string]any{
			"HeapAlloc":    uint64(2048),
			"GCCount":      uint32(7),
			"GCPauseTotal": 3 * time.Millisecond,
		},
		order: []string{"HeapAlloc", "GCCount", "GCPauseTotal"},
	}

	rows := result.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Rows follow the listing order, not map iteration order.
	expected := [][2]string{
		{"HeapAlloc", "2048"},
		{"GCCount", "7"},
		{"GCPauseTotal", "3ms"},
	}
	for i, want := range expected {
		if rows[i][0] != want[0] || rows[i][1] != want[1] {
			t.Errorf("row %d = %v, want %v", i, rows[i], want)
		}
	}
}
