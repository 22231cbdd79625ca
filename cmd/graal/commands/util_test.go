package commands

import (
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	when := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "nil",
			input:    nil,
			expected: "-",
		},
		{
			name:     "string",
			input:    "go1.25.0",
			expected: "go1.25.0",
		},
		{
			name:     "int",
			input:    42,
			expected: "42",
		},
		{
			name:     "uint64",
			input:    uint64(1048576),
			expected: "1048576",
		},
		{
			name:     "bool",
			input:    true,
			expected: "true",
		},
		{
			name:     "duration",
			input:    250 * time.Millisecond,
			expected: "250ms",
		},
		{
			name:     "time",
			input:    when,
			expected: "2025-03-14T09:26:53Z",
		},
		{
			name:     "empty string slice",
			input:    []string{},
			expected: "-",
		},
		{
			name:     "string slice",
			input:    []string{"a", "b"},
			expected: "[a b]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatValue(tt.input)
			if result != tt.expected {
				t.Errorf("formatValue(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
