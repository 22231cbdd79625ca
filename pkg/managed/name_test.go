package managed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	name, err := ParseName("vm.runtime:type=runtime")
	require.NoError(t, err)
	require.Equal(t, "vm.runtime", name.Domain())
	require.Equal(t, "vm.runtime:type=runtime", name.String())

	typ, ok := name.Key("type")
	require.True(t, ok)
	require.Equal(t, "runtime", typ)

	_, ok = name.Key("name")
	require.False(t, ok)
}

func TestParseNameCanonicalizesPairOrder(t *testing.T) {
	a, err := ParseName("vm.memory:type=pool,name=heap-objects")
	require.NoError(t, err)
	b, err := ParseName("vm.memory:name=heap-objects,type=pool")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, "vm.memory:name=heap-objects,type=pool", a.String())
}

func TestParseNameRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no separator", "vm.runtime"},
		{"empty domain", ":type=runtime"},
		{"no pairs", "vm.runtime:"},
		{"pair without equals", "vm.runtime:type"},
		{"empty key", "vm.runtime:=runtime"},
		{"empty value", "vm.runtime:type="},
		{"duplicate key", "vm.memory:type=pool,type=heap"},
		{"space in domain", "vm runtime:type=runtime"},
		{"colon in value", "vm.runtime:type=a:b"},
		{"comma in key", "vm.runtime:ty,pe=runtime"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseName(tc.input)
			require.Error(t, err)
		})
	}
}

func TestMustNamePanicsOnInvalidInput(t *testing.T) {
	require.Panics(t, func() {
		MustName("not-a-name")
	})
	require.NotPanics(t, func() {
		MustName("vm.os:type=operating-system")
	})
}

func TestNameKeysReturnsCopy(t *testing.T) {
	name := MustName("vm.memory:name=stacks,type=pool")

	keys := name.Keys()
	require.Equal(t, map[string]string{"name": "stacks", "type": "pool"}, keys)

	keys["type"] = "mutated"
	again := name.Keys()
	require.Equal(t, "pool", again["type"])
}

func TestNameZeroValue(t *testing.T) {
	var zero Name
	require.True(t, zero.IsZero())
	require.False(t, MustName("vm.runtime:type=runtime").IsZero())
}
