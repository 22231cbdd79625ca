package vminfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

var (
	_ Runtime           = (*runtimeInfo)(nil)
	_ ExtendedThreading = (*threadInfo)(nil)
	_ managed.Queryable = (*threadInfo)(nil)
	_ Memory            = (*memoryInfo)(nil)
	_ managed.Emitter   = (*memoryInfo)(nil)
	_ MemoryPool        = (*pool)(nil)
	_ OperatingSystem   = (*osInfo)(nil)
	_ Build             = (*buildInfo)(nil)
)

func TestInstall(t *testing.T) {
	reg := registry.New()
	stats := &ThreadStats{}

	require.NoError(t, Install(reg, stats, Options{MemoryThreshold: 64 << 20}))

	// Seven bound tags: the extended threading registration covers the
	// base tag through the closure.
	require.Equal(t, 7, reg.CountBindings())

	// Nine distinct objects: runtime, threading, memory, four pools, and
	// the two suppliers.
	require.Equal(t, 9, reg.Count())

	base, err := reg.Single(ThreadingTag)
	require.NoError(t, err)
	ext, err := reg.Single(ExtendedThreadingTag)
	require.NoError(t, err)
	require.Same(t, ext, base)

	// Suppliers come back unresolved from lookups.
	osObj, err := reg.Single(OSTag)
	require.NoError(t, err)
	require.IsType(t, (*managed.Supplier)(nil), osObj)
	buildObj, err := reg.Single(BuildTag)
	require.NoError(t, err)
	require.IsType(t, (*managed.Supplier)(nil), buildObj)
}

func TestInstallTwiceConflicts(t *testing.T) {
	reg := registry.New()
	stats := &ThreadStats{}

	require.NoError(t, Install(reg, stats, Options{}))

	err := Install(reg, stats, Options{})
	require.True(t, registry.IsDuplicateBindingError(err))
}

func TestInstallThreadingRequiresStats(t *testing.T) {
	require.Error(t, InstallThreading(registry.New(), nil))
}

func TestStandardPools(t *testing.T) {
	pools := standardPools()
	require.Len(t, pools, 4)

	kinds := make([]string, len(pools))
	for i, obj := range pools {
		p := obj.(MemoryPool)
		kinds[i] = p.PoolName()
		require.GreaterOrEqual(t, p.Reserved(), p.InUse(), p.PoolName())
		require.Equal(t, "go.runtime:type=MemoryPool,name="+p.PoolName(),
			obj.ObjectName().String())
	}
	require.Equal(t, []string{"heap", "stack", "mspan", "mcache"}, kinds)
}

func TestOSSupplierResolves(t *testing.T) {
	obj, err := osSupplier().Resolve()
	require.NoError(t, err)
	require.NotNil(t, obj)

	osd, ok := obj.(OperatingSystem)
	require.True(t, ok)
	require.Equal(t, runtime.GOOS, osd.GOOS())
	require.Equal(t, runtime.GOARCH, osd.GOARCH())
	require.NotEmpty(t, osd.Hostname())
	require.Greater(t, osd.CPUs(), 0)
	require.Equal(t, "go.runtime:type=OperatingSystem", obj.ObjectName().String())
}

func TestBuildSupplierResolves(t *testing.T) {
	obj, err := buildSupplier().Resolve()
	require.NoError(t, err)
	if obj == nil {
		t.Skip("binary carries no build information")
	}

	b := obj.(Build)
	require.NotEmpty(t, b.ModulePath())
	require.NotEmpty(t, b.GoToolchain())
	require.Equal(t, "go.runtime:type=Build", obj.ObjectName().String())
}
