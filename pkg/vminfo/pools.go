package vminfo

import (
	"runtime"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// MemoryPool exposes one runtime memory pool. Pools are registered as a
// list: heap, stack, mspan, and mcache.
type MemoryPool interface {
	managed.Object

	// PoolName identifies the pool within the list.
	PoolName() string

	// InUse is the number of bytes of the pool currently in use.
	InUse() uint64

	// Reserved is the number of bytes obtained from the OS for the pool.
	Reserved() uint64
}

type pool struct {
	name     managed.Name
	kind     string
	inUse    func(*runtime.MemStats) uint64
	reserved func(*runtime.MemStats) uint64
}

func newPool(kind string, inUse, reserved func(*runtime.MemStats) uint64) *pool {
	return &pool{
		name:     managed.MustName(Domain + ":type=MemoryPool,name=" + kind),
		kind:     kind,
		inUse:    inUse,
		reserved: reserved,
	}
}

func (p *pool) ObjectName() managed.Name { return p.name }
func (p *pool) PoolName() string         { return p.kind }

func (p *pool) InUse() uint64 {
	ms := readMemStats()
	return p.inUse(&ms)
}

func (p *pool) Reserved() uint64 {
	ms := readMemStats()
	return p.reserved(&ms)
}

func standardPools() []managed.Object {
	return []managed.Object{
		newPool("heap",
			func(ms *runtime.MemStats) uint64 { return ms.HeapInuse },
			func(ms *runtime.MemStats) uint64 { return ms.HeapSys }),
		newPool("stack",
			func(ms *runtime.MemStats) uint64 { return ms.StackInuse },
			func(ms *runtime.MemStats) uint64 { return ms.StackSys }),
		newPool("mspan",
			func(ms *runtime.MemStats) uint64 { return ms.MSpanInuse },
			func(ms *runtime.MemStats) uint64 { return ms.MSpanSys }),
		newPool("mcache",
			func(ms *runtime.MemStats) uint64 { return ms.MCacheInuse },
			func(ms *runtime.MemStats) uint64 { return ms.MCacheSys }),
	}
}

// InstallPools registers the standard memory pools as a list.
func InstallPools(reg *registry.Registry) error {
	return reg.RegisterList(MemoryPoolTag, standardPools())
}
