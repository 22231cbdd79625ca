package vminfo

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// EventMemoryThreshold is the event type emitted when heap usage crosses
// the configured threshold.
const EventMemoryThreshold = "memory.threshold"

// ThresholdReading is the payload of an EventMemoryThreshold event.
type ThresholdReading struct {
	HeapAlloc uint64
	Threshold uint64
}

// Memory exposes heap readings and emits threshold events. Observe drives
// the emission: the embedding application calls it at moments it considers
// meaningful, nothing here polls.
type Memory interface {
	managed.Object

	// HeapAlloc is the number of bytes of allocated heap objects.
	HeapAlloc() uint64

	// HeapSys is the number of heap bytes obtained from the OS.
	HeapSys() uint64

	// StackInUse is the number of bytes in stack spans.
	StackInUse() uint64

	// GCCount is the number of completed garbage collection cycles.
	GCCount() uint32

	// GCPauseTotal is the cumulative stop-the-world pause time.
	GCPauseTotal() time.Duration

	// Observe samples the heap and emits a threshold event on crossing.
	Observe()
}

type memoryInfo struct {
	*managed.Broadcaster

	threshold uint64
	exceeded  atomic.Bool
	sample    func() runtime.MemStats
}

func newMemoryInfo(threshold uint64, buffer int) *memoryInfo {
	return &memoryInfo{
		Broadcaster: newEmitter(managed.MustName(Domain+":type=Memory"), buffer),
		threshold:   threshold,
		sample:      readMemStats,
	}
}

func readMemStats() runtime.MemStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms
}

func (m *memoryInfo) HeapAlloc() uint64  { return m.sample().HeapAlloc }
func (m *memoryInfo) HeapSys() uint64    { return m.sample().HeapSys }
func (m *memoryInfo) StackInUse() uint64 { return m.sample().StackInuse }
func (m *memoryInfo) GCCount() uint32    { return m.sample().NumGC }

func (m *memoryInfo) GCPauseTotal() time.Duration {
	return time.Duration(m.sample().PauseTotalNs)
}

// Observe samples the heap and emits EventMemoryThreshold when usage
// crosses the threshold. Crossings are edge-triggered: once above the
// limit, further calls stay silent until usage dips below it again. A
// zero threshold disables emission entirely.
func (m *memoryInfo) Observe() {
	if m.threshold == 0 {
		return
	}
	ms := m.sample()
	if ms.HeapAlloc < m.threshold {
		m.exceeded.Store(false)
		return
	}
	if m.exceeded.CompareAndSwap(false, true) {
		m.Emit(EventMemoryThreshold,
			fmt.Sprintf("heap usage %d exceeds threshold %d", ms.HeapAlloc, m.threshold),
			ThresholdReading{HeapAlloc: ms.HeapAlloc, Threshold: m.threshold})
	}
}

// InstallMemory registers the heap usage emitter. The threshold is in
// bytes; zero disables threshold events.
func InstallMemory(reg *registry.Registry, threshold uint64, buffer int) error {
	return reg.RegisterSingleton(MemoryTag, newMemoryInfo(threshold, buffer))
}
