package vminfo

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// Threading exposes goroutine accounting: the runtime's own live count
// plus the counters fed by the embedder's lifecycle hooks.
type Threading interface {
	managed.Object

	// Goroutines is the number of goroutines that currently exist.
	Goroutines() int

	// TrackedStarted counts goroutines announced through NoteStart.
	TrackedStarted() uint64

	// TrackedLive is the number of tracked goroutines not yet exited.
	TrackedLive() int64

	// TrackedPeak is the highest TrackedLive ever observed.
	TrackedPeak() int64
}

// ExtendedThreading adds scheduler and cgo counters to Threading.
type ExtendedThreading interface {
	Threading

	// OSThreads counts operating system threads created by the runtime.
	OSThreads() int

	// CgoCalls counts cgo calls made by the program.
	CgoCalls() int64

	// Procs is the effective GOMAXPROCS value.
	Procs() int
}

// ThreadStats carries the lifecycle counters behind the Threading object.
// The zero value is ready to use.
//
// NoteStart and NoteExit run on the goroutine being tracked, possibly in
// the tightest spots an embedder has, so they use atomics only: no
// allocation, no locks, no blocking.
type ThreadStats struct {
	live  atomic.Int64
	peak  atomic.Int64
	total atomic.Uint64
}

// NoteStart records one tracked goroutine start. Each tracked goroutine
// calls it exactly once, before any work, and pairs it with one NoteExit.
func (s *ThreadStats) NoteStart() {
	s.total.Add(1)
	live := s.live.Add(1)
	for {
		peak := s.peak.Load()
		if live <= peak || s.peak.CompareAndSwap(peak, live) {
			return
		}
	}
}

// NoteExit records one tracked goroutine exit.
func (s *ThreadStats) NoteExit() {
	s.live.Add(-1)
}

// Started returns the number of NoteStart calls so far.
func (s *ThreadStats) Started() uint64 { return s.total.Load() }

// Live returns the number of tracked goroutines not yet exited.
func (s *ThreadStats) Live() int64 { return s.live.Load() }

// Peak returns the highest Live value ever observed.
func (s *ThreadStats) Peak() int64 { return s.peak.Load() }

type threadInfo struct {
	name  managed.Name
	stats *ThreadStats
}

func newThreadInfo(stats *ThreadStats) *threadInfo {
	return &threadInfo{
		name:  managed.MustName(Domain + ":type=Threading"),
		stats: stats,
	}
}

func (t *threadInfo) ObjectName() managed.Name { return t.name }
func (t *threadInfo) Goroutines() int          { return runtime.NumGoroutine() }
func (t *threadInfo) TrackedStarted() uint64   { return t.stats.Started() }
func (t *threadInfo) TrackedLive() int64       { return t.stats.Live() }
func (t *threadInfo) TrackedPeak() int64       { return t.stats.Peak() }
func (t *threadInfo) CgoCalls() int64          { return runtime.NumCgoCall() }
func (t *threadInfo) Procs() int               { return runtime.GOMAXPROCS(0) }

func (t *threadInfo) OSThreads() int {
	n, _ := runtime.ThreadCreateProfile(nil)
	return n
}

// AttributeNames implements managed.Queryable.
func (t *threadInfo) AttributeNames() []string {
	return []string{
		"cgo.calls",
		"goroutines.live",
		"procs.max",
		"threads.os",
		"tracked.live",
		"tracked.peak",
		"tracked.started",
	}
}

// Attribute implements managed.Queryable.
func (t *threadInfo) Attribute(name string) (any, error) {
	switch name {
	case "cgo.calls":
		return t.CgoCalls(), nil
	case "goroutines.live":
		return t.Goroutines(), nil
	case "procs.max":
		return t.Procs(), nil
	case "threads.os":
		return t.OSThreads(), nil
	case "tracked.live":
		return t.TrackedLive(), nil
	case "tracked.peak":
		return t.TrackedPeak(), nil
	case "tracked.started":
		return t.TrackedStarted(), nil
	default:
		return nil, fmt.Errorf("%w: %q", managed.ErrNoSuchAttribute, name)
	}
}

// InstallThreading registers goroutine accounting under the extended tag,
// which makes it reachable under the base Threading tag as well.
func InstallThreading(reg *registry.Registry, stats *ThreadStats) error {
	if stats == nil {
		return fmt.Errorf("vminfo: threading requires thread stats")
	}
	return reg.RegisterSingleton(ExtendedThreadingTag, newThreadInfo(stats))
}
