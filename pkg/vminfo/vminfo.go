// Package vminfo ships the standard managed objects describing the Go
// runtime: program identity, goroutine accounting, heap usage, memory
// pools, the operating system, and build provenance.
//
// Each group is registered under a tag declared here, so applications can
// look objects up by capability rather than by concrete type. Groups
// install independently; Install wires the full standard catalog the way
// most embedders want it.
package vminfo

import (
	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// Domain is the name domain of every standard catalog object.
const Domain = "go.runtime"

var (
	// RuntimeTag binds the program identity object.
	RuntimeTag = registry.TagFor[Runtime]()

	// ThreadingTag binds goroutine accounting. Objects are registered
	// under ExtendedThreadingTag and reach this tag through the extension
	// closure.
	ThreadingTag = registry.TagFor[Threading]()

	// ExtendedThreadingTag extends ThreadingTag with scheduler and cgo
	// counters.
	ExtendedThreadingTag = registry.TagFor[ExtendedThreading](ThreadingTag)

	// MemoryTag binds the heap usage emitter.
	MemoryTag = registry.TagFor[Memory]()

	// MemoryPoolTag binds the per-pool memory readings, always as a list.
	MemoryPoolTag = registry.TagFor[MemoryPool]()

	// OSTag binds the operating system description, supplied lazily.
	OSTag = registry.TagFor[OperatingSystem]()

	// BuildTag binds build provenance, supplied lazily and absent when the
	// binary carries no build information.
	BuildTag = registry.TagFor[Build]()
)

// Options configures the standard catalog.
type Options struct {
	// MemoryThreshold is the heap usage, in bytes, above which the memory
	// object emits threshold events. Zero disables emission.
	MemoryThreshold uint64

	// EventBuffer is the per-subscriber buffer of emitting objects. Zero
	// or negative selects the default.
	EventBuffer int
}

// Install registers the complete standard catalog.
//
// The thread stats are owned by the caller, which feeds them through
// NoteStart and NoteExit; everything else is constructed here.
func Install(reg *registry.Registry, stats *ThreadStats, opts Options) error {
	if err := InstallRuntime(reg); err != nil {
		return err
	}
	if err := InstallThreading(reg, stats); err != nil {
		return err
	}
	if err := InstallMemory(reg, opts.MemoryThreshold, opts.EventBuffer); err != nil {
		return err
	}
	if err := InstallPools(reg); err != nil {
		return err
	}
	if err := InstallOS(reg); err != nil {
		return err
	}
	return InstallBuild(reg)
}

// newEmitter builds a broadcaster honoring the buffer option.
func newEmitter(name managed.Name, buffer int) *managed.Broadcaster {
	if buffer < 1 {
		return managed.NewBroadcaster(name)
	}
	return managed.NewBroadcasterWithBuffer(name, buffer)
}
