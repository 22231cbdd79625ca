package platform

import (
	"github.com/aetheriaxai/graal/pkg/registry"
)

type config struct {
	runtime   bool
	threading bool
	memory    bool
	pools     bool
	os        bool
	build     bool

	memoryThreshold uint64
	eventBuffer     int
	host            registry.HostCatalog
}

func defaultConfig() config {
	return config{
		runtime:   true,
		threading: true,
		memory:    true,
		pools:     true,
		os:        true,
		build:     true,
	}
}

// Option adjusts what New installs.
type Option func(*config)

// WithoutRuntime skips the program identity object.
func WithoutRuntime() Option {
	return func(c *config) { c.runtime = false }
}

// WithoutThreading skips goroutine accounting.
func WithoutThreading() Option {
	return func(c *config) { c.threading = false }
}

// WithoutMemory skips the heap usage emitter.
func WithoutMemory() Option {
	return func(c *config) { c.memory = false }
}

// WithoutPools skips the memory pool list.
func WithoutPools() Option {
	return func(c *config) { c.pools = false }
}

// WithoutOS skips the operating system description.
func WithoutOS() Option {
	return func(c *config) { c.os = false }
}

// WithoutBuild skips build provenance.
func WithoutBuild() Option {
	return func(c *config) { c.build = false }
}

// WithoutStandardCatalog skips every standard group, leaving an empty
// registry for the application's own objects.
func WithoutStandardCatalog() Option {
	return func(c *config) {
		c.runtime = false
		c.threading = false
		c.memory = false
		c.pools = false
		c.os = false
		c.build = false
	}
}

// WithMemoryThreshold sets the heap usage, in bytes, above which the
// memory object emits threshold events. Zero, the default, disables them.
func WithMemoryThreshold(bytes uint64) Option {
	return func(c *config) { c.memoryThreshold = bytes }
}

// WithEventBuffer sets the per-subscriber event buffer of emitting
// objects.
func WithEventBuffer(size int) Option {
	return func(c *config) { c.eventBuffer = size }
}

// WithHostCatalog installs the surrounding runtime's discovery surface,
// letting Allowed recognize objects that belong to it.
func WithHostCatalog(host registry.HostCatalog) Option {
	return func(c *config) { c.host = host }
}
