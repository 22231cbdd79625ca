// Package platform assembles the process-wide introspection support: one
// registry carrying the standard Go runtime catalog plus whatever the
// embedding application registers, and one lazily materialized query
// server over it.
//
// There is no ambient global. The application constructs a Support during
// startup, hands it to whatever needs catalog access, registers its own
// objects while still in the build phase, and seals. The first Server call
// seals implicitly: run-time access ends assembly.
//
// Example usage:
//
//	support, err := platform.New()
//	if err != nil {
//	    return err
//	}
//	if err := support.Registry().RegisterSingleton(poolTag, pool); err != nil {
//	    return err
//	}
//	support.Seal()
//
//	srv, err := support.Server()
package platform

import (
	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/query"
	"github.com/aetheriaxai/graal/pkg/registry"
	"github.com/aetheriaxai/graal/pkg/vminfo"
)

// Support owns the process-wide catalog and its query server.
type Support struct {
	reg   *registry.Registry
	stats *vminfo.ThreadStats
	mat   *query.Materializer
}

// New builds a Support with the standard catalog installed, minus the
// groups the options disable.
func New(opts ...Option) (*Support, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := registry.New()
	if cfg.host != nil {
		reg.SetHostCatalog(cfg.host)
	}

	stats := &vminfo.ThreadStats{}
	if cfg.runtime {
		if err := vminfo.InstallRuntime(reg); err != nil {
			return nil, err
		}
	}
	if cfg.threading {
		if err := vminfo.InstallThreading(reg, stats); err != nil {
			return nil, err
		}
	}
	if cfg.memory {
		if err := vminfo.InstallMemory(reg, cfg.memoryThreshold, cfg.eventBuffer); err != nil {
			return nil, err
		}
	}
	if cfg.pools {
		if err := vminfo.InstallPools(reg); err != nil {
			return nil, err
		}
	}
	if cfg.os {
		if err := vminfo.InstallOS(reg); err != nil {
			return nil, err
		}
	}
	if cfg.build {
		if err := vminfo.InstallBuild(reg); err != nil {
			return nil, err
		}
	}

	return &Support{
		reg:   reg,
		stats: stats,
		mat:   query.NewMaterializer(reg),
	}, nil
}

// Registry exposes the catalog for build-phase registration.
func (s *Support) Registry() *registry.Registry {
	return s.reg
}

// Single looks up the singleton bound under the tag.
func (s *Support) Single(tag *registry.Tag) (managed.Object, error) {
	return s.reg.Single(tag)
}

// Many looks up the objects bound under the tag.
func (s *Support) Many(tag *registry.Tag) ([]managed.Object, error) {
	return s.reg.Many(tag)
}

// Tags lists every bound tag.
func (s *Support) Tags() []*registry.Tag {
	return s.reg.Tags()
}

// Allowed reports whether the object is safe to retain for the process
// lifetime. See registry.Registry.Allowed.
func (s *Support) Allowed(obj managed.Object) bool {
	return s.reg.Allowed(obj)
}

// Seal ends the build phase. Sealing twice is a no-op.
func (s *Support) Seal() {
	s.reg.Freeze()
}

// Sealed reports whether the build phase has ended.
func (s *Support) Sealed() bool {
	return s.reg.Frozen()
}

// Server returns the query server, materializing it on first call. The
// call seals the registry: run-time access ends assembly, whether or not
// Seal was called first.
func (s *Support) Server() (*query.Server, error) {
	return s.mat.Server()
}

// NoteStart records one tracked goroutine start. Safe from the tightest
// call sites: the counters are atomics, nothing allocates or blocks.
func (s *Support) NoteStart() {
	s.stats.NoteStart()
}

// NoteExit records one tracked goroutine exit.
func (s *Support) NoteExit() {
	s.stats.NoteExit()
}
