package config

import (
	"github.com/aetheriaxai/graal/pkg/platform"
)

// PlatformOptions converts the catalog section into platform construction
// options.
//
// This is the bridge between static configuration and catalog assembly:
// disabled groups become Without* options, and the event buffer and memory
// threshold carry over when set. The caller passes the result straight to
// platform.New:
//
//	cfg, _ := config.Load(path)
//	support, err := platform.New(cfg.PlatformOptions()...)
func (c *Config) PlatformOptions() []platform.Option {
	var opts []platform.Option

	for _, group := range c.Catalog.Disabled {
		switch group {
		case "runtime":
			opts = append(opts, platform.WithoutRuntime())
		case "threading":
			opts = append(opts, platform.WithoutThreading())
		case "memory":
			opts = append(opts, platform.WithoutMemory())
		case "pools":
			opts = append(opts, platform.WithoutPools())
		case "os":
			opts = append(opts, platform.WithoutOS())
		case "build":
			opts = append(opts, platform.WithoutBuild())
		}
	}

	if c.Catalog.EventBuffer > 0 {
		opts = append(opts, platform.WithEventBuffer(c.Catalog.EventBuffer))
	}
	if c.Catalog.MemoryThreshold > 0 {
		opts = append(opts, platform.WithMemoryThreshold(c.Catalog.MemoryThreshold.Uint64()))
	}

	return opts
}
