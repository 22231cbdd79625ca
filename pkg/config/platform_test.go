package config

import (
	"testing"

	"github.com/aetheriaxai/graal/pkg/platform"
	"github.com/aetheriaxai/graal/pkg/vminfo"
)

func TestPlatformOptions_DisabledGroups(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Catalog.Disabled = []string{"build", "os"}

	support, err := platform.New(cfg.PlatformOptions()...)
	if err != nil {
		t.Fatalf("platform.New failed: %v", err)
	}

	if _, err := support.Single(vminfo.BuildTag); err == nil {
		t.Error("Expected build group to be disabled")
	}
	if _, err := support.Single(vminfo.OSTag); err == nil {
		t.Error("Expected os group to be disabled")
	}
	if _, err := support.Single(vminfo.RuntimeTag); err != nil {
		t.Errorf("Expected runtime group to stay enabled, got: %v", err)
	}
}

func TestPlatformOptions_Defaults(t *testing.T) {
	cfg := GetDefaultConfig()

	support, err := platform.New(cfg.PlatformOptions()...)
	if err != nil {
		t.Fatalf("platform.New failed: %v", err)
	}

	// The full standard catalog is installed when no groups are disabled
	if got := len(support.Tags()); got != 7 {
		t.Errorf("Expected 7 standard tags, got %d", got)
	}
	if _, err := support.Single(vminfo.MemoryTag); err != nil {
		t.Errorf("Expected memory group enabled by default, got: %v", err)
	}
}
