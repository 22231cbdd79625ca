package vminfo

import (
	"os"
	"runtime"
	"time"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// Runtime describes the running program: identity, start time, toolchain.
type Runtime interface {
	managed.Object

	// StartTime is when this program's catalog came up. Go exposes no
	// portable process start time, so construction time stands in.
	StartTime() time.Time

	// Uptime is the time elapsed since StartTime.
	Uptime() time.Duration

	// PID is the operating system process id.
	PID() int

	// Args are the command line arguments, program name included.
	Args() []string

	// GoVersion is the version of the Go runtime executing the program.
	GoVersion() string
}

type runtimeInfo struct {
	name  managed.Name
	start time.Time
}

func newRuntimeInfo() *runtimeInfo {
	return &runtimeInfo{
		name:  managed.MustName(Domain + ":type=Runtime"),
		start: time.Now(),
	}
}

func (r *runtimeInfo) ObjectName() managed.Name { return r.name }
func (r *runtimeInfo) StartTime() time.Time     { return r.start }
func (r *runtimeInfo) Uptime() time.Duration    { return time.Since(r.start) }
func (r *runtimeInfo) PID() int                 { return os.Getpid() }
func (r *runtimeInfo) Args() []string           { return os.Args }
func (r *runtimeInfo) GoVersion() string        { return runtime.Version() }

// InstallRuntime registers the program identity object.
func InstallRuntime(reg *registry.Registry) error {
	return reg.RegisterSingleton(RuntimeTag, newRuntimeInfo())
}
