package vminfo

import (
	"os"
	"runtime"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// OperatingSystem describes the platform the program runs on.
type OperatingSystem interface {
	managed.Object

	// GOOS is the running program's operating system target.
	GOOS() string

	// GOARCH is the running program's architecture target.
	GOARCH() string

	// Hostname is the kernel's reported host name.
	Hostname() string

	// CPUs is the number of logical CPUs usable by the program.
	CPUs() int
}

type osInfo struct {
	name     managed.Name
	hostname string
}

func (o *osInfo) ObjectName() managed.Name { return o.name }
func (o *osInfo) GOOS() string             { return runtime.GOOS }
func (o *osInfo) GOARCH() string           { return runtime.GOARCH }
func (o *osInfo) Hostname() string         { return o.hostname }
func (o *osInfo) CPUs() int                { return runtime.NumCPU() }

// osSupplier defers the hostname lookup until the catalog first needs it.
func osSupplier() *managed.Supplier {
	return managed.NewSupplier(func() (managed.Object, error) {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, err
		}
		return &osInfo{
			name:     managed.MustName(Domain + ":type=OperatingSystem"),
			hostname: hostname,
		}, nil
	})
}

// InstallOS registers the operating system description through a lazy
// supplier.
func InstallOS(reg *registry.Registry) error {
	return reg.RegisterSingleton(OSTag, osSupplier())
}
