package vminfo

import (
	"runtime/debug"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// Build describes how the binary was produced.
type Build interface {
	managed.Object

	// ModulePath is the main module's path.
	ModulePath() string

	// GoToolchain is the Go version the binary was built with.
	GoToolchain() string

	// Revision is the VCS revision, empty when the build had none.
	Revision() string

	// Modified reports whether the working tree was dirty at build time.
	Modified() bool
}

type buildInfo struct {
	name      managed.Name
	path      string
	toolchain string
	revision  string
	modified  bool
}

func (b *buildInfo) ObjectName() managed.Name { return b.name }
func (b *buildInfo) ModulePath() string       { return b.path }
func (b *buildInfo) GoToolchain() string      { return b.toolchain }
func (b *buildInfo) Revision() string         { return b.revision }
func (b *buildInfo) Modified() bool           { return b.modified }

// buildSupplier resolves build provenance lazily. Binaries built without
// module support carry no build information; that resolves to absence, so
// the catalog simply omits the object.
func buildSupplier() *managed.Supplier {
	return managed.NewSupplier(func() (managed.Object, error) {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return nil, nil
		}
		info := &buildInfo{
			name:      managed.MustName(Domain + ":type=Build"),
			path:      bi.Main.Path,
			toolchain: bi.GoVersion,
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.revision = setting.Value
			case "vcs.modified":
				info.modified = setting.Value == "true"
			}
		}
		return info, nil
	})
}

// InstallBuild registers build provenance through a lazy supplier.
func InstallBuild(reg *registry.Registry) error {
	return reg.RegisterSingleton(BuildTag, buildSupplier())
}
