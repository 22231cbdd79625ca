package query

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/aetheriaxai/graal/internal/logger"
	"github.com/aetheriaxai/graal/pkg/lazy"
	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// Materializer builds the catalog server for a registry, lazily and at most
// once. The first Server call freezes the registry, resolves every supplier,
// and installs an adapter per object; later calls return the same server.
//
// A failed build commits nothing. The registry stays frozen, but the next
// Server call re-runs the whole build, so a transient resolution failure
// does not leave a half-populated catalog behind.
type Materializer struct {
	reg  *registry.Registry
	cell lazy.Cell[*Server]
}

// NewMaterializer creates a materializer over the given registry.
func NewMaterializer(reg *registry.Registry) *Materializer {
	if reg == nil {
		panic("query: NewMaterializer called with nil registry")
	}
	return &Materializer{reg: reg}
}

// Server returns the catalog server, building it on first call.
func (m *Materializer) Server() (*Server, error) {
	return m.cell.Get(func() (*Server, error) {
		return build(m.reg)
	})
}

// Materialized returns the built server without triggering a build.
// The second result is false until a Server call has succeeded.
func (m *Materializer) Materialized() (*Server, bool) {
	return m.cell.Resolved()
}

// build assembles a complete server or fails without side effects beyond
// freezing the registry and resolving suppliers.
func build(reg *registry.Registry) (*Server, error) {
	// Materialization ends the assembly phase even when it fails:
	// whatever the outcome, no further registrations can appear.
	reg.Freeze()

	// An object registered under several tags is installed once, with its
	// attribute exposure drawn from all of them.
	tagsByObject := make(map[managed.Object][]*registry.Tag)
	for _, b := range reg.Bindings() {
		for _, obj := range b.Objects {
			tagsByObject[obj] = append(tagsByObject[obj], b.Tag)
		}
	}

	adapters := make(map[managed.Name]Adapter)
	for _, obj := range reg.Objects() {
		tags := tagsByObject[obj]
		shape, _ := reg.ShapeFor(obj)

		actual := obj
		if sup, ok := obj.(*managed.Supplier); ok {
			resolved, err := sup.Resolve()
			if err != nil {
				return nil, &MaterializeError{Tag: firstTagName(tags), Err: err}
			}
			if resolved == nil {
				// Genuinely absent on this platform.
				logger.Debug("skipping absent managed object", "tag", firstTagName(tags))
				continue
			}
			for _, tag := range tags {
				if !tag.Accepts(resolved) {
					return nil, &MaterializeError{
						Tag: tag.Name(),
						Err: registry.NewTagMismatchError(tag.Name(), fmt.Sprintf("%T", resolved)),
					}
				}
			}
			actual = resolved
			// The supplier could not be classified at registration;
			// its resolved object can.
			shape = managed.ShapeOf(actual)
		}

		name := actual.ObjectName()
		if name.IsZero() {
			return nil, &MaterializeError{Tag: firstTagName(tags), Err: ErrZeroName}
		}
		if _, taken := adapters[name]; taken {
			return nil, &MaterializeError{Name: name, Err: ErrDuplicateName}
		}

		adapters[name] = newAdapter(actual, shape, tags)
	}

	names := make([]managed.Name, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })

	srv := &Server{
		id:       uuid.New().String(),
		adapters: adapters,
		names:    names,
	}
	logger.Debug("catalog server materialized", "server_id", srv.id, "objects", srv.Count())
	return srv, nil
}

func firstTagName(tags []*registry.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0].Name()
}
