// Package query materializes a frozen registry into a queryable catalog
// server.
//
// Materialization happens lazily, at most once per materializer, and only
// commits on full success: a catalog with a broken object either exists
// completely or not at all. Each installed object is wrapped in the adapter
// matching its recorded shape, so the server never re-probes capabilities at
// query time.
package query

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/registry"
)

// Adapter is the server-side wrapper around one materialized object. It
// normalizes the three object shapes behind a single attribute surface.
type Adapter interface {
	// Name returns the object name the adapter is installed under.
	Name() managed.Name

	// Shape returns the shape the adapter was built for.
	Shape() managed.Shape

	// AttributeNames returns the exposed attributes.
	// The returned slice is a copy and safe to modify.
	AttributeNames() []string

	// Attribute returns the current value of the named attribute.
	Attribute(name string) (any, error)
}

// subscriber is the extra surface of emitter adapters.
type subscriber interface {
	Subscribe(ctx context.Context) <-chan managed.Event
}

// attributeSource is the part of an adapter that serves attribute reads.
// A managed.Queryable satisfies it directly; plain objects get a reflective
// source built from their tag interfaces.
type attributeSource interface {
	AttributeNames() []string
	Attribute(name string) (any, error)
}

// newAdapter wraps an object in the adapter for its shape.
//
// Queryable objects answer attribute reads themselves. Emitters forward
// subscriptions and serve attributes either themselves (when also
// queryable) or reflectively. Plain objects get the reflective treatment
// based on the tag interfaces they were registered under.
func newAdapter(obj managed.Object, shape managed.Shape, tags []*registry.Tag) Adapter {
	name := obj.ObjectName()
	switch shape {
	case managed.ShapeQueryable:
		return &queryableAdapter{name: name, source: obj.(managed.Queryable)}
	case managed.ShapeEmitter:
		emitter := obj.(managed.Emitter)
		var source attributeSource
		if q, ok := obj.(managed.Queryable); ok {
			source = q
		} else {
			source = newReflectSource(obj, tags)
		}
		return &emitterAdapter{name: name, source: source, emitter: emitter}
	default:
		return &reflectAdapter{name: name, source: newReflectSource(obj, tags)}
	}
}

// queryableAdapter passes attribute reads straight through to the object.
type queryableAdapter struct {
	name   managed.Name
	source managed.Queryable
}

func (a *queryableAdapter) Name() managed.Name { return a.name }
func (a *queryableAdapter) Shape() managed.Shape { return managed.ShapeQueryable }
func (a *queryableAdapter) AttributeNames() []string { return a.source.AttributeNames() }

func (a *queryableAdapter) Attribute(name string) (any, error) {
	return a.source.Attribute(name)
}

// emitterAdapter adds event forwarding on top of an attribute source.
type emitterAdapter struct {
	name    managed.Name
	source  attributeSource
	emitter managed.Emitter
}

func (a *emitterAdapter) Name() managed.Name { return a.name }
func (a *emitterAdapter) Shape() managed.Shape { return managed.ShapeEmitter }
func (a *emitterAdapter) AttributeNames() []string { return a.source.AttributeNames() }

func (a *emitterAdapter) Attribute(name string) (any, error) {
	return a.source.Attribute(name)
}

func (a *emitterAdapter) Subscribe(ctx context.Context) <-chan managed.Event {
	return a.emitter.Subscribe(ctx)
}

// reflectAdapter serves attributes for objects that expose none themselves.
type reflectAdapter struct {
	name   managed.Name
	source *reflectSource
}

func (a *reflectAdapter) Name() managed.Name { return a.name }
func (a *reflectAdapter) Shape() managed.Shape { return managed.ShapePlain }
func (a *reflectAdapter) AttributeNames() []string { return a.source.AttributeNames() }

func (a *reflectAdapter) Attribute(name string) (any, error) {
	return a.source.Attribute(name)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// reflectSource derives an attribute table from the tag interfaces an
// object was registered under, never from its concrete type. Exposure is
// bounded: a method becomes an attribute only if a tag declares it, it
// takes no arguments, and it returns one value or a value and an error.
// ObjectName stays internal to the catalog.
type reflectSource struct {
	names   []string
	methods map[string]reflect.Value
}

func newReflectSource(obj managed.Object, tags []*registry.Tag) *reflectSource {
	value := reflect.ValueOf(obj)
	methods := make(map[string]reflect.Value)
	for _, tag := range tags {
		typ := tag.Type()
		for i := 0; i < typ.NumMethod(); i++ {
			method := typ.Method(i)
			if method.Name == "ObjectName" {
				continue
			}
			if _, exists := methods[method.Name]; exists {
				continue
			}
			mt := method.Type
			if mt.NumIn() != 0 {
				continue
			}
			if mt.NumOut() != 1 && !(mt.NumOut() == 2 && mt.Out(1) == errorType) {
				continue
			}
			methods[method.Name] = value.MethodByName(method.Name)
		}
	}

	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)

	return &reflectSource{names: names, methods: methods}
}

func (s *reflectSource) AttributeNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *reflectSource) Attribute(name string) (any, error) {
	method, ok := s.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", managed.ErrNoSuchAttribute, name)
	}
	out := method.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
