package registry

import (
	"fmt"
	"reflect"

	"github.com/aetheriaxai/graal/pkg/managed"
)

// objectType is the root of every tag hierarchy. It can never be bound
// itself: a binding under the root would make every object in the catalog
// reachable through a single tag and defeat typed lookup.
var objectType = reflect.TypeOf((*managed.Object)(nil)).Elem()

// Tag identifies an interface that managed objects can be bound under.
//
// Tags form a hierarchy through explicit extension edges: registering an
// object under a tag also binds it under every tag reachable through the
// edges declared here. The edges are declared, not discovered. Go erases
// interface embedding into a flat method set, so a tag that embeds another
// tag's interface must still name it in extends for the binding to
// propagate.
//
// Tags are declared once, as package variables:
//
//	var DeviceTag = registry.TagFor[Device]()
//	var SensorTag = registry.TagFor[Sensor](DeviceTag)
//
// Two tags created for the same interface type are interchangeable: the
// registry keys bindings by the interface type, not the tag value.
type Tag struct {
	typ     reflect.Type
	extends []*Tag
}

// TagFor creates a tag for the interface type T, declaring the tags it
// extends.
//
// TagFor panics when T is not an interface, when T does not embed
// managed.Object, when T is managed.Object itself, or when T does not
// actually satisfy a declared extends edge. These are wiring mistakes in
// package initialization, not runtime conditions.
func TagFor[T any](extends ...*Tag) *Tag {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Interface {
		panic(fmt.Sprintf("registry: tag type %s is not an interface", typ))
	}
	if typ == objectType {
		panic("registry: cannot create a tag for the root managed.Object interface")
	}
	if !typ.Implements(objectType) {
		panic(fmt.Sprintf("registry: tag type %s does not embed managed.Object", typ))
	}
	for _, parent := range extends {
		if parent == nil {
			panic(fmt.Sprintf("registry: tag type %s declares a nil extends edge", typ))
		}
		if !typ.Implements(parent.typ) {
			panic(fmt.Sprintf("registry: tag type %s declares extends %s but does not implement it", typ, parent.typ))
		}
	}
	return &Tag{typ: typ, extends: extends}
}

// Name returns the tag's interface type name, such as "vminfo.Threading".
func (t *Tag) Name() string {
	return t.typ.String()
}

// Type returns the tag's interface type.
func (t *Tag) Type() reflect.Type {
	return t.typ
}

// Extends returns the directly declared extension edges.
// The returned slice is a copy and safe to modify.
func (t *Tag) Extends() []*Tag {
	out := make([]*Tag, len(t.extends))
	copy(out, t.extends)
	return out
}

// Accepts reports whether the object's dynamic type implements the tag's
// interface.
func (t *Tag) Accepts(obj managed.Object) bool {
	if obj == nil {
		return false
	}
	return reflect.TypeOf(obj).Implements(t.typ)
}

// closure returns the tag and every tag transitively reachable through
// extends edges, deduplicated by interface type. Diamond hierarchies
// contribute each tag once.
func (t *Tag) closure() []*Tag {
	seen := make(map[reflect.Type]struct{})
	var out []*Tag
	var walk func(tag *Tag)
	walk = func(tag *Tag) {
		if _, ok := seen[tag.typ]; ok {
			return
		}
		seen[tag.typ] = struct{}{}
		out = append(out, tag)
		for _, parent := range tag.extends {
			walk(parent)
		}
	}
	walk(t)
	return out
}
