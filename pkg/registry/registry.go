package registry

import (
	"reflect"
	"sort"
	"sync"

	"github.com/aetheriaxai/graal/pkg/managed"
)

// Registry manages all tagged bindings of managed objects.
// It provides thread-safe registration, lookup, and identity tracking.
//
// A registry lives through two phases. During assembly, components bind
// objects under tags; a binding propagates to every tag the starting tag
// extends, and no tag can ever be bound twice. Freeze ends assembly:
// afterwards registration fails and the contents are immutable, which is
// what lets lookups hand out snapshots without defensive locking on the
// caller's side.
//
// Example usage:
//
//	reg := registry.New()
//	reg.RegisterSingleton(vminfo.RuntimeTag, runtimeInfo)
//	reg.RegisterList(vminfo.MemoryPoolTag, pools)
//	reg.Freeze()
//
//	obj, _ := reg.Single(vminfo.RuntimeTag)
//	all, _ := reg.Many(vminfo.MemoryPoolTag)
type Registry struct {
	mu       sync.RWMutex
	frozen   bool
	bindings map[reflect.Type]*binding
	objects  map[identityKey]*objectInfo
	order    []managed.Object
	host     HostCatalog
}

// binding is either a singleton or a list, never both.
type binding struct {
	tag    *Tag
	single managed.Object
	list   []managed.Object
	isList bool
}

// objectInfo is the identity set entry for one tracked object.
type objectInfo struct {
	obj   managed.Object
	shape managed.Shape
}

// BindingKind distinguishes singleton bindings from list bindings.
type BindingKind int

const (
	// BindingSingleton binds exactly one object under a tag.
	BindingSingleton BindingKind = iota + 1

	// BindingList binds an ordered collection under a tag.
	BindingList
)

// String returns a human-readable name for the binding kind.
func (k BindingKind) String() string {
	switch k {
	case BindingSingleton:
		return "singleton"
	case BindingList:
		return "list"
	default:
		return "unknown"
	}
}

// Binding is a read-only snapshot of one tag binding.
// Objects and Shapes are parallel: Shapes[i] is the shape recorded for
// Objects[i] at registration time.
type Binding struct {
	Tag     *Tag
	Kind    BindingKind
	Objects []managed.Object
	Shapes  []managed.Shape
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		bindings: make(map[reflect.Type]*binding),
		objects:  make(map[identityKey]*objectInfo),
	}
}

// typeName names an object's dynamic type for error messages.
func typeName(obj managed.Object) string {
	return reflect.TypeOf(obj).String()
}

// RegisterSingleton binds a single object under the tag and under every tag
// the tag extends. Returns an error if any tag in that closure is already
// bound; in that case nothing is bound at all.
//
// The object's shape is recorded here, once, and never re-probed. A
// *managed.Supplier may stand in for an object under any tag: the supplier
// itself only carries a name, and whether its resolved object honors the
// tag's interface is checked when the catalog is materialized.
func (r *Registry) RegisterSingleton(tag *Tag, obj managed.Object) error {
	if tag == nil {
		return NewNilBindingError("cannot register with nil tag")
	}
	if obj == nil {
		return NewNilBindingError("cannot register nil object")
	}

	key, err := identityOf(obj)
	if err != nil {
		return err
	}
	if _, deferred := obj.(*managed.Supplier); !deferred && !tag.Accepts(obj) {
		return NewTagMismatchError(tag.Name(), typeName(obj))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return NewFrozenError("RegisterSingleton")
	}

	closure := tag.closure()
	for _, member := range closure {
		if _, exists := r.bindings[member.typ]; exists {
			return NewDuplicateBindingError(member.Name())
		}
	}

	for _, member := range closure {
		r.bindings[member.typ] = &binding{tag: member, single: obj}
	}
	r.track(key, obj)
	return nil
}

// RegisterList binds an ordered collection under the tag and under every tag
// the tag extends. A tag already bound as a list accepts further elements:
// the new objects are appended, in argument order, to every list in the
// closure. A tag bound as a singleton can never also hold a list; that
// conflict, like any invalid element, fails the call before anything is
// bound at all.
//
// An empty collection is valid and makes the closure's tags known without
// populating them, so Many returns an empty list instead of a not-found
// error. Each tag keeps its own list: appending under a narrow tag grows
// the broader tags it extends, never the other way around.
func (r *Registry) RegisterList(tag *Tag, objs []managed.Object) error {
	if tag == nil {
		return NewNilBindingError("cannot register with nil tag")
	}

	keys := make([]identityKey, len(objs))
	for i, obj := range objs {
		if obj == nil {
			return NewNilBindingError("cannot register list containing nil object")
		}
		key, err := identityOf(obj)
		if err != nil {
			return err
		}
		if _, deferred := obj.(*managed.Supplier); !deferred && !tag.Accepts(obj) {
			return NewTagMismatchError(tag.Name(), typeName(obj))
		}
		keys[i] = key
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return NewFrozenError("RegisterList")
	}

	closure := tag.closure()
	for _, member := range closure {
		if b, exists := r.bindings[member.typ]; exists && !b.isList {
			return NewDuplicateBindingError(member.Name())
		}
	}

	for _, member := range closure {
		if b, exists := r.bindings[member.typ]; exists {
			b.list = append(b.list, objs...)
			continue
		}
		list := make([]managed.Object, len(objs))
		copy(list, objs)
		r.bindings[member.typ] = &binding{tag: member, list: list, isList: true}
	}
	for i, obj := range objs {
		r.track(keys[i], obj)
	}
	return nil
}

// track adds an object to the identity set. Adding the same object again is
// a no-op, so one object bound under several disjoint tags is counted once.
func (r *Registry) track(key identityKey, obj managed.Object) {
	if _, exists := r.objects[key]; exists {
		return
	}
	r.objects[key] = &objectInfo{obj: obj, shape: managed.ShapeOf(obj)}
	r.order = append(r.order, obj)
}

// Single retrieves the singleton bound under the tag.
//
// Suppliers come back unresolved: a caller that needs the constructed
// object resolves the supplier itself, and a caller that only wants to know
// whether a binding exists does not pay for construction.
func (r *Registry) Single(tag *Tag) (managed.Object, error) {
	if tag == nil {
		return nil, NewNilBindingError("cannot look up nil tag")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.bindings[tag.typ]
	if !exists {
		return nil, NewNotFoundError(tag.Name())
	}
	if b.isList {
		return nil, NewWrongKindError(tag.Name())
	}
	return b.single, nil
}

// Many retrieves the objects bound under the tag. A singleton binding is
// returned as a one-element list.
// The returned slice is a copy and safe to modify.
func (r *Registry) Many(tag *Tag) ([]managed.Object, error) {
	if tag == nil {
		return nil, NewNilBindingError("cannot look up nil tag")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.bindings[tag.typ]
	if !exists {
		return nil, NewNotFoundError(tag.Name())
	}
	if !b.isList {
		return []managed.Object{b.single}, nil
	}
	out := make([]managed.Object, len(b.list))
	copy(out, b.list)
	return out, nil
}

// Contains reports whether the exact object, by reference identity, was
// registered here. Objects without reference identity are never contained.
func (r *Registry) Contains(obj managed.Object) bool {
	key, err := identityOf(obj)
	if err != nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.objects[key]
	return exists
}

// ShapeFor returns the shape recorded for the object at registration time.
// The second result is false when the object was never registered.
func (r *Registry) ShapeFor(obj managed.Object) (managed.Shape, bool) {
	key, err := identityOf(obj)
	if err != nil {
		return managed.ShapePlain, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	info, exists := r.objects[key]
	if !exists {
		return managed.ShapePlain, false
	}
	return info.shape, true
}

// Objects returns every distinct registered object in registration order.
// The returned slice is a copy and safe to modify.
func (r *Registry) Objects() []managed.Object {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]managed.Object, len(r.order))
	copy(out, r.order)
	return out
}

// Tags returns every bound tag, sorted by name.
// The returned slice is a copy and safe to modify.
func (r *Registry) Tags() []*Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Tag, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b.tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Bindings returns a snapshot of every binding, sorted by tag name.
// The snapshot slices are copies and safe to modify.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		snap := Binding{Tag: b.tag}
		if b.isList {
			snap.Kind = BindingList
			snap.Objects = make([]managed.Object, len(b.list))
			copy(snap.Objects, b.list)
		} else {
			snap.Kind = BindingSingleton
			snap.Objects = []managed.Object{b.single}
		}
		snap.Shapes = make([]managed.Shape, len(snap.Objects))
		for i, obj := range snap.Objects {
			snap.Shapes[i] = r.shapeLocked(obj)
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag.Name() < out[j].Tag.Name() })
	return out
}

// shapeLocked looks up the recorded shape while r.mu is already held.
func (r *Registry) shapeLocked(obj managed.Object) managed.Shape {
	key, err := identityOf(obj)
	if err != nil {
		return managed.ShapePlain
	}
	if info, exists := r.objects[key]; exists {
		return info.shape
	}
	return managed.ShapePlain
}

// Count returns the number of distinct registered objects. An object bound
// under several tags is counted once.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

// CountBindings returns the number of bound tags, counting every tag a
// registration propagated to.
func (r *Registry) CountBindings() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Freeze ends the assembly phase. Registration fails afterwards; lookups
// keep working. Freezing twice is a no-op.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}
