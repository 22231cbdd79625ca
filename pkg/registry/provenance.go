package registry

import (
	"github.com/aetheriaxai/graal/pkg/managed"
)

// HostCatalog is the discovery surface of a surrounding runtime, such as a
// tooling process this registry is embedded in. Allowed consults it to
// recognize objects that describe that other runtime rather than this one.
type HostCatalog interface {
	// Tags returns the capability tags the host recognizes.
	Tags() []*Tag

	// Discover returns the host's own objects for one capability tag. The
	// result is read-only to the caller.
	Discover(tag *Tag) []managed.Object
}

var _ HostCatalog = (*Registry)(nil)

// Discover returns the objects bound under the tag, with suppliers left
// unresolved. Together with Tags it makes *Registry a HostCatalog, so one
// registry can act as another's host.
func (r *Registry) Discover(tag *Tag) []managed.Object {
	objs, err := r.Many(tag)
	if err != nil {
		return nil
	}
	return objs
}

// SetHostCatalog installs the surrounding catalog consulted by Allowed.
// Passing nil removes it. Unlike registration this is not gated by Freeze:
// the host relationship is deployment wiring, not catalog content.
func (r *Registry) SetHostCatalog(host HostCatalog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.host = host
}

// HostCatalog returns the installed surrounding catalog, or nil.
func (r *Registry) HostCatalog() HostCatalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.host
}

// Allowed decides whether an object is safe to retain for the life of this
// process. The decision runs in three steps:
//
//  1. Objects registered here are allowed; this is the fast path.
//  2. An unregistered object that the host catalog discovers, under any
//     host tag the object implements, is rejected. It describes the host
//     runtime, and capturing it here would carry that runtime's state into
//     contexts that outlive it.
//  3. Everything else is application-provided and allowed.
//
// A nil candidate is never allowed. Objects without reference identity
// skip straight to step 3: they can be neither ours nor the host's.
func (r *Registry) Allowed(obj managed.Object) bool {
	if obj == nil {
		return false
	}
	key, err := identityOf(obj)
	if err != nil {
		return true
	}

	r.mu.RLock()
	_, ours := r.objects[key]
	host := r.host
	r.mu.RUnlock()

	if ours {
		return true
	}
	if host == nil {
		return true
	}

	// The host is external code, so it runs outside our lock. obj is
	// pointer-backed at this point, so == compares identity for anything
	// the host hands back.
	for _, t := range host.Tags() {
		if !t.Accepts(obj) {
			continue
		}
		for _, candidate := range host.Discover(t) {
			if candidate == obj {
				return false
			}
		}
	}
	return true
}
