package query

import (
	"context"
	"sort"

	"github.com/aetheriaxai/graal/pkg/managed"
)

// Server is a materialized, immutable view over a registry's objects,
// indexed by object name. Servers are produced by a Materializer; once
// built, nothing can be added or removed, so every method is safe for
// concurrent use without further locking.
type Server struct {
	id       string
	adapters map[managed.Name]Adapter
	names    []managed.Name
}

// ID returns the server's unique identifier, assigned at materialization.
func (s *Server) ID() string {
	return s.id
}

// Count returns the number of installed objects.
func (s *Server) Count() int {
	return len(s.adapters)
}

// Names returns every installed object name in sorted order.
// The returned slice is a copy and safe to modify.
func (s *Server) Names() []managed.Name {
	out := make([]managed.Name, len(s.names))
	copy(out, s.names)
	return out
}

// NamesInDomain returns the installed names with the given domain, sorted.
// The returned slice is a copy and safe to modify.
func (s *Server) NamesInDomain(domain string) []managed.Name {
	var out []managed.Name
	for _, name := range s.names {
		if name.Domain() == domain {
			out = append(out, name)
		}
	}
	return out
}

// Domains returns the distinct domains of the installed names, sorted.
func (s *Server) Domains() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range s.names {
		domain := name.Domain()
		if _, ok := seen[domain]; ok {
			continue
		}
		seen[domain] = struct{}{}
		out = append(out, domain)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the adapter installed under the given name.
// Returns ErrObjectNotFound if no object carries the name.
func (s *Server) Lookup(name managed.Name) (Adapter, error) {
	adapter, ok := s.adapters[name]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return adapter, nil
}

// Attribute reads one attribute of the named object.
func (s *Server) Attribute(name managed.Name, attribute string) (any, error) {
	adapter, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	return adapter.Attribute(attribute)
}

// Subscribe opens an event subscription on the named object.
// Returns ErrNotSubscribable when the object's shape is not emitter.
func (s *Server) Subscribe(ctx context.Context, name managed.Name) (<-chan managed.Event, error) {
	adapter, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	if adapter.Shape() != managed.ShapeEmitter {
		return nil, ErrNotSubscribable
	}
	return adapter.(subscriber).Subscribe(ctx), nil
}
