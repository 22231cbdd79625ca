package managed

import (
	"fmt"
	"sort"
	"strings"
)

// Name identifies a managed object inside a catalog. The textual form is
//
//	domain:key=value[,key=value...]
//
// for example "go.runtime:type=Runtime" or
// "go.runtime:type=MemoryPool,name=heap".
//
// Names are canonicalized on parse: key=value pairs are sorted by key, so two
// names that differ only in pair order compare equal with ==. The zero Name
// is invalid and reports IsZero.
type Name struct {
	s string
}

// nameChars lists the characters allowed in domains, keys, and values beyond
// letters and digits.
const nameChars = "._-"

// ParseName parses and canonicalizes the textual form of a Name.
//
// The domain and every key and value must be non-empty and consist of
// letters, digits, '.', '_', or '-'. At least one key=value pair is required
// and keys must be unique.
func ParseName(s string) (Name, error) {
	domain, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Name{}, fmt.Errorf("managed object name %q: missing ':' domain separator", s)
	}
	if err := checkNamePart(domain, "domain"); err != nil {
		return Name{}, fmt.Errorf("managed object name %q: %w", s, err)
	}
	if rest == "" {
		return Name{}, fmt.Errorf("managed object name %q: missing key=value pairs", s)
	}

	parts := strings.Split(rest, ",")
	pairs := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Name{}, fmt.Errorf("managed object name %q: pair %q is not key=value", s, part)
		}
		if err := checkNamePart(key, "key"); err != nil {
			return Name{}, fmt.Errorf("managed object name %q: %w", s, err)
		}
		if err := checkNamePart(value, "value"); err != nil {
			return Name{}, fmt.Errorf("managed object name %q: %w", s, err)
		}
		if _, dup := seen[key]; dup {
			return Name{}, fmt.Errorf("managed object name %q: duplicate key %q", s, key)
		}
		seen[key] = struct{}{}
		pairs = append(pairs, key+"="+value)
	}

	sort.Strings(pairs)
	return Name{s: domain + ":" + strings.Join(pairs, ",")}, nil
}

// MustName is like ParseName but panics on error. It is intended for names
// built from literals at package initialization.
func MustName(s string) Name {
	name, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return name
}

func checkNamePart(part, what string) error {
	if part == "" {
		return fmt.Errorf("empty %s", what)
	}
	for _, r := range part {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case strings.ContainsRune(nameChars, r):
		default:
			return fmt.Errorf("%s contains invalid character %q", what, r)
		}
	}
	return nil
}

// Domain returns the part before the ':' separator.
func (n Name) Domain() string {
	domain, _, _ := strings.Cut(n.s, ":")
	return domain
}

// Key returns the value bound to the given key, and whether the key exists.
func (n Name) Key(key string) (string, bool) {
	_, rest, _ := strings.Cut(n.s, ":")
	for _, pair := range strings.Split(rest, ",") {
		k, v, _ := strings.Cut(pair, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}

// Keys returns all key=value pairs as a map. The returned map is a copy and
// safe to modify.
func (n Name) Keys() map[string]string {
	_, rest, _ := strings.Cut(n.s, ":")
	if rest == "" {
		return map[string]string{}
	}
	keys := make(map[string]string)
	for _, pair := range strings.Split(rest, ",") {
		k, v, _ := strings.Cut(pair, "=")
		keys[k] = v
	}
	return keys
}

// String returns the canonical textual form.
func (n Name) String() string {
	return n.s
}

// IsZero reports whether the name is the zero value rather than a parsed name.
func (n Name) IsZero() bool {
	return n.s == ""
}
