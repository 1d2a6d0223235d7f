package ioreg

import "fmt"

// FakeRegistry is an in-memory Registry for tests and unsupported
// platforms. It mimics the real implementation's property typing: a
// lookup fails with ErrPropertyType when the stored value is not the
// requested kind, including numbers stored at a narrower width.
type FakeRegistry struct {
	// Entries maps a service class to the entries a match query returns.
	Entries map[string][]*FakeEntry

	// Err, when set, is returned verbatim by MatchingEntries.
	Err error
}

func (r *FakeRegistry) MatchingEntries(class string) ([]Entry, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	fakes := r.Entries[class]
	entries := make([]Entry, 0, len(fakes))
	for _, f := range fakes {
		entries = append(entries, f)
	}
	return entries, nil
}

// FakeEntry is a registry entry backed by a plane-keyed property map.
type FakeEntry struct {
	// Props holds property values keyed by plane, then by property key.
	// Supported value kinds: int64 (well-formed numeric property),
	// int or int32 (numeric property with the wrong declared width),
	// string, and anything else (wrong type entirely).
	Props map[string]map[string]any

	// Released counts Release calls so tests can assert handle discipline.
	Released int
}

// NewFakeEntry creates an entry carrying props on the IOService plane.
func NewFakeEntry(props map[string]any) *FakeEntry {
	return &FakeEntry{Props: map[string]map[string]any{ServicePlane: props}}
}

func (e *FakeEntry) Int64Property(plane, key string) (int64, error) {
	val, ok := e.Props[plane][key]
	if !ok {
		return 0, fmt.Errorf("%w: %q on plane %s", ErrPropertyNotFound, key, plane)
	}
	switch v := val.(type) {
	case int64:
		return v, nil
	case int, int32, uint32, uint64:
		return 0, fmt.Errorf("%w: %q is a number but not a signed 64-bit number", ErrPropertyType, key)
	default:
		return 0, fmt.Errorf("%w: %q is not a signed 64-bit number", ErrPropertyType, key)
	}
}

func (e *FakeEntry) StringProperty(plane, key string) (string, error) {
	val, ok := e.Props[plane][key]
	if !ok {
		return "", fmt.Errorf("%w: %q on plane %s", ErrPropertyNotFound, key, plane)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrPropertyType, key)
	}
	return s, nil
}

func (e *FakeEntry) Release() {
	e.Released++
}
