// Package ioreg provides read access to the macOS I/O Registry, the
// kernel's database of hardware and driver objects.
//
// Entries are located by service class name (e.g. "AGXAccelerator") and
// expose typed property lookups scoped to a registry plane. The real
// implementation calls IOKit through cgo and exists only on darwin;
// FakeRegistry stands in everywhere else and in tests.
package ioreg

import "errors"

// ServicePlane is the registry plane used to resolve property lookups.
// It corresponds to IOKit's kIOServicePlane.
const ServicePlane = "IOService"

var (
	// ErrUnsupported is returned by Open on platforms without an I/O Registry.
	ErrUnsupported = errors.New("I/O Registry is only available on macOS")

	// ErrPropertyNotFound is returned when an entry has no property with
	// the requested key on the requested plane.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyType is returned when a property exists but its declared
	// encoding does not match the requested type.
	ErrPropertyType = errors.New("property has unexpected type")
)

// Registry locates device entries by service class.
type Registry interface {
	// MatchingEntries returns a handle for every registry entry whose
	// service class matches name. The caller owns each returned entry
	// and must release it exactly once.
	MatchingEntries(class string) ([]Entry, error)
}

// Entry is an owned handle to a single registry entry.
type Entry interface {
	// Int64Property reads a numeric property whose declared encoding
	// must be a signed 64-bit integer.
	Int64Property(plane, key string) (int64, error)

	// StringProperty reads a string property.
	StringProperty(plane, key string) (string, error)

	// Release frees the handle. The entry must not be used afterwards.
	Release()
}
