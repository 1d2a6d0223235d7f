//go:build !darwin || !cgo

package ioreg

// Open fails on platforms without an I/O Registry. Core-count and clock
// data have no equivalent source elsewhere, so there is no fallback.
func Open() (Registry, error) {
	return nil, ErrUnsupported
}
