//go:build darwin && cgo

package ioreg

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <stdlib.h>
#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/IOKitLib.h>

enum {
	IOREG_OK             = 0,
	IOREG_MISSING        = 1,
	IOREG_WRONG_TYPE     = 2,
	IOREG_WRONG_WIDTH    = 3,
	IOREG_EXTRACT_FAILED = 4,
};

// ioreg_get_matching_services runs a prepared class-match query.
// IOServiceGetMatchingServices consumes one reference to the dictionary,
// so the caller must not release it afterwards.
static kern_return_t ioreg_get_matching_services(CFMutableDictionaryRef match, io_iterator_t *iter) {
	return IOServiceGetMatchingServices(kIOMainPortDefault, match, iter);
}

static CFTypeRef ioreg_search_property(io_registry_entry_t entry, const char *plane, const char *key) {
	CFStringRef cf_key = CFStringCreateWithCString(kCFAllocatorDefault, key, kCFStringEncodingUTF8);
	if (cf_key == NULL) {
		return NULL;
	}
	CFTypeRef value = IORegistryEntrySearchCFProperty(entry, plane, cf_key, kCFAllocatorDefault, 0);
	CFRelease(cf_key);
	return value;
}

static int ioreg_copy_int64(io_registry_entry_t entry, const char *plane, const char *key, int64_t *out) {
	CFTypeRef value = ioreg_search_property(entry, plane, key);
	if (value == NULL) {
		return IOREG_MISSING;
	}
	if (CFGetTypeID(value) != CFNumberGetTypeID()) {
		CFRelease(value);
		return IOREG_WRONG_TYPE;
	}
	CFNumberRef number = (CFNumberRef)value;
	if (CFNumberGetType(number) != kCFNumberSInt64Type) {
		CFRelease(value);
		return IOREG_WRONG_WIDTH;
	}
	if (!CFNumberGetValue(number, kCFNumberSInt64Type, out)) {
		CFRelease(value);
		return IOREG_EXTRACT_FAILED;
	}
	CFRelease(value);
	return IOREG_OK;
}

static int ioreg_copy_string(io_registry_entry_t entry, const char *plane, const char *key, char *buf, size_t buflen) {
	CFTypeRef value = ioreg_search_property(entry, plane, key);
	if (value == NULL) {
		return IOREG_MISSING;
	}
	if (CFGetTypeID(value) != CFStringGetTypeID()) {
		CFRelease(value);
		return IOREG_WRONG_TYPE;
	}
	if (!CFStringGetCString((CFStringRef)value, buf, (CFIndex)buflen, kCFStringEncodingUTF8)) {
		CFRelease(value);
		return IOREG_EXTRACT_FAILED;
	}
	CFRelease(value);
	return IOREG_OK;
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Open returns a Registry backed by the live I/O Registry.
func Open() (Registry, error) {
	return systemRegistry{}, nil
}

// systemRegistry talks to IOKit through the kernel's main port.
type systemRegistry struct{}

func (systemRegistry) MatchingEntries(class string) ([]Entry, error) {
	cclass := C.CString(class)
	defer C.free(unsafe.Pointer(cclass))

	match := C.IOServiceMatching(cclass)
	if match == nil {
		return nil, fmt.Errorf("creating match dictionary for class %q failed", class)
	}

	var iter C.io_iterator_t
	if kr := C.ioreg_get_matching_services(match, &iter); kr != C.KERN_SUCCESS {
		return nil, fmt.Errorf("matching query for class %q failed: kern_return %#x", class, int(kr))
	}
	defer C.IOObjectRelease(C.io_object_t(iter))

	var entries []Entry
	for {
		obj := C.IOIteratorNext(iter)
		if obj == 0 {
			break
		}
		entries = append(entries, &systemEntry{entry: C.io_registry_entry_t(obj)})
	}
	return entries, nil
}

// systemEntry wraps one io_registry_entry_t handle.
type systemEntry struct {
	entry C.io_registry_entry_t
}

func (e *systemEntry) Int64Property(plane, key string) (int64, error) {
	cplane := C.CString(plane)
	defer C.free(unsafe.Pointer(cplane))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var value C.int64_t
	status := C.ioreg_copy_int64(e.entry, cplane, ckey, &value)
	if err := propertyError(status, plane, key, "a signed 64-bit number"); err != nil {
		return 0, err
	}
	return int64(value), nil
}

func (e *systemEntry) StringProperty(plane, key string) (string, error) {
	cplane := C.CString(plane)
	defer C.free(unsafe.Pointer(cplane))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	buf := make([]C.char, 512)
	status := C.ioreg_copy_string(e.entry, cplane, ckey, &buf[0], C.size_t(len(buf)))
	if err := propertyError(status, plane, key, "a string"); err != nil {
		return "", err
	}
	return C.GoString(&buf[0]), nil
}

func (e *systemEntry) Release() {
	C.IOObjectRelease(C.io_object_t(e.entry))
}

func propertyError(status C.int, plane, key, want string) error {
	switch status {
	case C.IOREG_OK:
		return nil
	case C.IOREG_MISSING:
		return fmt.Errorf("%w: %q on plane %s", ErrPropertyNotFound, key, plane)
	case C.IOREG_WRONG_TYPE:
		return fmt.Errorf("%w: %q is not %s", ErrPropertyType, key, want)
	case C.IOREG_WRONG_WIDTH:
		return fmt.Errorf("%w: %q is a number but not %s", ErrPropertyType, key, want)
	default:
		return fmt.Errorf("extracting value of %q failed", key)
	}
}
