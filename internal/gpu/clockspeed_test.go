package gpu

import "testing"

func TestMaxClockSpeedMHz(t *testing.T) {
	for _, c := range []struct {
		model string
		mhz   int64
		known bool
	}{
		{"Apple M1", 1278, true},
		{"Apple M1 Pro", 1296, true},
		{"Apple M1 Max", 1296, true},
		{"Apple M1 Ultra", 1296, true},
		{"Apple M2", 1398, true},
		{"Apple M2 Pro", 1398, true},
		{"Apple M2 Max", 1398, true},
		{"Apple M3", 1398, true},
		{"Apple M3 Max", 1398, true},
		{"Apple A14", 1278, true},
		{"Apple A15", 1336, true},
		{"Apple A16", 1336, true},
		{"Apple A17 Pro", 1336, true},
		{"Intel Iris Plus", 0, false},
		{"", 0, false},
	} {
		mhz, known := MaxClockSpeedMHz(c.model)
		if mhz != c.mhz || known != c.known {
			t.Errorf("MaxClockSpeedMHz(%q) = %d, %v; want %d, %v",
				c.model, mhz, known, c.mhz, c.known)
		}
	}
}

// Variants the table doesn't name fall back to the family baseline
// rather than failing, so rows aren't needed for every new suffix.
func TestMaxClockSpeedFamilyFallback(t *testing.T) {
	mhz, known := MaxClockSpeedMHz("Apple M1 Foo")
	if !known {
		t.Fatal("expected M1 family to be recognized")
	}
	if mhz != 1278 {
		t.Errorf("expected baseline 1278, got %d", mhz)
	}
}
