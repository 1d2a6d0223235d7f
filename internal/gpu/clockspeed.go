package gpu

import "strings"

// Maximum clock speeds per chip variant, from the measurements published
// at https://github.com/philipturner/metal-benchmarks. The registry does
// not expose clock speed, so the table is maintained by hand and needs a
// new row whenever new silicon ships.
type clockFamily struct {
	prefix   string
	baseline int64 // fallback for variants the tiers don't name
	tiers    []clockTier
}

type clockTier struct {
	suffix string
	mhz    int64
}

// Ordered most specific first: the bare "Apple M" row must stay below
// the numbered M-series rows it would otherwise shadow.
var clockFamilies = []clockFamily{
	{prefix: "Apple M1", baseline: 1278, tiers: []clockTier{
		{"M1", 1278},
		{"Pro", 1296},
		{"Max", 1296},
		{"Ultra", 1296},
	}},
	{prefix: "Apple M2", baseline: 1398, tiers: []clockTier{
		{"M2", 1398},
	}},
	{prefix: "Apple M", baseline: 1398},
	{prefix: "Apple A", baseline: 1336, tiers: []clockTier{
		{"A14", 1278},
		{"A15", 1336},
		{"A16", 1336},
	}},
}

// MaxClockSpeedMHz maps a model string to the chip's maximum clock
// speed. A recognized family with an unrecognized variant suffix falls
// back to the family baseline, so variants newer than the table still
// get a plausible figure. A model outside every known family yields
// (0, false): no data, not a measured zero.
func MaxClockSpeedMHz(model string) (int64, bool) {
	for _, f := range clockFamilies {
		if !strings.HasPrefix(model, f.prefix) {
			continue
		}
		for _, t := range f.tiers {
			if strings.HasSuffix(model, t.suffix) {
				return t.mhz, true
			}
		}
		return f.baseline, true
	}
	return 0, false
}
