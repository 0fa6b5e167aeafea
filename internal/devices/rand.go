package devices

import "math/rand"

// rand64 is a thin wrapper over math/rand's deterministic source. Every
// device owns its own instance, seeded by a fixed offset from the scenario's
// master seed, so that perturbing one device's noise stream never perturbs
// another's.
type rand64 struct {
	r *rand.Rand
}

func newRand64(seed uint64) *rand64 {
	return &rand64{r: rand.New(rand.NewSource(int64(seed)))}
}

func (d *rand64) Float64() float64 {
	return d.r.Float64()
}

// Seed offsets, one per device kind, applied on top of the scenario's master
// seed so each device's noise stream is independent.
const (
	SeedOffsetBaseload = 0
	SeedOffsetSolar    = 31
	SeedOffsetEV       = 57
)
