package devices

// Bounds on the AR(1) cloud-cover multiplier: never fully dark (0.2) nor
// above clear-sky-plus-glint (1.2).
const (
	cloudMultiplierMin = 0.2
	cloudMultiplierMax = 1.2
)

// SolarPvAr1 models cloud cover as an AR(1) process that multiplies the
// half-cosine daylight envelope. Unlike SolarPv's independent noise, the
// multiplier is stateful and advances every timestep regardless of whether
// it is currently daylight, so cloud cover persists across the night and
// into the next morning instead of resetting at sunrise.
type SolarPvAr1 struct {
	KWPeak        float64
	SunriseIdx    int
	SunsetIdx     int
	Alpha         float64
	CloudNoiseStd float64
	StepsPerDay   int

	rng        *rand64
	multiplier float64
}

// NewSolarPvAr1 constructs a SolarPvAr1 starting at multiplier 1.0 (clear
// sky) with its own noise stream derived from seed. alpha is clamped to
// [0, 1]: alpha=0 means every step redraws an independent multiplier,
// alpha=1 means the multiplier never changes from its current value.
func NewSolarPvAr1(kwPeak float64, sunriseIdx, sunsetIdx int, alpha, cloudNoiseStd float64, stepsPerDay int, seed uint64) *SolarPvAr1 {
	if sunsetIdx <= sunriseIdx {
		panic("solar_ar1: sunset index must be after sunrise index")
	}
	if sunsetIdx > stepsPerDay {
		panic("solar_ar1: sunset index must not exceed steps_per_day")
	}
	return &SolarPvAr1{
		KWPeak:        kwPeak,
		SunriseIdx:    sunriseIdx,
		SunsetIdx:     sunsetIdx,
		Alpha:         clamp01(alpha),
		CloudNoiseStd: cloudNoiseStd,
		StepsPerDay:   stepsPerDay,
		rng:           newRand64(seed + SeedOffsetSolar),
		multiplier:    1.0,
	}
}

// advanceMultiplier steps the AR(1) process: m[t+1] = alpha*m[t] + (1-alpha)*noise,
// clamped to [cloudMultiplierMin, cloudMultiplierMax]. Runs every timestep,
// day or night, so the process stays temporally correlated across sunset.
// The multiplier reverts toward the noise term itself rather than toward a
// fixed clear-sky mean of 1 — preserved as-is rather than "corrected".
func (s *SolarPvAr1) advanceMultiplier() {
	noise := gaussianNoise(s.rng, s.CloudNoiseStd)
	next := s.Alpha*s.multiplier + (1-s.Alpha)*noise
	s.multiplier = clamp(next, cloudMultiplierMin, cloudMultiplierMax)
}

// PowerKW returns the generation at timestep t, in kW, negative when
// generating. The AR(1) multiplier is advanced unconditionally before the
// daylight gate is applied.
func (s *SolarPvAr1) PowerKW(t int) float64 {
	s.advanceMultiplier()
	frac := daylightFrac(t, s.StepsPerDay, s.SunriseIdx, s.SunsetIdx)
	if frac <= 0 {
		return 0
	}
	gen := s.KWPeak * frac * s.multiplier
	if gen < 0 {
		gen = 0
	}
	return -gen
}
