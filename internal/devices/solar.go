package devices

// SolarPv models a rooftop/community PV array using a half-cosine daylight
// envelope modulated by independent Gaussian noise. Generation is reported
// as a negative kW value (export), matching the feeder sign convention.
type SolarPv struct {
	KWPeak      float64
	SunriseIdx  int
	SunsetIdx   int
	NoiseStdDev float64
	StepsPerDay int

	rng *rand64
}

// NewSolarPv constructs a SolarPv with its own noise stream derived from seed.
func NewSolarPv(kwPeak float64, sunriseIdx, sunsetIdx int, noiseStdDev float64, stepsPerDay int, seed uint64) *SolarPv {
	return &SolarPv{
		KWPeak:      kwPeak,
		SunriseIdx:  sunriseIdx,
		SunsetIdx:   sunsetIdx,
		NoiseStdDev: noiseStdDev,
		StepsPerDay: stepsPerDay,
		rng:         newRand64(seed + SeedOffsetSolar),
	}
}

// PowerKW returns the generation at timestep t, in kW, negative when
// generating and exactly zero outside daylight hours (noise is never applied
// at night, since a panel in the dark does not jitter around zero output).
func (s *SolarPv) PowerKW(t int) float64 {
	frac := daylightFrac(t, s.StepsPerDay, s.SunriseIdx, s.SunsetIdx)
	if frac <= 0 {
		return 0
	}
	noise := gaussianNoise(s.rng, s.NoiseStdDev)
	gen := s.KWPeak * frac * (1 + noise)
	if gen < 0 {
		gen = 0
	}
	return -gen
}
