package devices

// Feeder aggregates the net power flow at a point of common coupling.
// Positive kW is import (drawn from the upstream grid); negative kW is
// export (fed back upstream).
type Feeder struct {
	Name        string
	MaxImportKW float64
	MaxExportKW float64
}

// NewFeeder constructs a Feeder with the given import/export limits.
func NewFeeder(name string, maxImportKW, maxExportKW float64) *Feeder {
	return &Feeder{Name: name, MaxImportKW: maxImportKW, MaxExportKW: maxExportKW}
}

// NetKW sums the device contributions for one timestep. There is no sign
// flipping here: every device already reports its power in feeder
// convention (positive=import/load, negative=export/generation), so
// aggregation is a plain sum.
func NetKW(baseKW, evKW, solarKW, batteryKW float64) float64 {
	return baseKW + evKW + solarKW + batteryKW
}

// WithinLimits reports whether netKW stays within the feeder's contracted
// import/export envelope.
func (f *Feeder) WithinLimits(netKW float64) bool {
	if netKW > f.MaxImportKW {
		return false
	}
	if netKW < -f.MaxExportKW {
		return false
	}
	return true
}
