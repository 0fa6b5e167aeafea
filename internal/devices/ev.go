package devices

// EvSession describes one day's parked-EV charging session, lazily sampled
// the first time it is needed for that day.
type EvSession struct {
	ArrivalStep  int
	DeadlineStep int
	RemainingKWh float64
}

// EvCharger models a single EV charging port. Each simulated day it samples
// a fresh session (dwell window, arrival offset, total energy demand) the
// first time RequestedKW or Apply is called for that day, then depletes
// RemainingKWh as energy is delivered.
type EvCharger struct {
	MaxChargeKW   float64
	DemandKWhMin  float64
	DemandKWhMax  float64
	DwellStepsMin int
	DwellStepsMax int
	StepsPerDay   int
	DtHours       float64

	rng        *rand64
	currentDay int
	session    *EvSession
	haveDay    bool
}

// NewEvCharger constructs an EvCharger with its own noise stream derived
// from seed. dtHours is needed at session-sampling time to cap demand at
// what the dwell window can actually deliver.
func NewEvCharger(maxChargeKW, demandKWhMin, demandKWhMax float64, dwellStepsMin, dwellStepsMax, stepsPerDay int, dtHours float64, seed uint64) *EvCharger {
	return &EvCharger{
		MaxChargeKW:   maxChargeKW,
		DemandKWhMin:  demandKWhMin,
		DemandKWhMax:  demandKWhMax,
		DwellStepsMin: dwellStepsMin,
		DwellStepsMax: dwellStepsMax,
		StepsPerDay:   stepsPerDay,
		DtHours:       dtHours,
		rng:           newRand64(seed + SeedOffsetEV),
	}
}

// sampleSessionForDay draws a fresh session for the given simulated day:
// first the dwell duration, then the arrival offset (which must leave room
// for the dwell window inside the day), then the total energy demand. The
// sampling order matters for reproducibility: changing only the demand
// range must not perturb the arrival/dwell draws.
func (e *EvCharger) sampleSessionForDay(day int) EvSession {
	dwellRange := e.DwellStepsMax - e.DwellStepsMin
	dwell := e.DwellStepsMin
	if dwellRange > 0 {
		dwell += int(e.rng.Float64() * float64(dwellRange+1))
	}
	if dwell > e.StepsPerDay {
		dwell = e.StepsPerDay
	}

	maxArrival := e.StepsPerDay - dwell
	arrivalOffset := 0
	if maxArrival > 0 {
		arrivalOffset = int(e.rng.Float64() * float64(maxArrival+1))
	}

	demandSpan := e.DemandKWhMax - e.DemandKWhMin
	demand := e.DemandKWhMin + e.rng.Float64()*demandSpan

	maxDeliverableKWh := e.MaxChargeKW * e.DtHours * float64(dwell)
	if demand > maxDeliverableKWh {
		demand = maxDeliverableKWh
	}
	if demand < 0 {
		demand = 0
	}

	arrivalStep := day*e.StepsPerDay + arrivalOffset
	return EvSession{
		ArrivalStep:  arrivalStep,
		DeadlineStep: arrivalStep + dwell,
		RemainingKWh: demand,
	}
}

// ensureSession samples a fresh session the first time a given simulated
// day is seen.
func (e *EvCharger) ensureSession(t int) *EvSession {
	day := t / e.StepsPerDay
	if !e.haveDay || day != e.currentDay {
		s := e.sampleSessionForDay(day)
		e.session = &s
		e.currentDay = day
		e.haveDay = true
	}
	return e.session
}

// RequestedKW reports the charging power the session would draw at
// timestep t if left uncapped, in kW (always non-negative), without
// committing any energy. The request is the minimum rate that delivers the
// remaining energy by the session deadline, capped at MaxChargeKW. This
// does not mutate session state; call Apply with the dispatch actually
// committed.
func (e *EvCharger) RequestedKW(t int, dtHours float64) float64 {
	s := e.ensureSession(t)
	if t < s.ArrivalStep || t >= s.DeadlineStep || s.RemainingKWh <= 0 {
		return 0
	}

	remainingSteps := s.DeadlineStep - t
	requiredKW := s.RemainingKWh / (float64(remainingSteps) * dtHours)
	powerKW := requiredKW
	if powerKW > e.MaxChargeKW {
		powerKW = e.MaxChargeKW
	}

	maxFromRemainingEnergy := s.RemainingKWh / dtHours
	if powerKW > maxFromRemainingEnergy {
		powerKW = maxFromRemainingEnergy
	}
	return powerKW
}

// Apply commits actualKW as the power delivered at timestep t for dtHours,
// depleting the active session's remaining energy. actualKW should already
// be clamped to [0, RequestedKW(t, dtHours)] by the caller.
func (e *EvCharger) Apply(t int, actualKW, dtHours float64) {
	s := e.ensureSession(t)
	s.RemainingKWh -= actualKW * dtHours
	if s.RemainingKWh < 0 {
		s.RemainingKWh = 0
	}
}
