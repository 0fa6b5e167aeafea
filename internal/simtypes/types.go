// Package simtypes holds the configuration and per-step data contracts shared
// between the engine, the controllers, and the post-hoc KPI/export/API
// collaborators.
package simtypes

import "fmt"

// SimConfig centralizes simulation timing so every device and the engine
// reference a single source of truth for dt_hours, instead of recomputing it.
type SimConfig struct {
	// StepsPerDay is the number of simulation timesteps per simulated day.
	StepsPerDay int
	// Days is the number of simulated days.
	Days int
	// DtHours is the duration of one timestep in hours, derived as 24/StepsPerDay.
	DtHours float64
	// Seed is the master random seed; devices derive their own seeds from it
	// by fixed offsets so that changing one device's parameters does not
	// perturb another's stream.
	Seed uint64
	// ImbalancePricePerKWh is the $/kWh settlement price applied to the
	// absolute tracking error each step.
	ImbalancePricePerKWh float64
}

// NewSimConfig validates and constructs a SimConfig.
func NewSimConfig(stepsPerDay, days int, seed uint64, imbalancePricePerKWh float64) (SimConfig, error) {
	if stepsPerDay <= 0 {
		return SimConfig{}, fmt.Errorf("simulation.steps_per_day must be > 0, got %d", stepsPerDay)
	}
	if days <= 0 {
		return SimConfig{}, fmt.Errorf("simulation.days must be > 0, got %d", days)
	}
	return SimConfig{
		StepsPerDay:          stepsPerDay,
		Days:                 days,
		DtHours:              24.0 / float64(stepsPerDay),
		Seed:                 seed,
		ImbalancePricePerKWh: imbalancePricePerKWh,
	}, nil
}

// TotalSteps returns the total number of simulation steps across all days.
func (c SimConfig) TotalSteps() int {
	return c.StepsPerDay * c.Days
}

// StepInput is the set of device readings and external signals fed to the
// controller for one timestep.
type StepInput struct {
	Timestep        int
	ForecastKW      float64
	TargetKW        float64
	DRRequestedKW   float64
	BaseDemandRawKW float64
	SolarKW         float64
	EVRequestedKW   float64
}

// StepState is the battery and feeder state snapshot available to the
// controller. Controllers never hold a live reference to the battery or
// feeder; they only ever see this immutable snapshot.
type StepState struct {
	BatterySOC             float64
	BatteryMaxChargeKW     float64
	BatteryMaxDischargeKW  float64
	MaxImportKW            float64
	MaxExportKW            float64
}

// StepDispatch is the controller's dispatch decision for one timestep.
type StepDispatch struct {
	BaseDemandKW      float64
	EVAfterDRKW       float64
	EVCapKW           float64
	BatterySetpointKW float64
	DRAchievedKW      float64
}

// StepResult is the complete record of one simulation timestep: every raw,
// intermediate, and final quantity, suitable for KPI computation, CSV
// export, and the HTTP telemetry views.
type StepResult struct {
	Timestep         int
	TimeHr           float64
	BaseKWRaw        float64
	BaseKWAfterDR    float64
	SolarKW          float64
	EVRequestedKW    float64
	EVAfterDRKW      float64
	EVCapKW          float64
	EVActualKW       float64
	BatterySetpointKW float64
	BatteryActualKW  float64
	BatterySOC       float64
	FeederKW         float64
	TargetKW         float64
	TrackingErrorKW  float64
	DRRequestedKW    float64
	DRAchievedKW     float64
	WithinFeederLimits bool
	ImbalanceCostUSD float64
}

// String renders a compact single-line summary, mirroring the original
// simulator's Display impl for StepResult — used by cmd/demo to print sample
// steps.
func (r StepResult) String() string {
	return fmt.Sprintf(
		"t=%3d (%5.1fh) | feeder=%6.2f kW  target=%6.2f kW  err=%6.2f kW | "+
			"base=%.2f  solar=%.2f  ev=%.2f  bat=%.2f (SoC=%.1f%%) | "+
			"DR(req=%.2f, done=%.2f) ok=%t",
		r.Timestep, r.TimeHr, r.FeederKW, r.TargetKW, r.TrackingErrorKW,
		r.BaseKWAfterDR, r.SolarKW, r.EVActualKW, r.BatteryActualKW, r.BatterySOC*100,
		r.DRRequestedKW, r.DRAchievedKW, r.WithinFeederLimits,
	)
}
