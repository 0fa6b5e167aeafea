// Package engine orchestrates one discrete-time simulation run: it owns the
// devices, feeds the controller a snapshot each step, and commits the
// dispatch in a fixed order that the controllers themselves never need to
// know about.
package engine

import (
	"vppsim/internal/controller"
	"vppsim/internal/devices"
	"vppsim/internal/simtypes"
)

// SolarSource is satisfied by both devices.SolarPv and devices.SolarPvAr1.
type SolarSource interface {
	PowerKW(t int) float64
}

// Engine drives the step loop. Construct one with New, then call Run.
type Engine struct {
	Config     simtypes.SimConfig
	Controller controller.Controller
	BaseLoad   *devices.BaseLoad
	Solar      SolarSource
	EV         *devices.EvCharger
	Battery    *devices.Battery
	Feeder     *devices.Feeder
	DREvent    devices.DemandResponseEvent
	// Schedule is the day-ahead target net-feeder-kW for every absolute
	// timestep in the run.
	Schedule []float64
	// Forecast is the one-day-ahead load forecast, indexed modulo
	// StepsPerDay: the same array the greedy controller was built from,
	// fed back to every controller as a per-step input per spec.
	Forecast []float64
}

// New constructs an Engine from its fully wired collaborators.
func New(
	cfg simtypes.SimConfig,
	ctrl controller.Controller,
	baseLoad *devices.BaseLoad,
	solar SolarSource,
	ev *devices.EvCharger,
	battery *devices.Battery,
	feeder *devices.Feeder,
	drEvent devices.DemandResponseEvent,
	schedule []float64,
	forecast []float64,
) *Engine {
	return &Engine{
		Config:     cfg,
		Controller: ctrl,
		BaseLoad:   baseLoad,
		Solar:      solar,
		EV:         ev,
		Battery:    battery,
		Feeder:     feeder,
		DREvent:    drEvent,
		Schedule:   schedule,
		Forecast:   forecast,
	}
}

// Step advances the simulation by one timestep and returns the full
// record. The apply order is fixed and load-bearing: the EV session's
// actual draw is committed before the battery setpoint is, because the
// controller's battery feasibility window is computed against the net load
// the EV has already locked in — committing the battery first would let it
// claim headroom the EV still needs, and a controller has no way to know
// to reserve that headroom since it never sees commit order, only the
// snapshot it's handed.
func (e *Engine) Step(t int) simtypes.StepResult {
	dt := e.Config.DtHours

	baseKWRaw := e.BaseLoad.PowerKW(t)
	solarKW := e.Solar.PowerKW(t)
	evRequestedKW := e.EV.RequestedKW(t, dt)
	drRequestedKW := e.DREvent.RequestedReductionAtKW(t)
	targetKW := e.Schedule[t]
	forecastKW := e.Forecast[t%e.Config.StepsPerDay]

	input := simtypes.StepInput{
		Timestep:        t,
		ForecastKW:      forecastKW,
		TargetKW:        targetKW,
		DRRequestedKW:   drRequestedKW,
		BaseDemandRawKW: baseKWRaw,
		SolarKW:         solarKW,
		EVRequestedKW:   evRequestedKW,
	}
	state := simtypes.StepState{
		BatterySOC:            e.Battery.State.SOC,
		BatteryMaxChargeKW:    e.Battery.Params.MaxChargeKW,
		BatteryMaxDischargeKW: e.Battery.Params.MaxDischargeKW,
		MaxImportKW:           e.Feeder.MaxImportKW,
		MaxExportKW:           e.Feeder.MaxExportKW,
	}

	dispatch := e.Controller.Dispatch(input, state)

	evActualKW := dispatch.EVCapKW
	if evActualKW > evRequestedKW {
		evActualKW = evRequestedKW
	}
	if evActualKW < 0 {
		evActualKW = 0
	}
	e.EV.Apply(t, evActualKW, dt)

	batteryActualKW := e.Battery.ApplyDispatch(dispatch.BatterySetpointKW, dt)

	feederKW := devices.NetKW(dispatch.BaseDemandKW, evActualKW, solarKW, batteryActualKW)
	trackingErrorKW := feederKW - targetKW
	withinLimits := e.Feeder.WithinLimits(feederKW)

	absErr := trackingErrorKW
	if absErr < 0 {
		absErr = -absErr
	}
	imbalanceCost := absErr * dt * e.Config.ImbalancePricePerKWh

	return simtypes.StepResult{
		Timestep:           t,
		TimeHr:             float64(t) * dt,
		BaseKWRaw:          baseKWRaw,
		BaseKWAfterDR:      dispatch.BaseDemandKW,
		SolarKW:            solarKW,
		EVRequestedKW:      evRequestedKW,
		EVAfterDRKW:        dispatch.EVAfterDRKW,
		EVCapKW:            dispatch.EVCapKW,
		EVActualKW:         evActualKW,
		BatterySetpointKW:  dispatch.BatterySetpointKW,
		BatteryActualKW:    batteryActualKW,
		BatterySOC:         e.Battery.State.SOC,
		FeederKW:           feederKW,
		TargetKW:           targetKW,
		TrackingErrorKW:    trackingErrorKW,
		DRRequestedKW:      drRequestedKW,
		DRAchievedKW:       dispatch.DRAchievedKW,
		WithinFeederLimits: withinLimits,
		ImbalanceCostUSD:   imbalanceCost,
	}
}

// Run executes every timestep of the configured horizon in order and
// returns the full set of step results.
func (e *Engine) Run() []simtypes.StepResult {
	total := e.Config.TotalSteps()
	results := make([]simtypes.StepResult, 0, total)
	for t := 0; t < total; t++ {
		results = append(results, e.Step(t))
	}
	return results
}
