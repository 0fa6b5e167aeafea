package controller

import (
	"vppsim/internal/devices"
	"vppsim/internal/simtypes"
)

// GreedyController extends the naive per-step feasibility projection with a
// forecast-aware lookahead. At construction it walks one day's forecast and
// target once, backward, against a deterministic noise-free solar estimate,
// accumulating how much future charging (or discharging) energy the naive
// projection would ask of the battery from each step of the day onward. At
// dispatch time, if the cumulative future demand from the next step exceeds
// what the battery can still absorb (or still deliver) given its current
// SOC, the current step's setpoint is throttled proportionally — trading
// off some of this step's tracking accuracy to leave headroom for the rest
// of the day. The lookahead tables are pure arrays indexed modulo the day
// length, so one GreedyController may be reused across every day of a
// multi-day run.
type GreedyController struct {
	stepsPerDay    int
	maxChargeKW    float64
	maxDischargeKW float64
	etaCharge      float64
	etaDischarge   float64
	dtHours        float64
	capacityKWh    float64

	// remainingChargeKWh[t] is the suffix sum, from day-step t to the end of
	// the day, of stored-side energy the naive forecast would ask the
	// battery to absorb while charging.
	remainingChargeKWh []float64
	// remainingDischargeKWh[t] is the analogous suffix sum of stored-side
	// energy the naive forecast would ask the battery to deliver while
	// discharging.
	remainingDischargeKWh []float64
}

// NewGreedyController precomputes the lookahead tables from one day's
// forecast and target (both length stepsPerDay), a deterministic solar
// estimator (kwPeak/sunriseIdx/sunsetIdx, noise-free), and the battery's
// static configuration.
func NewGreedyController(
	forecastKW, targetKW []float64,
	kwPeak float64, sunriseIdx, sunsetIdx int,
	maxChargeKW, maxDischargeKW, capacityKWh, etaCharge, etaDischarge, dtHours float64,
) *GreedyController {
	n := len(forecastKW)
	remainingCharge := make([]float64, n)
	remainingDischarge := make([]float64, n)

	var chargeAcc, dischargeAcc float64
	for t := n - 1; t >= 0; t-- {
		solarEst := -kwPeak * devices.DaylightFrac(t, n, sunriseIdx, sunsetIdx)
		residual := targetKW[t] - (forecastKW[t] + solarEst)
		if residual > 0 {
			rate := residual
			if rate > maxChargeKW {
				rate = maxChargeKW
			}
			chargeAcc += rate * dtHours * etaCharge
		} else if residual < 0 {
			rate := -residual
			if rate > maxDischargeKW {
				rate = maxDischargeKW
			}
			dischargeAcc += rate * dtHours / etaDischarge
		}
		remainingCharge[t] = chargeAcc
		remainingDischarge[t] = dischargeAcc
	}

	return &GreedyController{
		stepsPerDay:           n,
		maxChargeKW:           maxChargeKW,
		maxDischargeKW:        maxDischargeKW,
		etaCharge:             etaCharge,
		etaDischarge:          etaDischarge,
		dtHours:               dtHours,
		capacityKWh:           capacityKWh,
		remainingChargeKWh:    remainingCharge,
		remainingDischargeKWh: remainingDischarge,
	}
}

// Name identifies this controller for logging and CSV/API metadata.
func (c *GreedyController) Name() string { return "greedy" }

// Dispatch sheds demand response and caps the EV the same way
// NaiveController does, then throttles the naive tracking setpoint against
// the precomputed lookahead tables before projecting it into the feeder's
// feasibility window.
func (c *GreedyController) Dispatch(input simtypes.StepInput, state simtypes.StepState) simtypes.StepDispatch {
	baseAfterDR, evAfterDR, drAchieved := applyDRShedding(input.DRRequestedKW, input.BaseDemandRawKW, input.EVRequestedKW)
	evCapKW := evCap(baseAfterDR, input.SolarKW, evAfterDR, state.BatteryMaxDischargeKW, state.MaxImportKW)

	netWithoutBattery := baseAfterDR + evCapKW + input.SolarKW
	clampedTarget := clampFloat(input.TargetKW, -state.MaxExportKW, state.MaxImportKW)
	tracking := clampedTarget - netWithoutBattery

	if c.stepsPerDay > 0 {
		tDay := input.Timestep % c.stepsPerDay
		next := tDay + 1

		if tracking > 0 {
			currentStored := tracking * c.dtHours * c.etaCharge
			var futureStored float64
			if next < c.stepsPerDay {
				futureStored = c.remainingChargeKWh[next]
			}
			room := (1 - state.BatterySOC) * c.capacityKWh
			if total := currentStored + futureStored; total > room && total > 0 {
				tracking *= room / total
			}
		} else if tracking < 0 {
			currentStored := -tracking * c.dtHours / c.etaDischarge
			var futureStored float64
			if next < c.stepsPerDay {
				futureStored = c.remainingDischargeKWh[next]
			}
			available := state.BatterySOC * c.capacityKWh
			if total := currentStored + futureStored; total > available && total > 0 {
				tracking *= available / total
			}
		}
	}

	low, high, ok := feasibilityWindow(netWithoutBattery, state.MaxImportKW, state.MaxExportKW, state.BatteryMaxDischargeKW, state.BatteryMaxChargeKW)

	var batterySetpoint float64
	if ok {
		batterySetpoint = clampFloat(tracking, low, high)
	} else {
		batterySetpoint = clampFloat(tracking, -state.BatteryMaxDischargeKW, state.BatteryMaxChargeKW)
	}

	return simtypes.StepDispatch{
		BaseDemandKW:      baseAfterDR,
		EVAfterDRKW:       evAfterDR,
		EVCapKW:           evCapKW,
		BatterySetpointKW: batterySetpoint,
		DRAchievedKW:      drAchieved,
	}
}
