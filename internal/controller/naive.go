package controller

import "vppsim/internal/simtypes"

// NaiveController sheds demand response out of the EV session first, then
// projects a battery setpoint that drives the feeder net toward the target
// this step, clamped to whatever window the feeder's import/export limits
// leave available once the non-battery load is accounted for. It never
// looks beyond the current step.
type NaiveController struct{}

// NewNaiveController constructs a NaiveController.
func NewNaiveController() *NaiveController {
	return &NaiveController{}
}

// Name identifies this controller for logging and CSV/API metadata.
func (c *NaiveController) Name() string { return "naive" }

// Dispatch computes the current step's dispatch with no lookahead.
func (c *NaiveController) Dispatch(input simtypes.StepInput, state simtypes.StepState) simtypes.StepDispatch {
	baseAfterDR, evAfterDR, drAchieved := applyDRShedding(input.DRRequestedKW, input.BaseDemandRawKW, input.EVRequestedKW)
	evCapKW := evCap(baseAfterDR, input.SolarKW, evAfterDR, state.BatteryMaxDischargeKW, state.MaxImportKW)

	netWithoutBattery := baseAfterDR + evCapKW + input.SolarKW
	low, high, ok := feasibilityWindow(netWithoutBattery, state.MaxImportKW, state.MaxExportKW, state.BatteryMaxDischargeKW, state.BatteryMaxChargeKW)

	clampedTarget := clampFloat(input.TargetKW, -state.MaxExportKW, state.MaxImportKW)
	desired := clampedTarget - netWithoutBattery

	var batterySetpoint float64
	if ok {
		batterySetpoint = clampFloat(desired, low, high)
	} else {
		// Net load alone already violates the feeder limit by more than the
		// battery can absorb. Commit the battery to the extreme that reduces
		// the violation magnitude; the engine records this step as a feeder
		// limit violation.
		batterySetpoint = clampFloat(desired, -state.BatteryMaxDischargeKW, state.BatteryMaxChargeKW)
	}

	return simtypes.StepDispatch{
		BaseDemandKW:      baseAfterDR,
		EVAfterDRKW:       evAfterDR,
		EVCapKW:           evCapKW,
		BatterySetpointKW: batterySetpoint,
		DRAchievedKW:      drAchieved,
	}
}
