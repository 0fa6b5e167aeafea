package controller

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vppsim/internal/devices"
	"vppsim/internal/simtypes"
)

// runTwoStepTrackingRMSE drives ctrl against a bare battery (no baseload,
// solar, EV, or DR) over a 2-step day that demands more charging energy
// than the battery can absorb in one step, and returns the RMSE of
// feeder_kw vs target_kw across both steps.
func runTwoStepTrackingRMSE(t *testing.T, ctrl Controller) float64 {
	t.Helper()
	battery, err := devices.NewBattery(devices.BatteryParams{
		CapacityKWh: 5, MaxChargeKW: 5, MaxDischargeKW: 5, EtaCharge: 1, EtaDischarge: 1,
	}, 0)
	require.NoError(t, err)

	target := []float64{5, 5}
	var sqErrSum float64
	for step := 0; step < 2; step++ {
		input := simtypes.StepInput{Timestep: step, TargetKW: target[step]}
		state := simtypes.StepState{
			BatterySOC:            battery.State.SOC,
			BatteryMaxChargeKW:    battery.Params.MaxChargeKW,
			BatteryMaxDischargeKW: battery.Params.MaxDischargeKW,
			MaxImportKW:           100,
			MaxExportKW:           100,
		}
		d := ctrl.Dispatch(input, state)
		feederKW := battery.ApplyDispatch(d.BatterySetpointKW, 1.0)
		trackingErr := feederKW - target[step]
		sqErrSum += trackingErr * trackingErr
	}
	return math.Sqrt(sqErrSum / 2)
}

func TestGreedyRMSEBeatsNaiveWhenForecastExceedsOneStepHeadroom(t *testing.T) {
	naiveRMSE := runTwoStepTrackingRMSE(t, NewNaiveController())

	greedy := NewGreedyController(
		[]float64{0, 0}, []float64{5, 5},
		0, 0, 0,
		5, 5, 5, 1, 1, 1.0,
	)
	greedyRMSE := runTwoStepTrackingRMSE(t, greedy)

	// Hand-derived: naive charges flat-out each step (5 kW, then 0 kW once
	// full), RMSE = sqrt((0^2+5^2)/2) ~= 3.536. Greedy throttles both steps
	// to 2.5 kW, RMSE = sqrt((2.5^2+2.5^2)/2) = 2.5.
	assert.InDelta(t, 3.5355, naiveRMSE, 1e-3)
	assert.InDelta(t, 2.5, greedyRMSE, 1e-9)
	assert.LessOrEqual(t, greedyRMSE, 0.9*naiveRMSE)
}
