package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vppsim/internal/controller"
	"vppsim/internal/devices"
	"vppsim/internal/simtypes"
)

func buildTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg, err := simtypes.NewSimConfig(24, 1, 1, 0.10)
	require.NoError(t, err)

	baseLoad := devices.NewBaseLoad(2.0, 1.0, 0.3, 0.05, 24, 1)
	solar := devices.NewSolarPv(5.0, 6, 18, 0.05, 24, 1)
	ev := devices.NewEvCharger(7.2, 4.0, 14.0, 3, 10, 24, cfg.DtHours, 1)
	battery, err := devices.NewBattery(devices.BatteryParams{
		CapacityKWh: 10, MaxChargeKW: 5, MaxDischargeKW: 5, EtaCharge: 0.95, EtaDischarge: 0.95,
	}, 0.5)
	require.NoError(t, err)
	feeder := devices.NewFeeder("test", 5, 4)
	drEvent := devices.DemandResponseEvent{StartStep: 17, EndStep: 21, RequestedReductionKW: 1.5}

	schedule := make([]float64, cfg.TotalSteps())
	for i := range schedule {
		schedule[i] = 2.0
	}
	forecast := make([]float64, cfg.StepsPerDay)
	for i := range forecast {
		forecast[i] = 2.0
	}

	return New(cfg, controller.NewNaiveController(), baseLoad, solar, ev, battery, feeder, drEvent, schedule, forecast)
}

func TestEngineRunProducesOneResultPerStep(t *testing.T) {
	e := buildTestEngine(t)
	results := e.Run()
	assert.Len(t, results, 24)
	for i, r := range results {
		assert.Equal(t, i, r.Timestep)
	}
}

func TestEngineFeederKWIsPlainSumOfCommittedDispatch(t *testing.T) {
	e := buildTestEngine(t)
	r := e.Step(12)
	expected := r.BaseKWAfterDR + r.EVActualKW + r.SolarKW + r.BatteryActualKW
	assert.InDelta(t, expected, r.FeederKW, 1e-9)
}

func TestEngineEVActualNeverExceedsRequested(t *testing.T) {
	e := buildTestEngine(t)
	results := e.Run()
	for _, r := range results {
		assert.LessOrEqual(t, r.EVActualKW, r.EVRequestedKW+1e-9)
	}
}

func TestEngineBatterySOCStaysWithinBounds(t *testing.T) {
	e := buildTestEngine(t)
	results := e.Run()
	for _, r := range results {
		assert.GreaterOrEqual(t, r.BatterySOC, 0.0)
		assert.LessOrEqual(t, r.BatterySOC, 1.0)
	}
}
