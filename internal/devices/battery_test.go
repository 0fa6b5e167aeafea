package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBattery(t *testing.T, initialSOC float64) *Battery {
	t.Helper()
	b, err := NewBattery(BatteryParams{
		CapacityKWh:    10,
		MaxChargeKW:    5,
		MaxDischargeKW: 5,
		EtaCharge:      0.95,
		EtaDischarge:   0.95,
	}, initialSOC)
	require.NoError(t, err)
	return b
}

func TestNewBatteryRejectsInvalidParams(t *testing.T) {
	_, err := NewBattery(BatteryParams{CapacityKWh: 0, MaxChargeKW: 1, MaxDischargeKW: 1, EtaCharge: 1, EtaDischarge: 1}, 0.5)
	assert.Error(t, err)

	_, err = NewBattery(BatteryParams{CapacityKWh: 10, MaxChargeKW: 1, MaxDischargeKW: 1, EtaCharge: 1, EtaDischarge: 1}, 1.5)
	assert.Error(t, err)
}

func TestClipDispatchRespectsPowerRating(t *testing.T) {
	b := newTestBattery(t, 0.5)
	got := b.ClipDispatch(100, 1.0)
	assert.Equal(t, 5.0, got)

	got = b.ClipDispatch(-100, 1.0)
	assert.Equal(t, -5.0, got)
}

func TestClipDispatchRespectsSOCHeadroom(t *testing.T) {
	b := newTestBattery(t, 0.99)
	// Headroom is only 0.1 kWh; at eta_charge=0.95 and dt=1h, the max grid
	// charge rate is far below the 5 kW power rating.
	got := b.ClipDispatch(5, 1.0)
	assert.Less(t, got, 5.0)
	assert.Greater(t, got, 0.0)
}

func TestApplyDispatchChargeEfficiencyLossesSOC(t *testing.T) {
	b := newTestBattery(t, 0.5)
	actual := b.ApplyDispatch(1.0, 1.0)
	assert.Equal(t, 1.0, actual)
	// 1 kWh grid-side * 0.95 eta = 0.95 kWh stored, /10 kWh capacity.
	assert.InDelta(t, 0.5+0.095, b.State.SOC, 1e-9)
}

func TestApplyDispatchDischargeEfficiencyLossesSOC(t *testing.T) {
	b := newTestBattery(t, 0.5)
	actual := b.ApplyDispatch(-1.0, 1.0)
	assert.Equal(t, -1.0, actual)
	// 1 kWh grid-side export requires 1/0.95 kWh drawn from storage.
	assert.InDelta(t, 0.5-1.0/0.95/10, b.State.SOC, 1e-9)
}

func TestCompleteChargeDischargeCycleLosesEnergyToEfficiency(t *testing.T) {
	b := newTestBattery(t, 0.5)
	b.ApplyDispatch(2.0, 1.0)
	midSOC := b.State.SOC
	b.ApplyDispatch(-2.0, 1.0)
	// A full round trip at symmetric efficiency < 1 must not return to the
	// starting SOC: round-trip losses are strictly positive.
	assert.Less(t, b.State.SOC, 0.5)
	assert.Less(t, b.State.SOC, midSOC)
}

func TestZeroSetpointLeavesSOCUnchanged(t *testing.T) {
	b := newTestBattery(t, 0.5)
	actual := b.ApplyDispatch(0, 1.0)
	assert.Equal(t, 0.0, actual)
	assert.Equal(t, 0.5, b.State.SOC)
}
