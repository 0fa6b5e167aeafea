package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDRSheddingShedsEVBeforeBaseload(t *testing.T) {
	baseAfter, evAfter, achieved := applyDRShedding(2.0, 3.0, 1.5)
	// 2.0 kW requested: fully covered by the EV's 1.5 kW first, then 0.5 kW
	// from baseload.
	assert.Equal(t, 0.0, evAfter)
	assert.Equal(t, 2.5, baseAfter)
	assert.Equal(t, 2.0, achieved)
}

func TestApplyDRSheddingNoRequestLeavesLoadsUntouched(t *testing.T) {
	baseAfter, evAfter, achieved := applyDRShedding(0, 3.0, 1.5)
	assert.Equal(t, 3.0, baseAfter)
	assert.Equal(t, 1.5, evAfter)
	assert.Equal(t, 0.0, achieved)
}

func TestApplyDRSheddingCannotExceedAvailableLoad(t *testing.T) {
	baseAfter, evAfter, achieved := applyDRShedding(100, 3.0, 1.5)
	assert.Equal(t, 0.0, evAfter)
	assert.Equal(t, 0.0, baseAfter)
	assert.Equal(t, 4.5, achieved)
}

func TestFeasibilityWindow(t *testing.T) {
	low, high, ok := feasibilityWindow(2.0, 5.0, 4.0, 10.0, 10.0)
	assert.Equal(t, -6.0, low)
	assert.Equal(t, 3.0, high)
	assert.True(t, ok)
}

func TestFeasibilityWindowNarrowedByBatteryLimits(t *testing.T) {
	// The feeder alone would allow [-6, 3], but a 1 kW discharge / 1 kW
	// charge battery narrows the window further.
	low, high, ok := feasibilityWindow(2.0, 5.0, 4.0, 1.0, 1.0)
	assert.Equal(t, -1.0, low)
	assert.Equal(t, 1.0, high)
	assert.True(t, ok)
}

func TestFeasibilityWindowInfeasibleWhenDisjoint(t *testing.T) {
	// netWithoutBattery=20 already exceeds maxImport=5 by more than the
	// battery's 3 kW discharge rating can offset: low(-3) > high(-15).
	low, high, ok := feasibilityWindow(20.0, 5.0, 100.0, 3.0, 10.0)
	assert.Equal(t, -3.0, low)
	assert.Equal(t, -15.0, high)
	assert.False(t, ok)
}

func TestEVCapKeepsFullRequestWhenNoOverload(t *testing.T) {
	// netFixed=8, ev_after=4, maxDischarge=3, maxImport=10: 8+4-3-10 = -1,
	// so overload = max(0, -1) = 0 and the full EV request survives.
	cap := evCap(8.0, 0.0, 4.0, 3.0, 10.0)
	assert.Equal(t, 4.0, cap)
}

func TestEVCapShedsWhenOverloaded(t *testing.T) {
	// netFixed=8, ev_after=4, maxDischarge=3, maxImport=8: overload =
	// max(0, 8+4-3-8) = 1, so 1 kW is shed from the EV.
	cap := evCap(8.0, 0.0, 4.0, 3.0, 8.0)
	assert.Equal(t, 3.0, cap)
}
