package controller

// applyDRShedding implements the flexible-load-first shedding order: a
// demand-response reduction request is satisfied first out of the EV
// session's demand (the flexible load, since a deferred charge is
// recoverable before the session deadline), and only the unmet remainder is
// then shed from the inflexible baseload. Neither load is ever driven
// negative.
func applyDRShedding(drRequestedKW, baseKWRaw, evRequestedKW float64) (baseAfterDR, evAfterDR, drAchievedKW float64) {
	if drRequestedKW <= 0 {
		return baseKWRaw, evRequestedKW, 0
	}

	evReduction := drRequestedKW
	if evReduction > evRequestedKW {
		evReduction = evRequestedKW
	}
	evAfterDR = evRequestedKW - evReduction

	remaining := drRequestedKW - evReduction
	baseReduction := remaining
	if baseReduction > baseKWRaw {
		baseReduction = baseKWRaw
	}
	baseAfterDR = baseKWRaw - baseReduction

	drAchievedKW = evReduction + baseReduction
	return baseAfterDR, evAfterDR, drAchievedKW
}

// feasibilityWindow returns the combined [low, high] range a battery
// setpoint may occupy while respecting both the feeder's contracted
// import/export limits and the battery's own rate limits, given the net
// load that will flow regardless of what the battery does this step. ok is
// false when the two constraints don't overlap — the net load alone already
// pushes the feeder past its limit by more than the battery can absorb.
func feasibilityWindow(netWithoutBatteryKW, maxImportKW, maxExportKW, maxDischargeKW, maxChargeKW float64) (low, high float64, ok bool) {
	low = -maxExportKW - netWithoutBatteryKW
	if -maxDischargeKW > low {
		low = -maxDischargeKW
	}
	high = maxImportKW - netWithoutBatteryKW
	if maxChargeKW < high {
		high = maxChargeKW
	}
	return low, high, low <= high
}

// evCap keeps the feeder import feasible even if the battery discharges at
// its maximum rate: the fixed loads (baseload after DR, solar) plus the
// flexible EV load minus the battery's maximum discharge contribution must
// not exceed the import limit. Any excess is shed from the EV.
func evCap(baseAfterDRKW, solarKW, evAfterDRKW, maxDischargeKW, maxImportKW float64) float64 {
	netFixedKW := baseAfterDRKW + solarKW
	overload := netFixedKW + evAfterDRKW - maxDischargeKW - maxImportKW
	if overload < 0 {
		overload = 0
	}
	cap := evAfterDRKW - overload
	if cap < 0 {
		cap = 0
	}
	return cap
}

func clampFloat(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
