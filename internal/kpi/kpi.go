// Package kpi computes post-hoc scenario summary statistics from a
// completed run's step results.
package kpi

import (
	"fmt"
	"math"

	"vppsim/internal/simtypes"
)

// Report summarizes an entire simulation run.
type Report struct {
	RMSETrackingKW          float64
	MAETrackingKW           float64
	CurtailmentPct          float64
	PeakImportKW            float64
	PeakExportKW            float64
	BatteryThroughputKWh    float64
	BatteryEquivalentCycles float64
	FeederViolationCount    int
	TotalImbalanceCostUSD   float64
}

// FromResults computes a Report from a completed run's per-step results.
// dtHours is the simulation's fixed timestep duration and batteryCapacityKWh
// is the battery's rated capacity, used to convert throughput into
// equivalent full cycles. An empty slice yields a zero-valued Report rather
// than dividing by zero.
func FromResults(results []simtypes.StepResult, dtHours, batteryCapacityKWh float64) Report {
	if len(results) == 0 {
		return Report{}
	}

	var (
		sqErrSum        float64
		absErrSum       float64
		peakImport      float64
		peakExport      float64
		throughputKWh   float64
		violations      int
		totalCost       float64
		drRequestedKW   float64
		drAchievedKW    float64
	)

	for _, r := range results {
		sqErrSum += r.TrackingErrorKW * r.TrackingErrorKW
		absErrSum += math.Abs(r.TrackingErrorKW)

		if r.FeederKW > peakImport {
			peakImport = r.FeederKW
		}
		if -r.FeederKW > peakExport {
			peakExport = -r.FeederKW
		}

		throughputKWh += math.Abs(r.BatteryActualKW) * dtHours

		if !r.WithinFeederLimits {
			violations++
		}

		totalCost += r.ImbalanceCostUSD

		drRequestedKW += r.DRRequestedKW
		drAchievedKW += r.DRAchievedKW
	}

	n := float64(len(results))
	report := Report{
		RMSETrackingKW:        math.Sqrt(sqErrSum / n),
		MAETrackingKW:         absErrSum / n,
		PeakImportKW:          peakImport,
		PeakExportKW:          peakExport,
		BatteryThroughputKWh:  throughputKWh,
		FeederViolationCount:  violations,
		TotalImbalanceCostUSD: totalCost,
	}
	if batteryCapacityKWh > 0 {
		report.BatteryEquivalentCycles = throughputKWh / (2 * batteryCapacityKWh)
	}
	if drRequestedKW > 0 {
		report.CurtailmentPct = 100 * drAchievedKW / drRequestedKW
	}
	return report
}

// String renders a compact multi-line human-readable summary.
func (k Report) String() string {
	return fmt.Sprintf(
		"RMSE=%.3f kW  MAE=%.3f kW  curtailment=%.2f%%\n"+
			"peak_import=%.2f kW  peak_export=%.2f kW\n"+
			"battery_throughput=%.2f kWh  equivalent_cycles=%.3f\n"+
			"feeder_violations=%d  total_imbalance_cost=$%.2f",
		k.RMSETrackingKW, k.MAETrackingKW, k.CurtailmentPct,
		k.PeakImportKW, k.PeakExportKW,
		k.BatteryThroughputKWh, k.BatteryEquivalentCycles,
		k.FeederViolationCount, k.TotalImbalanceCostUSD,
	)
}
