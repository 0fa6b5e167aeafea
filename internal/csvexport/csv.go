// Package csvexport writes a completed simulation run to the schema v1 CSV
// layout: a fixed header and column order, with each field formatted to a
// fixed precision so runs are byte-for-byte reproducible.
package csvexport

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"vppsim/internal/simtypes"
)

// Header lists the schema v1 columns in their required order. Several
// columns are aliases of the StepResult fields they're written from:
// baseload_kw from BaseKWAfterDR, ev_dispatched_kw from EVActualKW,
// battery_kw from BatteryActualKW, and limit_ok from WithinFeederLimits.
var Header = []string{
	"timestep",
	"time_hr",
	"target_kw",
	"feeder_kw",
	"tracking_error_kw",
	"baseload_kw",
	"solar_kw",
	"ev_requested_kw",
	"ev_dispatched_kw",
	"battery_kw",
	"battery_soc",
	"dr_requested_kw",
	"dr_achieved_kw",
	"limit_ok",
}

// Write renders results to path as CSV following Header's column order.
func Write(path string, results []simtypes.StepResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTo(f, results)
}

// WriteTo renders results as CSV to an arbitrary writer, so callers (tests,
// HTTP handlers streaming a download) don't need a filesystem path.
func WriteTo(w io.Writer, results []simtypes.StepResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Timestep),
			fmtFixed(r.TimeHr, 2),
			fmtFixed(r.TargetKW, 4),
			fmtFixed(r.FeederKW, 4),
			fmtFixed(r.TrackingErrorKW, 4),
			fmtFixed(r.BaseKWAfterDR, 4),
			fmtFixed(r.SolarKW, 4),
			fmtFixed(r.EVRequestedKW, 4),
			fmtFixed(r.EVActualKW, 4),
			fmtFixed(r.BatteryActualKW, 4),
			fmtFixed(r.BatterySOC, 4),
			fmtFixed(r.DRRequestedKW, 4),
			fmtFixed(r.DRAchievedKW, 4),
			strconv.FormatBool(r.WithinFeederLimits),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

func fmtFixed(x float64, precision int) string {
	return strconv.FormatFloat(x, 'f', precision, 64)
}
