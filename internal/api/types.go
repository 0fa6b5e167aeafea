// Package api exposes a completed (or in-progress) simulation run over
// HTTP: a point-in-time state snapshot, a windowed telemetry query, and a
// live telemetry stream over WebSocket.
package api

import (
	"vppsim/internal/config"
	"vppsim/internal/kpi"
	"vppsim/internal/simtypes"
)

// StateResponse is the payload for GET /state: the scenario's static
// configuration, its rolled-up KPIs, and the most recent step recorded so
// far.
type StateResponse struct {
	Config     config.ScenarioConfig `json:"config"`
	KPI        kpi.Report            `json:"kpi"`
	LatestStep *TelemetryRecord      `json:"latest_step,omitempty"`
}

// TelemetryRecord is one step's data with the same field names and aliases
// as the CSV schema v1 export, so API consumers and CSV consumers see a
// consistent vocabulary. It also carries imbalance_cost, which the CSV
// export does not include.
type TelemetryRecord struct {
	Timestep         int     `json:"timestep"`
	TimeHr           float64 `json:"time_hr"`
	TargetKW         float64 `json:"target_kw"`
	FeederKW         float64 `json:"feeder_kw"`
	TrackingErrorKW  float64 `json:"tracking_error_kw"`
	BaseloadKW       float64 `json:"baseload_kw"`
	SolarKW          float64 `json:"solar_kw"`
	EVRequestedKW    float64 `json:"ev_requested_kw"`
	EVDispatchedKW   float64 `json:"ev_dispatched_kw"`
	BatteryKW        float64 `json:"battery_kw"`
	BatterySOC       float64 `json:"battery_soc"`
	DRRequestedKW    float64 `json:"dr_requested_kw"`
	DRAchievedKW     float64 `json:"dr_achieved_kw"`
	LimitOK          bool    `json:"limit_ok"`
	ImbalanceCostUSD float64 `json:"imbalance_cost"`
}

// NewTelemetryRecord maps a simtypes.StepResult onto the API/CSV field
// vocabulary.
func NewTelemetryRecord(r simtypes.StepResult) TelemetryRecord {
	return TelemetryRecord{
		Timestep:         r.Timestep,
		TimeHr:           r.TimeHr,
		TargetKW:         r.TargetKW,
		FeederKW:         r.FeederKW,
		TrackingErrorKW:  r.TrackingErrorKW,
		BaseloadKW:       r.BaseKWAfterDR,
		SolarKW:          r.SolarKW,
		EVRequestedKW:    r.EVRequestedKW,
		EVDispatchedKW:   r.EVActualKW,
		BatteryKW:        r.BatteryActualKW,
		BatterySOC:       r.BatterySOC,
		DRRequestedKW:    r.DRRequestedKW,
		DRAchievedKW:     r.DRAchievedKW,
		LimitOK:          r.WithinFeederLimits,
		ImbalanceCostUSD: r.ImbalanceCostUSD,
	}
}

// ErrorResponse is the uniform JSON error body for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
