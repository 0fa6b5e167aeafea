// Package config loads and validates a TOML scenario configuration, the
// typed equivalent of the teacher's YAML Config, restructured into the
// sub-sections a VPP scenario needs.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ScenarioConfig is the on-disk configuration shape (TOML).
type ScenarioConfig struct {
	Simulation SimulationConfig `toml:"simulation"`
	Baseload   BaseloadConfig   `toml:"baseload"`
	Solar      SolarConfig      `toml:"solar"`
	Battery    BatteryConfig    `toml:"battery"`
	EV         EvConfig         `toml:"ev"`
	Feeder     FeederConfig     `toml:"feeder"`
	DREvent    DrEventConfig    `toml:"dr_event"`
}

type SimulationConfig struct {
	StepsPerDay           int     `toml:"steps_per_day"`
	Days                  int     `toml:"days"`
	Seed                  uint64  `toml:"seed"`
	Controller            string  `toml:"controller"`
	ImbalancePricePerKWh  float64 `toml:"imbalance_price_per_kwh"`
}

type BaseloadConfig struct {
	BaseKW      float64 `toml:"base_kw"`
	AmpKW       float64 `toml:"amp_kw"`
	PhaseRad    float64 `toml:"phase_rad"`
	NoiseStdDev float64 `toml:"noise_std"`
}

type SolarConfig struct {
	Model         string  `toml:"model"`
	KWPeak        float64 `toml:"kw_peak"`
	SunriseIdx    int     `toml:"sunrise_idx"`
	SunsetIdx     int     `toml:"sunset_idx"`
	NoiseStdDev   float64 `toml:"noise_std"`
	Alpha         float64 `toml:"alpha"`
	CloudNoiseStd float64 `toml:"cloud_noise_std"`
}

type BatteryConfig struct {
	CapacityKWh    float64 `toml:"capacity_kwh"`
	InitialSOC     float64 `toml:"initial_soc"`
	MaxChargeKW    float64 `toml:"max_charge_kw"`
	MaxDischargeKW float64 `toml:"max_discharge_kw"`
	EtaCharge      float64 `toml:"eta_charge"`
	EtaDischarge   float64 `toml:"eta_discharge"`
}

type EvConfig struct {
	MaxChargeKW   float64 `toml:"max_charge_kw"`
	DemandKWhMin  float64 `toml:"demand_kwh_min"`
	DemandKWhMax  float64 `toml:"demand_kwh_max"`
	DwellStepsMin int     `toml:"dwell_steps_min"`
	DwellStepsMax int     `toml:"dwell_steps_max"`
}

type FeederConfig struct {
	MaxImportKW float64 `toml:"max_import_kw"`
	MaxExportKW float64 `toml:"max_export_kw"`
}

type DrEventConfig struct {
	StartStep            int     `toml:"start_step"`
	EndStep              int     `toml:"end_step"`
	RequestedReductionKW float64 `toml:"requested_reduction_kw"`
}

// Default returns the built-in baseline scenario: the values every preset
// starts from before its own overrides are applied.
func Default() ScenarioConfig {
	return ScenarioConfig{
		Simulation: SimulationConfig{
			StepsPerDay:          24,
			Days:                 1,
			Seed:                 42,
			Controller:           "naive",
			ImbalancePricePerKWh: 0.10,
		},
		Baseload: BaseloadConfig{
			BaseKW:      0.8,
			AmpKW:       0.7,
			PhaseRad:    1.2,
			NoiseStdDev: 0.05,
		},
		Solar: SolarConfig{
			Model:         "simple",
			KWPeak:        5.0,
			SunriseIdx:    6,
			SunsetIdx:     18,
			NoiseStdDev:   0.05,
			Alpha:         0.9,
			CloudNoiseStd: 0.2,
		},
		Battery: BatteryConfig{
			CapacityKWh:    10.0,
			InitialSOC:     0.5,
			MaxChargeKW:    5.0,
			MaxDischargeKW: 5.0,
			EtaCharge:      0.95,
			EtaDischarge:   0.95,
		},
		EV: EvConfig{
			MaxChargeKW:   7.2,
			DemandKWhMin:  4.0,
			DemandKWhMax:  14.0,
			DwellStepsMin: 3,
			DwellStepsMax: 10,
		},
		Feeder: FeederConfig{
			MaxImportKW: 5.0,
			MaxExportKW: 4.0,
		},
		DREvent: DrEventConfig{
			StartStep:            17,
			EndStep:              21,
			RequestedReductionKW: 1.5,
		},
	}
}

// ValidationError collects every invariant violation found in a
// ScenarioConfig, instead of failing fast on the first one, so a user
// fixing a config sees every problem in one pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scenario config: %s", strings.Join(e.Violations, "; "))
}

// Validate checks every section of c and returns a *ValidationError
// collecting all violations found, or nil if c is well-formed.
func (c ScenarioConfig) Validate() error {
	var v []string

	if c.Simulation.StepsPerDay <= 0 {
		v = append(v, "simulation.steps_per_day must be > 0")
	}
	if c.Simulation.Days <= 0 {
		v = append(v, "simulation.days must be > 0")
	}
	if c.Simulation.Controller != "naive" && c.Simulation.Controller != "greedy" {
		v = append(v, fmt.Sprintf("simulation.controller must be 'naive' or 'greedy', got %q", c.Simulation.Controller))
	}

	if c.Solar.Model != "simple" && c.Solar.Model != "ar1" {
		v = append(v, fmt.Sprintf("solar.model must be 'simple' or 'ar1', got %q", c.Solar.Model))
	}
	if c.Solar.SunriseIdx >= c.Solar.SunsetIdx {
		v = append(v, "solar.sunrise_idx must be before solar.sunset_idx")
	}
	if c.Simulation.StepsPerDay > 0 && c.Solar.SunsetIdx > c.Simulation.StepsPerDay {
		v = append(v, "solar.sunset_idx must not exceed simulation.steps_per_day")
	}

	if c.Battery.CapacityKWh <= 0 {
		v = append(v, "battery.capacity_kwh must be > 0")
	}
	if c.Battery.InitialSOC < 0 || c.Battery.InitialSOC > 1 {
		v = append(v, "battery.initial_soc must be within [0, 1]")
	}
	if c.Battery.EtaCharge <= 0 || c.Battery.EtaCharge > 1 {
		v = append(v, "battery.eta_charge must be within (0, 1]")
	}
	if c.Battery.EtaDischarge <= 0 || c.Battery.EtaDischarge > 1 {
		v = append(v, "battery.eta_discharge must be within (0, 1]")
	}
	if c.Battery.MaxChargeKW < 0 {
		v = append(v, "battery.max_charge_kw must be >= 0")
	}
	if c.Battery.MaxDischargeKW < 0 {
		v = append(v, "battery.max_discharge_kw must be >= 0")
	}

	if c.EV.MaxChargeKW < 0 {
		v = append(v, "ev.max_charge_kw must be >= 0")
	}

	if c.EV.DwellStepsMin > c.EV.DwellStepsMax {
		v = append(v, "ev.dwell_steps_min must not exceed ev.dwell_steps_max")
	}
	if c.EV.DemandKWhMin > c.EV.DemandKWhMax {
		v = append(v, "ev.demand_kwh_min must not exceed ev.demand_kwh_max")
	}

	if c.DREvent.StartStep >= c.DREvent.EndStep {
		v = append(v, "dr_event.start_step must be before dr_event.end_step")
	}

	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

// FromTOMLFile reads and validates a scenario config from a TOML file.
func FromTOMLFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	return FromTOMLString(string(raw))
}

// FromTOMLString parses and validates a scenario config from a TOML
// document.
func FromTOMLString(doc string) (ScenarioConfig, error) {
	c := Default()
	if err := toml.Unmarshal([]byte(doc), &c); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parsing scenario config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return ScenarioConfig{}, err
	}
	return c, nil
}
