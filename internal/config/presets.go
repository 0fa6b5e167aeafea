package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// presetOverrides mirrors ScenarioConfig's shape but in YAML, with every
// field optional: the named catalog stores only the deltas from Default(),
// the same "merge the fields that are set onto a base" idiom the battery-file
// loader used for battery parameters.
type presetOverrides struct {
	Simulation *simulationOverrides `yaml:"simulation"`
	Solar      *solarOverrides      `yaml:"solar"`
	Battery    *batteryOverrides    `yaml:"battery"`
	Feeder     *feederOverrides     `yaml:"feeder"`
	DREvent    *drEventOverrides    `yaml:"dr_event"`
}

type simulationOverrides struct {
	Days       *int    `yaml:"days"`
	Controller *string `yaml:"controller"`
}

type solarOverrides struct {
	Model  *string  `yaml:"model"`
	KWPeak *float64 `yaml:"kw_peak"`
	Alpha  *float64 `yaml:"alpha"`
}

type batteryOverrides struct {
	CapacityKWh *float64 `yaml:"capacity_kwh"`
	MaxChargeKW *float64 `yaml:"max_charge_kw"`
}

type feederOverrides struct {
	MaxImportKW *float64 `yaml:"max_import_kw"`
	MaxExportKW *float64 `yaml:"max_export_kw"`
}

type drEventOverrides struct {
	StartStep            *int     `yaml:"start_step"`
	EndStep              *int     `yaml:"end_step"`
	RequestedReductionKW *float64 `yaml:"requested_reduction_kw"`
}

// presetCatalogYAML holds the named presets in the order they appear in
// the catalog document; baseline is the identity preset (no overrides).
const presetCatalogYAML = `
baseline: {}

high_solar:
  solar:
    kw_peak: 9.0
    model: ar1
    alpha: 0.92
  battery:
    capacity_kwh: 16.0
    max_charge_kw: 8.0

dr_stress:
  simulation:
    days: 3
  dr_event:
    start_step: 17
    end_step: 22
    requested_reduction_kw: 3.0
  feeder:
    max_import_kw: 4.0
    max_export_kw: 3.0
`

// PresetNames lists the named presets available via FromPreset, in the
// fixed order baseline, high_solar, dr_stress.
var PresetNames = []string{"baseline", "high_solar", "dr_stress"}

// FromPreset builds a validated ScenarioConfig for one of PresetNames by
// overlaying the preset's YAML overrides onto Default().
func FromPreset(name string) (ScenarioConfig, error) {
	catalog := map[string]presetOverrides{}
	if err := yaml.Unmarshal([]byte(presetCatalogYAML), &catalog); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parsing preset catalog: %w", err)
	}

	overrides, ok := catalog[name]
	if !ok {
		return ScenarioConfig{}, fmt.Errorf("unknown preset %q (have: %v)", name, PresetNames)
	}

	cfg := Default()
	applyOverrides(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return ScenarioConfig{}, err
	}
	return cfg, nil
}

func applyOverrides(cfg *ScenarioConfig, o presetOverrides) {
	if o.Simulation != nil {
		if o.Simulation.Days != nil {
			cfg.Simulation.Days = *o.Simulation.Days
		}
		if o.Simulation.Controller != nil {
			cfg.Simulation.Controller = *o.Simulation.Controller
		}
	}
	if o.Solar != nil {
		if o.Solar.Model != nil {
			cfg.Solar.Model = *o.Solar.Model
		}
		if o.Solar.KWPeak != nil {
			cfg.Solar.KWPeak = *o.Solar.KWPeak
		}
		if o.Solar.Alpha != nil {
			cfg.Solar.Alpha = *o.Solar.Alpha
		}
	}
	if o.Battery != nil {
		if o.Battery.CapacityKWh != nil {
			cfg.Battery.CapacityKWh = *o.Battery.CapacityKWh
		}
		if o.Battery.MaxChargeKW != nil {
			cfg.Battery.MaxChargeKW = *o.Battery.MaxChargeKW
		}
	}
	if o.Feeder != nil {
		if o.Feeder.MaxImportKW != nil {
			cfg.Feeder.MaxImportKW = *o.Feeder.MaxImportKW
		}
		if o.Feeder.MaxExportKW != nil {
			cfg.Feeder.MaxExportKW = *o.Feeder.MaxExportKW
		}
	}
	if o.DREvent != nil {
		if o.DREvent.StartStep != nil {
			cfg.DREvent.StartStep = *o.DREvent.StartStep
		}
		if o.DREvent.EndStep != nil {
			cfg.DREvent.EndStep = *o.DREvent.EndStep
		}
		if o.DREvent.RequestedReductionKW != nil {
			cfg.DREvent.RequestedReductionKW = *o.DREvent.RequestedReductionKW
		}
	}
}
