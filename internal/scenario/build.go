// Package scenario wires a validated config.ScenarioConfig into a runnable
// engine.Engine: constructing every device, selecting the controller, and
// building the day-ahead target schedule the controllers track against.
package scenario

import (
	"fmt"

	"vppsim/internal/config"
	"vppsim/internal/controller"
	"vppsim/internal/devices"
	"vppsim/internal/engine"
	"vppsim/internal/simtypes"
)

// Build constructs a ready-to-run engine.Engine from cfg.
func Build(cfg config.ScenarioConfig) (*engine.Engine, error) {
	simCfg, err := simtypes.NewSimConfig(
		cfg.Simulation.StepsPerDay,
		cfg.Simulation.Days,
		cfg.Simulation.Seed,
		cfg.Simulation.ImbalancePricePerKWh,
	)
	if err != nil {
		return nil, err
	}
	totalSteps := simCfg.TotalSteps()

	baseLoad := devices.NewBaseLoad(
		cfg.Baseload.BaseKW, cfg.Baseload.AmpKW, cfg.Baseload.PhaseRad, cfg.Baseload.NoiseStdDev,
		cfg.Simulation.StepsPerDay, cfg.Simulation.Seed,
	)

	var solar engine.SolarSource
	switch cfg.Solar.Model {
	case "simple":
		solar = devices.NewSolarPv(
			cfg.Solar.KWPeak, cfg.Solar.SunriseIdx, cfg.Solar.SunsetIdx, cfg.Solar.NoiseStdDev,
			cfg.Simulation.StepsPerDay, cfg.Simulation.Seed,
		)
	case "ar1":
		solar = devices.NewSolarPvAr1(
			cfg.Solar.KWPeak, cfg.Solar.SunriseIdx, cfg.Solar.SunsetIdx, cfg.Solar.Alpha, cfg.Solar.CloudNoiseStd,
			cfg.Simulation.StepsPerDay, cfg.Simulation.Seed,
		)
	default:
		return nil, fmt.Errorf("scenario: unknown solar model %q", cfg.Solar.Model)
	}

	ev := devices.NewEvCharger(
		cfg.EV.MaxChargeKW, cfg.EV.DemandKWhMin, cfg.EV.DemandKWhMax,
		cfg.EV.DwellStepsMin, cfg.EV.DwellStepsMax, cfg.Simulation.StepsPerDay, simCfg.DtHours, cfg.Simulation.Seed,
	)

	battery, err := devices.NewBattery(devices.BatteryParams{
		CapacityKWh:    cfg.Battery.CapacityKWh,
		MaxChargeKW:    cfg.Battery.MaxChargeKW,
		MaxDischargeKW: cfg.Battery.MaxDischargeKW,
		EtaCharge:      cfg.Battery.EtaCharge,
		EtaDischarge:   cfg.Battery.EtaDischarge,
	}, cfg.Battery.InitialSOC)
	if err != nil {
		return nil, err
	}

	feeder := devices.NewFeeder("vpp", cfg.Feeder.MaxImportKW, cfg.Feeder.MaxExportKW)

	drEvent := devices.DemandResponseEvent{
		StartStep:            cfg.DREvent.StartStep,
		EndStep:              cfg.DREvent.EndStep,
		RequestedReductionKW: cfg.DREvent.RequestedReductionKW,
	}

	schedule := flatTargetSchedule(baseLoad, totalSteps)

	dayForecast := make([]float64, cfg.Simulation.StepsPerDay)
	for t := 0; t < cfg.Simulation.StepsPerDay; t++ {
		dayForecast[t] = baseLoad.BaseKW
	}

	var ctrl controller.Controller
	switch cfg.Simulation.Controller {
	case "naive":
		ctrl = controller.NewNaiveController()
	case "greedy":
		dayTarget := make([]float64, cfg.Simulation.StepsPerDay)
		for t := 0; t < cfg.Simulation.StepsPerDay; t++ {
			dayTarget[t] = schedule[t]
		}
		ctrl = controller.NewGreedyController(
			dayForecast, dayTarget,
			cfg.Solar.KWPeak, cfg.Solar.SunriseIdx, cfg.Solar.SunsetIdx,
			cfg.Battery.MaxChargeKW, cfg.Battery.MaxDischargeKW,
			cfg.Battery.CapacityKWh, cfg.Battery.EtaCharge, cfg.Battery.EtaDischarge,
			simCfg.DtHours,
		)
	default:
		return nil, fmt.Errorf("scenario: unknown controller %q", cfg.Simulation.Controller)
	}

	return engine.New(simCfg, ctrl, baseLoad, solar, ev, battery, feeder, drEvent, schedule, dayForecast), nil
}

// flatTargetSchedule builds a day-ahead target net-feeder-kW schedule as the
// flat average of the baseload's noise-free expectation, repeated across
// the whole horizon: a day-ahead desk committing to a single flat number
// rather than chasing the baseload's intra-day shape.
func flatTargetSchedule(baseLoad *devices.BaseLoad, totalSteps int) []float64 {
	schedule := make([]float64, totalSteps)
	for t := 0; t < totalSteps; t++ {
		schedule[t] = baseLoad.BaseKW
	}
	return schedule
}
