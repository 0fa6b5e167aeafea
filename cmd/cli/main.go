// Command cli runs and inspects VPP simulation scenarios from the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"vppsim/internal/config"
	"vppsim/internal/csvexport"
	"vppsim/internal/kpi"
	"vppsim/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --config scenario.toml --out results/run.csv")
	fmt.Println("  cli run --preset baseline --out results/run.csv")
	fmt.Println("  cli presets")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run prints a KPI summary and optionally writes the schema v1 CSV")
	fmt.Println("  - exactly one of --config or --preset is required for run")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to TOML scenario config")
	preset := fs.String("preset", "", "Named preset (baseline, high_solar, dr_stress)")
	outPath := fs.String("out", "", "Optional path to write the schema v1 CSV")
	_ = fs.Parse(args)

	if (*cfgPath == "") == (*preset == "") {
		fmt.Println("exactly one of --config or --preset is required")
		os.Exit(2)
	}

	var cfg config.ScenarioConfig
	var err error
	if *preset != "" {
		cfg, err = config.FromPreset(*preset)
	} else {
		cfg, err = config.FromTOMLFile(*cfgPath)
	}
	if err != nil {
		panic(err)
	}

	eng, err := scenario.Build(cfg)
	if err != nil {
		panic(err)
	}

	results := eng.Run()
	report := kpi.FromResults(results, eng.Config.DtHours, cfg.Battery.CapacityKWh)

	fmt.Printf("Ran %d steps (controller=%s)\n\n", len(results), cfg.Simulation.Controller)
	fmt.Println(report.String())

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := csvexport.Write(*outPath, results); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(results), *outPath)
	}
}

func cmdPresets(args []string) {
	for _, name := range config.PresetNames {
		cfg, err := config.FromPreset(name)
		if err != nil {
			fmt.Printf("%-12s error: %v\n", name, err)
			continue
		}
		fmt.Printf(
			"%-12s controller=%-7s steps_per_day=%-3d days=%-2d solar=%s kw_peak=%.1f feeder=[%.1f,%.1f]\n",
			name, cfg.Simulation.Controller, cfg.Simulation.StepsPerDay, cfg.Simulation.Days,
			cfg.Solar.Model, cfg.Solar.KWPeak, cfg.Feeder.MaxExportKW, cfg.Feeder.MaxImportKW,
		)
	}
}
