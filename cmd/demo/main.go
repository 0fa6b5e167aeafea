// Command demo runs the baseline scenario and prints a handful of sample
// steps alongside the resulting KPI report, to show how the pieces fit
// together without needing a config file or a server.
package main

import (
	"flag"
	"fmt"

	"vppsim/internal/config"
	"vppsim/internal/kpi"
	"vppsim/internal/scenario"
)

func main() {
	preset := flag.String("preset", "baseline", "Named preset (baseline, high_solar, dr_stress)")
	n := flag.Int("n", 12, "Number of sample steps to print")
	flag.Parse()

	cfg, err := config.FromPreset(*preset)
	if err != nil {
		panic(err)
	}

	eng, err := scenario.Build(cfg)
	if err != nil {
		panic(err)
	}

	results := eng.Run()
	report := kpi.FromResults(results, eng.Config.DtHours, cfg.Battery.CapacityKWh)

	fmt.Printf("Preset=%s  controller=%s  steps=%d\n\n", *preset, cfg.Simulation.Controller, len(results))

	for i := 0; i < min(*n, len(results)); i++ {
		fmt.Println(results[i].String())
	}

	fmt.Println()
	fmt.Println(report.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
