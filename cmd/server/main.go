// Command server runs a VPP scenario once and serves its state and
// telemetry over HTTP.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"vppsim/internal/api"
	"vppsim/internal/config"
	"vppsim/internal/kpi"
	"vppsim/internal/scenario"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	preset := os.Getenv("SCENARIO_PRESET")
	cfgPath := os.Getenv("SCENARIO_CONFIG")

	var cfg config.ScenarioConfig
	var err error
	switch {
	case cfgPath != "":
		cfg, err = config.FromTOMLFile(cfgPath)
	case preset != "":
		cfg, err = config.FromPreset(preset)
	default:
		cfg, err = config.FromPreset("baseline")
	}
	if err != nil {
		log.Fatalf("loading scenario config: %v", err)
	}

	eng, err := scenario.Build(cfg)
	if err != nil {
		log.Fatalf("building scenario: %v", err)
	}

	results := eng.Run()
	report := kpi.FromResults(results, eng.Config.DtHours, cfg.Battery.CapacityKWh)
	log.Printf("scenario complete: %d steps, controller=%s", len(results), cfg.Simulation.Controller)

	run := &api.Run{Config: cfg, Results: results, KPI: report}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(run)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("starting VPP simulator API on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
