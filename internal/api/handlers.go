package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vppsim/internal/config"
	"vppsim/internal/kpi"
	"vppsim/internal/simtypes"
)

// Run holds everything a request handler needs about one completed (or
// still-running) scenario: enough to answer /state and /telemetry without
// re-simulating.
type Run struct {
	Config  config.ScenarioConfig
	Results []simtypes.StepResult
	KPI     kpi.Report
}

// Handler serves the HTTP views over a single in-memory Run.
type Handler struct {
	run *Run
}

// NewHandler constructs a Handler over run.
func NewHandler(run *Run) *Handler {
	return &Handler{run: run}
}

// State handles GET /state.
func (h *Handler) State(c *gin.Context) {
	var latest *TelemetryRecord
	if n := len(h.run.Results); n > 0 {
		rec := NewTelemetryRecord(h.run.Results[n-1])
		latest = &rec
	}
	c.JSON(http.StatusOK, StateResponse{
		Config:     h.run.Config,
		KPI:        h.run.KPI,
		LatestStep: latest,
	})
}

// Telemetry handles GET /telemetry?from=N&to=M. from/to are both optional;
// from defaults to 0 and to defaults to the last available timestep. A
// from greater than to is a 400; everything else is clamped into range.
func (h *Handler) Telemetry(c *gin.Context) {
	n := len(h.run.Results)

	from := 0
	to := n - 1
	if n == 0 {
		to = -1
	}

	if raw := c.Query("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid from: %v", err)})
			return
		}
		from = v
	}
	if raw := c.Query("to"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid to: %v", err)})
			return
		}
		to = v
	}

	if from > to {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from must not exceed to"})
		return
	}
	if from < 0 {
		from = 0
	}
	if to > n-1 {
		to = n - 1
	}

	records := make([]TelemetryRecord, 0)
	for t := from; t <= to; t++ {
		records = append(records, NewTelemetryRecord(h.run.Results[t]))
	}
	c.JSON(http.StatusOK, records)
}

// NotFound handles any route gin couldn't match.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
}

// MethodNotAllowed handles a matched path hit with the wrong HTTP method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
}
