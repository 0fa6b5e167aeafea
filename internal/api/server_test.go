package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vppsim/internal/config"
	"vppsim/internal/kpi"
	"vppsim/internal/simtypes"
)

func testRun() *Run {
	results := make([]simtypes.StepResult, 5)
	for i := range results {
		results[i] = simtypes.StepResult{Timestep: i, FeederKW: float64(i), WithinFeederLimits: true}
	}
	return &Run{
		Config:  config.Default(),
		Results: results,
		KPI:     kpi.FromResults(results, 1.0, 10.0),
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStateReturnsLatestStep(t *testing.T) {
	router := NewRouter(testRun())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LatestStep)
	assert.Equal(t, 4, resp.LatestStep.Timestep)
}

func TestTelemetryWindow(t *testing.T) {
	router := NewRouter(testRun())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/telemetry?from=1&to=3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var records []TelemetryRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Timestep)
	assert.Equal(t, 3, records[2].Timestep)
}

func TestTelemetryFromGreaterThanToIs400(t *testing.T) {
	router := NewRouter(testRun())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/telemetry?from=3&to=1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownPathIs404(t *testing.T) {
	router := NewRouter(testRun())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNonGetOnStateIs405(t *testing.T) {
	router := NewRouter(testRun())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/state", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
