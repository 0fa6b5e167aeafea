package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine for run: CORS, panic recovery, and the
// state/telemetry/telemetry-stream routes. Any unmatched path is a JSON
// 404; a matched path hit with the wrong method is a JSON 405.
func NewRouter(run *Run) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger())
	router.Use(CORS())
	router.Use(ErrorHandler())

	h := NewHandler(run)

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/state", h.State)
	router.GET("/telemetry", h.Telemetry)
	router.GET("/ws/telemetry", h.TelemetryStream)

	for _, path := range []string{"/state", "/telemetry", "/ws/telemetry", "/health"} {
		router.Handle(http.MethodPost, path, MethodNotAllowed)
		router.Handle(http.MethodPut, path, MethodNotAllowed)
		router.Handle(http.MethodDelete, path, MethodNotAllowed)
	}

	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)

	return router
}
