package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// TelemetryStream handles GET /ws/telemetry: upgrades to a WebSocket and streams
// every step already recorded on h.run, one JSON message at a time, then
// closes. Intended for a run captured ahead of time; a caller wanting a
// live feed of an in-progress run should poll /telemetry instead.
func (h *Handler) TelemetryStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("telemetry stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for _, r := range h.run.Results {
		rec := NewTelemetryRecord(r)
		if err := conn.WriteJSON(rec); err != nil {
			log.Printf("telemetry stream: write failed: %v", err)
			return
		}
		// Pace the stream so a slow consumer sees something closer to a
		// live feed rather than the whole run arriving in one burst.
		time.Sleep(5 * time.Millisecond)
	}
}
