// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/middleware"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/realtime"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The live count is public; CORS is open for every other route as well.
		return true
	},
}

type LiveHandler struct {
	registry *realtime.Registry
}

func NewLiveHandler(registry *realtime.Registry) *LiveHandler {
	return &LiveHandler{registry: registry}
}

// OnlineCount handles GET /api/online-count
func (h *LiveHandler) OnlineCount(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.OnlineCountResponse{
		Count: h.registry.Count(),
	})
}

// Subscribe handles GET /ws. The connection is registered for its whole
// lifetime; inbound messages are ignored.
func (h *LiveHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	conn := realtime.NewConn(ws, middleware.GetClientIP(r))
	conn.Start()
	h.registry.Register(conn)
	slog.Info("subscriber connected", "conn_id", conn.ID(), "remote", conn.Remote())

	err = conn.ReadUntilClosed()
	conn.Close()
	h.registry.Deregister(conn)
	h.registry.BroadcastCount()

	if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		slog.Warn("subscriber dropped", "conn_id", conn.ID(), "error", err)
		return
	}
	slog.Info("subscriber disconnected", "conn_id", conn.ID())
}
