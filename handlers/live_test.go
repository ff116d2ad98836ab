// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/models"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/realtime"
	"github.com/mahzyarsk/Mahzyar-Safikhani-resume/testutil"
)

func setupLiveServer(t *testing.T) (*realtime.Registry, string) {
	t.Helper()

	registry := realtime.NewRegistry()
	handler := NewLiveHandler(registry)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", handler.Subscribe)
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		registry.Close()
		server.Close()
	})

	return registry, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func dialLive(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func expectCount(t *testing.T, ws *websocket.Conn, want int) {
	t.Helper()

	ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg models.OnlineCountMessage
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("Failed to read count message: %v", err)
	}
	if msg.Type != models.MessageOnlineCount {
		t.Errorf("Expected type '%s', got '%s'", models.MessageOnlineCount, msg.Type)
	}
	if msg.Count != want {
		t.Errorf("Expected count %d, got %d", want, msg.Count)
	}
}

func closeLive(t *testing.T, ws *websocket.Conn) {
	t.Helper()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	if err := ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		t.Fatalf("Failed to send close frame: %v", err)
	}
	ws.Close()
}

func TestSubscribe_CountFollowsConnections(t *testing.T) {
	registry, url := setupLiveServer(t)

	a := dialLive(t, url)
	expectCount(t, a, 1)

	b := dialLive(t, url)
	expectCount(t, a, 2)
	expectCount(t, b, 2)

	closeLive(t, a)
	expectCount(t, b, 1)

	if n := registry.Count(); n != 1 {
		t.Errorf("Expected registry count 1, got %d", n)
	}
}

func TestSubscribe_InboundMessagesIgnored(t *testing.T) {
	registry, url := setupLiveServer(t)

	ws := dialLive(t, url)
	expectCount(t, ws, 1)

	for _, msg := range []string{"ping", `{"type":"hello"}`, ""} {
		if err := ws.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			t.Fatalf("Failed to write message: %v", err)
		}
	}

	// A second subscriber proves the first is still registered
	other := dialLive(t, url)
	expectCount(t, ws, 2)
	expectCount(t, other, 2)

	if n := registry.Count(); n != 2 {
		t.Errorf("Expected registry count 2, got %d", n)
	}
}

func TestSubscribe_AbruptDisconnect(t *testing.T) {
	registry, url := setupLiveServer(t)

	a := dialLive(t, url)
	expectCount(t, a, 1)
	b := dialLive(t, url)
	expectCount(t, a, 2)
	expectCount(t, b, 2)

	// No close frame
	a.UnderlyingConn().Close()
	expectCount(t, b, 1)

	if n := registry.Count(); n != 1 {
		t.Errorf("Expected registry count 1, got %d", n)
	}
}

func TestSubscribe_RejectsPlainHTTP(t *testing.T) {
	registry := realtime.NewRegistry()
	handler := NewLiveHandler(registry)

	req := httptest.NewRequest("GET", "/ws", nil)
	w := httptest.NewRecorder()

	handler.Subscribe(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if n := registry.Count(); n != 0 {
		t.Errorf("Expected registry count 0, got %d", n)
	}
}

func TestOnlineCount(t *testing.T) {
	registry, url := setupLiveServer(t)
	handler := NewLiveHandler(registry)

	check := func(want int) {
		t.Helper()
		req := httptest.NewRequest("GET", "/api/online-count", nil)
		w := httptest.NewRecorder()
		handler.OnlineCount(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.OnlineCountResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Count != want {
			t.Errorf("Expected count %d, got %d", want, resp.Count)
		}
	}

	check(0)

	a := dialLive(t, url)
	expectCount(t, a, 1)
	check(1)

	b := dialLive(t, url)
	expectCount(t, a, 2)
	expectCount(t, b, 2)
	check(2)

	closeLive(t, b)
	expectCount(t, a, 1)
	check(1)
}
