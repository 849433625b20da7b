package dev

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	rxerrors "github.com/razen-core/rynex/internal/errors"
)

// dialReload connects a test WebSocket client to the hub.
func dialReload(t *testing.T, hub *ReloadHub) *websocket.Conn {
	t.Helper()

	ws := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(ws.Close)

	url := "ws" + strings.TrimPrefix(ws.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Wait for the hub to register the connection.
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func TestReloadHubBroadcast(t *testing.T) {
	hub := NewReloadHub()
	conn := dialReload(t, hub)

	if hub.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want 1", hub.ClientCount())
	}

	hub.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("Type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestReloadHubErrorMessage(t *testing.T) {
	hub := NewReloadHub()
	conn := dialReload(t, hub)

	hub.NotifyError(OverlayError{
		Code:   "RX300",
		Title:  "Build failed",
		Output: "syntax error in main.go",
	})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeError {
		t.Errorf("Type = %q, want %q", msg.Type, ReloadTypeError)
	}
	if msg.Error == nil {
		t.Fatal("Error payload missing")
	}
	if msg.Error.Code != "RX300" {
		t.Errorf("Code = %q, want RX300", msg.Error.Code)
	}
	if msg.Error.Output != "syntax error in main.go" {
		t.Errorf("Output = %q", msg.Error.Output)
	}
}

func TestReloadHubReplaysErrorOnConnect(t *testing.T) {
	hub := NewReloadHub()
	hub.NotifyError(OverlayError{Title: "Build failed", Output: "undefined: Foo"})

	// A browser opened while the build is broken gets the overlay
	// immediately.
	conn := dialReload(t, hub)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeError {
		t.Errorf("Type = %q, want %q", msg.Type, ReloadTypeError)
	}
	if msg.Error == nil || msg.Error.Output != "undefined: Foo" {
		t.Errorf("Error = %+v", msg.Error)
	}
}

func TestReloadHubClearDropsRememberedError(t *testing.T) {
	hub := NewReloadHub()
	hub.NotifyError(OverlayError{Title: "Build failed"})
	hub.ClearError()

	conn := dialReload(t, hub)

	// No replay after a clear; the read should time out.
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("unexpected message after ClearError")
	}
}

func TestOverlayFromError(t *testing.T) {
	rerr := rxerrors.New("RX300").
		WithSuggestion("check the compiler output").
		WithLocation("app/main.go", 12, 3)

	overlay := overlayFromError(rerr, "undefined: Foo")
	if overlay.Code != "RX300" {
		t.Errorf("Code = %q, want RX300", overlay.Code)
	}
	if overlay.Output != "undefined: Foo" {
		t.Errorf("Output = %q", overlay.Output)
	}
	if overlay.File != "app/main.go" || overlay.Line != 12 {
		t.Errorf("Location = %s:%d", overlay.File, overlay.Line)
	}
	if overlay.Suggestion != "check the compiler output" {
		t.Errorf("Suggestion = %q", overlay.Suggestion)
	}

	// Plain errors still produce a usable payload.
	plain := overlayFromError(errors.New("dial tcp: refused"), "")
	if plain.Output != "dial tcp: refused" {
		t.Errorf("Output = %q", plain.Output)
	}
	if plain.Title == "" {
		t.Error("Title must never be empty")
	}
}

func TestReloadHubClose(t *testing.T) {
	hub := NewReloadHub()
	dialReload(t, hub)

	hub.Close()
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount = %d after Close, want 0", hub.ClientCount())
	}
}

func TestReloadClientScriptMentionsEndpoint(t *testing.T) {
	if !strings.Contains(ReloadClientScript, "/_rynex/reload") {
		t.Error("client script should connect to /_rynex/reload")
	}
}
