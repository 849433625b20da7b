package dev

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	rxerrors "github.com/razen-core/rynex/internal/errors"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// OverlayError is the build failure payload rendered by the browser
// error overlay.
type OverlayError struct {
	// Code is the error code ("RX300") when the failure carried one.
	Code string `json:"code,omitempty"`

	// Title is the short description shown in the overlay header.
	Title string `json:"title"`

	// Output is the raw compiler or scanner output.
	Output string `json:"output,omitempty"`

	// File and Line point at the failing source when known.
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`

	// Suggestion is a fix hint, when the error carried one.
	Suggestion string `json:"suggestion,omitempty"`
}

// overlayFromError maps a build failure onto the overlay payload,
// pulling out the structured fields when the error is one of ours.
func overlayFromError(err error, output string) OverlayError {
	overlay := OverlayError{Title: "Build failed", Output: output}

	var rerr *rxerrors.RynexError
	if errors.As(err, &rerr) {
		overlay.Code = rerr.Code
		overlay.Title = rerr.Message
		overlay.Suggestion = rerr.Suggestion
		if overlay.Output == "" {
			overlay.Output = rerr.Detail
		}
		if rerr.Location != nil {
			overlay.File = rerr.Location.File
			overlay.Line = rerr.Location.Line
		}
	} else if err != nil && overlay.Output == "" {
		overlay.Output = err.Error()
	}

	return overlay
}

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	File  string            `json:"file,omitempty"`
	Error *OverlayError     `json:"error,omitempty"`
}

// ReloadHub manages WebSocket connections for hot reload. It remembers
// the last build failure so a browser opened mid-failure shows the
// overlay immediately on connect.
type ReloadHub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	lastError *OverlayError
	upgrader  websocket.Upgrader
}

// NewReloadHub creates a new reload hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // allow all origins in dev
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	stale := h.lastError
	if stale != nil {
		h.write(conn, ReloadMessage{Type: ReloadTypeError, Error: stale})
	}
	h.mu.Unlock()

	// Hold the connection open until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyReload sends a full page reload message to all clients.
func (h *ReloadHub) NotifyReload() {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS sends a CSS-only reload message to all clients.
func (h *ReloadHub) NotifyCSS(file string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError sends a build failure to all clients and keeps it for
// clients that connect before the next successful build.
func (h *ReloadHub) NotifyError(overlay OverlayError) {
	h.mu.Lock()
	h.lastError = &overlay
	h.mu.Unlock()
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: &overlay})
}

// ClearError clears the error overlay on all clients and drops the
// remembered failure.
func (h *ReloadHub) ClearError() {
	h.mu.Lock()
	h.lastError = nil
	h.mu.Unlock()
	h.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends a message to all connected clients, dropping any
// connection that fails to accept the write.
func (h *ReloadHub) broadcast(msg ReloadMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := h.write(conn, msg); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// write sends one message. Callers hold mu, which also serializes
// writes to each connection.
func (h *ReloadHub) write(conn *websocket.Conn, msg ReloadMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// ReloadClientScript is the JavaScript injected into pages in development
// mode for hot reload and the build error overlay.
const ReloadClientScript = `
<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var ws = null;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/_rynex/reload');

        ws.onopen = function() {
            console.log('[Rynex] Hot reload connected');
            reconnectDelay = 1000;
            // The server replays the current failure right after the
            // upgrade, so a stale overlay can be dropped here.
            clearErrorOverlay();
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'reload':
                    console.log('[Rynex] Reloading...');
                    location.reload();
                    break;

                case 'css':
                    console.log('[Rynex] Reloading CSS...');
                    reloadCSS();
                    break;

                case 'error':
                    console.error('[Rynex] Build error:', msg.error && msg.error.output);
                    showErrorOverlay(msg.error || {});
                    break;

                case 'clear':
                    clearErrorOverlay();
                    break;
            }
        };

        ws.onclose = function() {
            console.log('[Rynex] Connection lost, reconnecting in', reconnectDelay + 'ms');
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function reloadCSS() {
        var links = document.querySelectorAll('link[rel="stylesheet"]');
        links.forEach(function(link) {
            var url = new URL(link.href);
            url.searchParams.set('_reload', Date.now());
            link.href = url.toString();
        });
    }

    function showErrorOverlay(err) {
        clearErrorOverlay();

        var overlay = document.createElement('div');
        overlay.id = 'rynex-error-overlay';
        overlay.style.cssText = 'position:fixed;top:0;left:0;right:0;bottom:0;background:rgba(0,0,0,0.9);color:#fff;font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;';

        var content = document.createElement('div');
        content.style.cssText = 'max-width:800px;margin:0 auto;';

        var title = document.createElement('h2');
        title.style.cssText = 'color:#ff5555;margin:0 0 20px;';
        title.textContent = err.code ? '[' + err.code + '] ' + (err.title || 'Build Error') : (err.title || 'Build Error');

        content.appendChild(title);

        if (err.file) {
            var loc = document.createElement('p');
            loc.style.cssText = 'color:#8be9fd;margin:0 0 12px;';
            loc.textContent = err.line ? err.file + ':' + err.line : err.file;
            content.appendChild(loc);
        }

        var pre = document.createElement('pre');
        pre.style.cssText = 'white-space:pre-wrap;word-wrap:break-word;background:#1a1a1a;padding:20px;border-radius:8px;border:1px solid #333;';
        pre.textContent = err.output || '';
        content.appendChild(pre);

        if (err.suggestion) {
            var tip = document.createElement('p');
            tip.style.cssText = 'margin-top:16px;color:#50fa7b;';
            tip.textContent = 'Hint: ' + err.suggestion;
            content.appendChild(tip);
        }

        var hint = document.createElement('p');
        hint.style.cssText = 'margin-top:20px;color:#888;';
        hint.textContent = 'Fix the error and save to reload.';
        content.appendChild(hint);

        overlay.appendChild(content);
        document.body.appendChild(overlay);
    }

    function clearErrorOverlay() {
        var overlay = document.getElementById('rynex-error-overlay');
        if (overlay) {
            overlay.remove();
        }
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
</script>
`
