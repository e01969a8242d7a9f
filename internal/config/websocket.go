package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocket holds the shared upgrader for the live game channel.
type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket builds an upgrader with origin checks disabled, so the game
// channel is reachable from any frontend host.
func NewWebSocket() (*WebSocket, error) {
	ws := &WebSocket{
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	return ws, nil
}
