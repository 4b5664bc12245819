package handlers

import (
	"log"
	"net/http"

	ws "github.com/gorilla/websocket"

	"github.com/tayo/teamwork-backend/internal/token"
	"github.com/tayo/teamwork-backend/internal/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type WebSocketHandler struct {
	hub    *websocket.Hub
	tokens *token.Manager
}

func NewWebSocketHandler(hub *websocket.Hub, tokens *token.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		tokens: tokens,
	}
}

// Handle upgrades an authenticated connection onto the activity feed. The
// token travels as a query parameter because browsers cannot set headers on
// websocket dials.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	tok := r.URL.Query().Get("token")
	if tok == "" {
		http.Error(w, "Token required", http.StatusBadRequest)
		return
	}

	claims, err := h.tokens.Verify(tok)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, claims.UserID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
