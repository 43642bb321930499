package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"moviehub/internal/infrastructure/firebase"
	ws "moviehub/internal/infrastructure/websocket"
	"moviehub/internal/usecase"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
	"moviehub/pkg/response"
)

type WebSocketHandler struct {
	hub          *ws.Hub
	authClient   *firebase.AuthClient
	liveSessions *usecase.LiveSessionUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restrict this in production
	},
}

func NewWebSocketHandler(hub *ws.Hub, authClient *firebase.AuthClient, liveSessions *usecase.LiveSessionUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		authClient:   authClient,
		liveSessions: liveSessions,
	}
}

// HandleWebSocket authenticates via the token query parameter (browsers
// cannot set headers on websocket upgrades), upgrades the connection, and
// attaches the live session.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.AuthRequired("Token query parameter is required"))
	}

	userID, _, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.AuthRequired("Invalid or expired token"))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register <- client

	// Subscriptions outlive the upgrade request; the session owns their
	// lifetime and releases them on disconnect.
	if err := h.liveSessions.Attach(context.Background(), userID); err != nil {
		logger.Error("Failed to attach live session for %s: %v", userID, err)
		h.hub.Unregister <- client
		conn.Close()
		return nil
	}

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
