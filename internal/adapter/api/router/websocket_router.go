package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	// Authentication happens inside the handler via the token query
	// parameter; websocket upgrades cannot carry an Authorization header.
	e.GET("/v1/ws", wsHandler.HandleWebSocket)
}
