package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"moviehub/pkg/logger"
)

// Client represents one connected live session.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub tracks the active live-session connection per user. A user attaching
// from a new client replaces the old connection.
type Hub struct {
	clients      map[string]*Client
	Register     chan *Client
	Unregister   chan *Client
	onDisconnect func(userID string)
	mutex        sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// OnDisconnect sets the callback fired when a user's last connection goes
// away. Set before Start.
func (h *Hub) OnDisconnect(fn func(userID string)) {
	h.onDisconnect = fn
}

// Start runs the hub's main loop in a goroutine.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				if old, ok := h.clients[client.UserID]; ok && old != client {
					close(old.Send)
				}
				h.clients[client.UserID] = client
				h.mutex.Unlock()
				logger.Info("Live session connected: %s", client.UserID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				current, ok := h.clients[client.UserID]
				if ok && current == client {
					delete(h.clients, client.UserID)
					close(client.Send)
				}
				h.mutex.Unlock()
				// Only the owning connection tears the session down; a
				// replaced connection must not detach its successor.
				if ok && current == client && h.onDisconnect != nil {
					h.onDisconnect(client.UserID)
				}
				logger.Info("Live session disconnected: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a message to a user's live session, dropping it when
// no session is attached or its buffer is full.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mutex.RLock()
	client, ok := h.clients[userID]
	h.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping message for %s: send buffer full", userID)
	}
}

// ReadPump drains the connection until it closes, then unregisters.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Live session read error for %s: %v", c.UserID, err)
			}
			break
		}
	}
}

// WritePump sends queued messages to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Live session write error for %s: %v", c.UserID, err)
			return
		}
	}
}
