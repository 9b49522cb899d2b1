package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ReewajAdhikari/LearningTree/pkg/logger"
)

// Client is one authenticated WebSocket connection. A user may hold several
// (multiple tabs); the manager indexes them all.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	// OnClose runs once when the client unregisters, used to tear down the
	// live query subscriptions feeding this connection.
	OnClose func()
}

// Envelope is the frame pushed to clients: a feed name plus its payload.
// Feeds mirror the live queries (events, messages) and the error state.
type Envelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Manager tracks active connections and fans messages out per user.
type Manager struct {
	Register   chan *Client
	Unregister chan *Client

	mutex   sync.RWMutex
	clients map[*Client]bool
	byUser  map[string]map[*Client]bool
}

func NewManager() *Manager {
	return &Manager{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		byUser:     make(map[string]map[*Client]bool),
	}
}

// Start runs the registration loop until the context is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = true
				if m.byUser[client.UserID] == nil {
					m.byUser[client.UserID] = make(map[*Client]bool)
				}
				m.byUser[client.UserID][client] = true
				m.mutex.Unlock()
				logger.Debug("WebSocket client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					delete(m.byUser[client.UserID], client)
					if len(m.byUser[client.UserID]) == 0 {
						delete(m.byUser, client.UserID)
					}
					close(client.Send)
				}
				m.mutex.Unlock()
				if client.OnClose != nil {
					client.OnClose()
				}
				logger.Debug("WebSocket client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser pushes an envelope to every connection the user holds.
func (m *Manager) SendToUser(userID string, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		logger.Error("Failed to encode websocket envelope: %v", err)
		return
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.byUser[userID] {
		select {
		case client.Send <- payload:
		default:
			logger.Warn("Dropping websocket frame for slow client: %s", userID)
		}
	}
}

// Push sends an envelope to a single connection.
func (m *Manager) Push(client *Client, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		logger.Error("Failed to encode websocket envelope: %v", err)
		return
	}

	// The unregister path closes Send under the write lock, so the
	// registration check and the send must share the read lock.
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if !m.clients[client] {
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("Dropping websocket frame for slow client: %s", client.UserID)
	}
}

// ReadPump drains the connection until it closes, then unregisters.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error: %v", err)
			}
			return
		}
	}
}

// WritePump forwards queued frames to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error: %v", err)
			return
		}
	}
}
