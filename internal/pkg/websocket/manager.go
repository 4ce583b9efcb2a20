package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

// Client represents a single connected websocket client
type Client struct {
	UserID string
	Role   string
	conn   *websocket.Conn

	// guards writes; gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

// Manager manages WebSocket connections and group room membership
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client             // userID -> client
	rooms    map[string]map[string]struct{} // groupID -> set of userIDs
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Upgrade upgrades the HTTP request to a websocket connection and registers the client
func (m *Manager) Upgrade(c echo.Context, userID, role string) (*Client, error) {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade websocket connection: %w", err)
	}

	client := &Client{
		UserID: userID,
		Role:   role,
		conn:   conn,
	}

	m.Lock()
	m.clients[userID] = client
	m.Unlock()

	return client, nil
}

// Disconnect removes a client from the manager and all rooms, then closes the connection
func (m *Manager) Disconnect(client *Client) {
	m.Lock()
	delete(m.clients, client.UserID)
	for groupID, members := range m.rooms {
		delete(members, client.UserID)
		if len(members) == 0 {
			delete(m.rooms, groupID)
		}
	}
	m.Unlock()

	_ = client.conn.Close()
}

// JoinRoom adds a client to a group room
func (m *Manager) JoinRoom(groupID, userID string) {
	m.Lock()
	defer m.Unlock()

	if m.rooms[groupID] == nil {
		m.rooms[groupID] = make(map[string]struct{})
	}
	m.rooms[groupID][userID] = struct{}{}
}

// LeaveRoom removes a client from a group room
func (m *Manager) LeaveRoom(groupID, userID string) {
	m.Lock()
	defer m.Unlock()

	if members, ok := m.rooms[groupID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(m.rooms, groupID)
		}
	}
}

// InRoom reports whether a user has joined a group room
func (m *Manager) InRoom(groupID, userID string) bool {
	m.RLock()
	defer m.RUnlock()

	members, ok := m.rooms[groupID]
	if !ok {
		return false
	}
	_, joined := members[userID]
	return joined
}

// ReadMessage reads the next message from the client connection
func (c *Client) ReadMessage() (*models.WSMessage, error) {
	var msg models.WSMessage
	if err := c.conn.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Send writes an event with a JSON payload to the client
func (c *Client) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendError sends an error message to the client
func (c *Client) SendError(code, message string) error {
	return c.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends a notification to a specific connected client
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := client.Send(event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
	}
}

// BroadcastToRoom sends an event to every client in a group room.
// Users listed in except are skipped.
func (m *Manager) BroadcastToRoom(groupID string, event string, data interface{}, except ...string) {
	m.RLock()
	members, ok := m.rooms[groupID]
	if !ok {
		m.RUnlock()
		return
	}

	skip := make(map[string]struct{}, len(except))
	for _, userID := range except {
		skip[userID] = struct{}{}
	}

	targets := make([]*Client, 0, len(members))
	for userID := range members {
		if _, excluded := skip[userID]; excluded {
			continue
		}
		if client, exists := m.clients[userID]; exists {
			targets = append(targets, client)
		}
	}
	m.RUnlock()

	for _, client := range targets {
		if err := client.Send(event, data); err != nil {
			logger.Warn("Error broadcasting to room member",
				logger.String("group_id", groupID),
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// ConnectedCount returns the number of connected clients
func (m *Manager) ConnectedCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}
