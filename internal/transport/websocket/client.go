package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/hotseat-connect4/internal/transport/wire"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Client is one browser tab attached to a game session.
type Client struct {
	GameID string
	conn   *websocket.Conn

	// conn.WriteJSON is not safe for concurrent use
	writeMu sync.Mutex
}

func NewClient(gameID string, conn *websocket.Conn) *Client {
	return &Client{GameID: gameID, conn: conn}
}

func (c *Client) Send(message wire.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ConnectionManager tracks open connections per game session
type ConnectionManager struct {
	clients map[string]map[*Client]struct{} // gameID → clients
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (cm *ConnectionManager) AddClient(client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.clients[client.GameID] == nil {
		cm.clients[client.GameID] = make(map[*Client]struct{})
	}
	cm.clients[client.GameID][client] = struct{}{}
}

func (cm *ConnectionManager) RemoveClient(client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	clients, exists := cm.clients[client.GameID]
	if !exists {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(cm.clients, client.GameID)
	}
}

// Count returns the number of clients attached to gameID
func (cm *ConnectionManager) Count(gameID string) int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients[gameID])
}

// CloseAll closes every connection, used on shutdown
func (cm *ConnectionManager) CloseAll() {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for _, clients := range cm.clients {
		for client := range clients {
			client.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second))
			client.Close()
		}
	}
}
