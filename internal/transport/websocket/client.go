package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-hotseat/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	writeWait = 10 * time.Second

	// sendBuffer is how many messages a connection may fall behind before
	// it is dropped
	sendBuffer = 64
)

var errSendQueueFull = errors.New("send queue full")

// client is one registered socket. Only its writer goroutine writes data
// frames, in the order they were queued.
type client struct {
	conn *websocket.Conn
	send chan any
}

func newClient(conn *websocket.Conn, buffer int) *client {
	return &client{conn: conn, send: make(chan any, buffer)}
}

// ConnectionManager handles active WebSocket connections thread-safely
type ConnectionManager struct {
	clients map[string]*client
	mu      sync.RWMutex // Protects the map; send channels are closed under the write lock
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		clients: make(map[string]*client),
	}
}

// AddConnection registers a new connection and starts its writer
func (cm *ConnectionManager) AddConnection(connID string, conn *websocket.Conn) {
	c := newClient(conn, sendBuffer)
	cm.register(connID, c)
	go cm.writePump(connID, c)
}

func (cm *ConnectionManager) register(connID string, c *client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if old, exists := cm.clients[connID]; exists && old != c {
		close(old.send)
		old.conn.Close()
	}
	cm.clients[connID] = c
}

// RemoveConnection closes a connection and stops its writer
func (cm *ConnectionManager) RemoveConnection(connID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if c, exists := cm.clients[connID]; exists {
		close(c.send)
		c.conn.Close()
		delete(cm.clients, connID)
	}
}

// Count returns the number of registered connections.
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// SendMessage queues a JSON message for one connection. It never waits on
// the socket; a connection whose queue is full gets errSendQueueFull.
func (cm *ConnectionManager) SendMessage(connID string, message any) error {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	c, exists := cm.clients[connID]
	if !exists {
		return nil // disconnected, ignore
	}

	select {
	case c.send <- message:
		return nil
	default:
		return errSendQueueFull
	}
}

// BroadcastMessage queues a message for every connection. Each connection
// receives messages in the order they were broadcast, so board_update always
// precedes the turn_changed or victory message that follows it.
func (cm *ConnectionManager) BroadcastMessage(message domain.ServerMessage) {
	cm.mu.RLock()
	var lagging []string
	for connID, c := range cm.clients {
		select {
		case c.send <- message:
		default:
			lagging = append(lagging, connID)
		}
	}
	cm.mu.RUnlock()

	for _, connID := range lagging {
		log.Warn().Str("connID", connID).Str("type", message.Type).Msg("Client too slow, dropping connection")
		cm.RemoveConnection(connID)
	}
}

// Ping writes a control ping to one connection
func (cm *ConnectionManager) Ping(connID string) error {
	cm.mu.RLock()
	c, exists := cm.clients[connID]
	cm.mu.RUnlock()

	if !exists {
		return websocket.ErrCloseSent
	}

	// WriteControl may run alongside the writer goroutine
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (cm *ConnectionManager) writePump(connID string, c *client) {
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(message); err != nil {
			log.Warn().Err(err).Str("connID", connID).Msg("Write failed, dropping connection")
			cm.removeClient(connID, c)
			return
		}
	}
}

// removeClient drops connID only if it still belongs to c.
func (cm *ConnectionManager) removeClient(connID string, c *client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.clients[connID] == c {
		close(c.send)
		c.conn.Close()
		delete(cm.clients, connID)
	}
}
