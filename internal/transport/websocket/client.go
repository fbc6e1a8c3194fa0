package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
)

const writeWait = 10 * time.Second

// Client wraps one hint connection.
type Client struct {
	conn *websocket.Conn

	// conn.WriteJSON is not safe for concurrent use
	writeMu sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// SendMessage writes one JSON message with a write deadline.
func (c *Client) SendMessage(message domain.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) SendError(message string) error {
	return c.SendMessage(domain.ServerMessage{
		Type:    domain.MessageError,
		Message: message,
		Column:  -1,
	})
}

// Ping sends a control ping; it may run alongside SendMessage.
func (c *Client) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) Close() error {
	return c.conn.Close()
}
