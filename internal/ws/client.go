package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// joinMessage is the first thing a client sends after connecting; until it
// arrives the connection is only reachable via Broadcast.
type joinMessage struct {
	Type   string    `json:"type"`
	UserID uuid.UUID `json:"user_id"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// userID is owned by the hub and guarded by its mutex.
	userID uuid.UUID

	logger *log.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		logger: logger,
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Printf("WS read error | error=%v", err)
			}
			return
		}

		var msg joinMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Printf("WS message ignored | reason=unmarshal error=%v", err)
			continue
		}

		switch msg.Type {
		case "join":
			c.hub.Bind(c, msg.UserID)
		default:
			c.logger.Printf("WS message ignored | type=%q", msg.Type)
		}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.logger.Printf("WS write error | error=%v", err)
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
