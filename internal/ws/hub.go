package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

// directed is a payload addressed to every connection bound to one user.
type directed struct {
	userID  uuid.UUID
	payload []byte
}

// Hub owns the live-connection registry. Connections start unaddressed; a
// client becomes reachable by user id only after its join message binds it.
// Delivery is best effort: no live connection means the event is dropped.
//
// Registration and binding mutate the maps synchronously under the mutex so a
// join arriving right after the connect is never lost. Every send on a client
// channel happens inside Run, the only goroutine that closes them.
type Hub struct {
	clients map[*Client]bool
	byUser  map[uuid.UUID]map[*Client]struct{}

	unregister chan *Client
	notify     chan directed
	broadcast  chan []byte

	mutex  sync.RWMutex
	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[uuid.UUID]map[*Client]struct{}),
		unregister: make(chan *Client, 128),
		notify:     make(chan directed, 1024),
		broadcast:  make(chan []byte, 1024),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.unregister:
			h.drop(client)

		case d := <-h.notify:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.byUser[d.userID]))
			for c := range h.byUser[d.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- d.payload:
				default:
					h.drop(client)
				}
			}

		case message := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- message:
				default:
					h.drop(client)
				}
			}
		}
	}
}

// Register makes the connection part of the registry immediately, so a join
// processed right after the upgrade can already bind it.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mutex.Unlock()
	h.logger.Printf("WS connected | total_clients=%d", total)
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.unregister <- client
}

// drop removes the client and closes its send channel. Only called from Run,
// which is also the only sender on client channels.
func (h *Hub) drop(client *Client) {
	if client == nil {
		return
	}
	h.mutex.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mutex.Unlock()
		return
	}
	delete(h.clients, client)
	h.removeBindingLocked(client)
	close(client.send)
	total := len(h.clients)
	h.mutex.Unlock()
	h.logger.Printf("WS disconnected | total_clients=%d", total)
}

// Bind associates a registered connection with a user id. A connection holds
// at most one binding; rebinding moves it.
func (h *Hub) Bind(client *Client, userID uuid.UUID) {
	if h == nil || client == nil || userID == uuid.Nil {
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if !h.clients[client] {
		return
	}

	h.removeBindingLocked(client)
	client.userID = userID
	if h.byUser[userID] == nil {
		h.byUser[userID] = make(map[*Client]struct{})
	}
	h.byUser[userID][client] = struct{}{}
	h.logger.Printf("WS joined | user_id=%s connections=%d", userID, len(h.byUser[userID]))
}

// NotifyUser delivers an event to every connection bound to userID. Users
// with no live connection are silently skipped.
func (h *Hub) NotifyUser(userID uuid.UUID, evt Event) {
	if h == nil || userID == uuid.Nil {
		return
	}

	message, err := json.Marshal(evt)
	if err != nil {
		h.logger.Printf("WS notify dropped | reason=marshal error=%v", err)
		return
	}

	select {
	case h.notify <- directed{userID: userID, payload: message}:
	default:
		h.logger.Printf("WS notify dropped | reason=buffer_full user_id=%s", userID)
	}
}

// Broadcast delivers an event to every live connection, bound or not.
func (h *Hub) Broadcast(evt Event) {
	if h == nil {
		return
	}

	message, err := json.Marshal(evt)
	if err != nil {
		h.logger.Printf("WS broadcast dropped | reason=marshal error=%v", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Printf("WS broadcast dropped | reason=buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// UserConnectionCount reports live connections bound to a user id.
func (h *Hub) UserConnectionCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.byUser[userID])
}

func (h *Hub) removeBindingLocked(client *Client) {
	if client.userID == uuid.Nil {
		return
	}
	if set, ok := h.byUser[client.userID]; ok {
		delete(set, client)
		if len(set) == 0 {
			delete(h.byUser, client.userID)
		}
	}
	client.userID = uuid.Nil
}
