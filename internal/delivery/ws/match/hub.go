package ws_match

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/xpekfdls/yacht/core/internal/model"
	usecase_match "github.com/xpekfdls/yacht/core/internal/usecase/match"
)

type Client struct {
	Hub           *Hub
	Conn          *websocket.Conn
	Send          chan []byte
	RoomCode      model.RoomCode
	ParticipantID uuid.UUID

	// Guards Send against a write racing the hub's close.
	mu     sync.Mutex
	closed bool
}

// TrySend delivers without blocking. Returns false when the client is
// already dropped or its buffer is full.
func (c *Client) TrySend(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel exactly once; only the hub's Run
// goroutine calls it.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

type roomEvent struct {
	roomCode model.RoomCode
	event    usecase_match.Event
}

// Hub fans coordinator events out to the sockets of a room. It is the
// transport side of the Broadcaster port: delivery is fire-and-forget,
// a client that cannot keep up is dropped rather than awaited.
type Hub struct {
	mu sync.RWMutex

	// Keep track of sets of Clients within each room
	rooms map[model.RoomCode]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[model.RoomCode]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent, 64),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case re := <-h.broadcast:
			h.broadcastToRoom(re.roomCode, re.event)
		}
	}
}

// BroadcastToRoom implements usecase_match.Broadcaster. The buffered
// channel decouples the coordinator from socket writes entirely.
func (h *Hub) BroadcastToRoom(code model.RoomCode, event usecase_match.Event) {
	h.broadcast <- roomEvent{roomCode: code, event: event}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) RemoveClient(client *Client) {
	h.unregister <- client
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.RoomCode]; !ok {
		h.rooms[client.RoomCode] = make(map[*Client]bool)
	}
	h.rooms[client.RoomCode][client] = true

	h.logger.Info("client registered",
		"room", client.RoomCode,
		"participant", client.ParticipantID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[client.RoomCode]; ok {
		if _, member := room[client]; member {
			delete(room, client)
			client.closeSend()
			if len(room) == 0 {
				delete(h.rooms, client.RoomCode)
			}
		}
	}
	h.logger.Info("client unregistered",
		"room", client.RoomCode,
		"participant", client.ParticipantID)
}

func (h *Hub) broadcastToRoom(code model.RoomCode, event usecase_match.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	messageBytes, _ := json.Marshal(event)

	if clients, ok := h.rooms[code]; ok {
		for client := range clients {
			if !client.TrySend(messageBytes) {
				client.closeSend()
				delete(h.rooms[code], client)
			}
		}
	}
}

// StartClientWriting drains the send channel onto the socket until the
// channel closes or the peer goes away.
func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
