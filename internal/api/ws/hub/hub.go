package hub

import (
	"context"
	"sync"
	"time"

	"assassin-server/domain"

	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub tracks the websocket clients connected to each room and fans room
// events from Redis out to them. One subscriber runs per room while at
// least one client is connected.
type Hub struct {
	roomsClients map[string]map[uuid.UUID]*domain.Client

	redisClient *redis.Client
	register    chan *domain.Client
	unregister  chan *domain.Client

	mutex       sync.RWMutex
	subscribers map[string]*redis.PubSub
	subMutex    sync.Mutex
}

func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		roomsClients: make(map[string]map[uuid.UUID]*domain.Client),
		redisClient:  redisClient,
		register:     make(chan *domain.Client),
		unregister:   make(chan *domain.Client),
		subscribers:  make(map[string]*redis.PubSub),
	}
}

func (h *Hub) Run(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.register:
				h.registerClient(client)
				go h.readPump(client)
				go h.writePump(client)
			case client := <-h.unregister:
				h.unregisterClient(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) RegisterClient(client *domain.Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *domain.Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomCode]
	if !ok {
		roomClients = make(map[uuid.UUID]*domain.Client)
		h.roomsClients[client.RoomCode] = roomClients
	}

	// A reconnect replaces the stale connection.
	if existing, ok := roomClients[client.ID]; ok {
		zap.L().Info("Replacing existing connection",
			zap.String("player_id", client.ID.String()),
			zap.String("room_code", client.RoomCode))
		close(existing.Done)
		delete(roomClients, client.ID)
	}

	firstInRoom := len(roomClients) == 0
	roomClients[client.ID] = client

	if firstInRoom {
		h.startSubscriber(client.RoomCode)
	}
}

func (h *Hub) unregisterClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomCode]
	if !ok {
		return
	}
	current, exists := roomClients[client.ID]
	if !exists || current != client {
		return
	}

	delete(roomClients, client.ID)
	close(client.Send)
	close(client.Done)

	if len(roomClients) == 0 {
		h.stopSubscriber(client.RoomCode)
		delete(h.roomsClients, client.RoomCode)
	}
}

// readPump drains the connection so close frames and pongs are processed.
// Clients talk to the server over HTTP; the socket is downstream only.
func (h *Hub) readPump(client *domain.Client) {
	defer func() {
		h.unregister <- client
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("Client read error", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				zap.L().Debug("WebSocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}

		case <-client.Done:
			return
		}
	}
}

// BroadcastMessage delivers raw payload bytes to every client in the room,
// dropping the message for clients whose send buffer is full.
func (h *Hub) BroadcastMessage(roomCode string, payload []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	roomClients, ok := h.roomsClients[roomCode]
	if !ok {
		return
	}

	for _, client := range roomClients {
		select {
		case client.Send <- payload:
		default:
			zap.L().Warn("Client send channel full, dropping message",
				zap.String("player_id", client.ID.String()),
				zap.String("room_code", roomCode))
		}
	}
}

func (h *Hub) RoomClientCount(roomCode string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.roomsClients[roomCode])
}
