package wsUsecase

import (
	"context"
	"strings"

	"assassin-server/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, roomCode string, playerID uuid.UUID)
}

type roomConnectUseCase struct {
	hub        Hub
	repository PostgresRepository
}

func NewRoomConnectUseCase(hub Hub, repository PostgresRepository) RoomConnectUseCase {
	return &roomConnectUseCase{
		hub:        hub,
		repository: repository,
	}
}

type wsError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Execute verifies room membership, hands the connection to the hub, and
// blocks until the hub signals the client is done. The websocket handler
// runs on the connection's goroutine, so returning closes the socket.
func (u *roomConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, roomCode string, playerID uuid.UUID) {
	roomCode = strings.ToUpper(roomCode)

	if _, err := u.repository.GetPlayer(ctx, roomCode, playerID); err != nil {
		if writeErr := c.WriteJSON(wsError{Type: "error", Message: "not a member of this room"}); writeErr != nil {
			zap.L().Debug("Failed to send error to client", zap.Error(writeErr))
		}
		return
	}

	client := &domain.Client{
		ID:       playerID,
		RoomCode: roomCode,
		Conn:     c,
		Send:     make(chan []byte, 256),
		Done:     make(chan struct{}),
	}

	u.hub.RegisterClient(client)
	<-client.Done
}
