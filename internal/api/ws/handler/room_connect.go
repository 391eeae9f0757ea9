package wsHandler

import (
	"context"
	"fmt"

	wsUsecase "assassin-server/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomConnectHandler struct {
	usecase wsUsecase.RoomConnectUseCase
}

type RoomConnectRequest struct {
}

func NewRoomConnectHandler(usecase wsUsecase.RoomConnectUseCase) *RoomConnectHandler {
	return &RoomConnectHandler{
		usecase: usecase,
	}
}

func (h *RoomConnectHandler) sendErrorAndClose(conn *websocket.Conn, msg string) {
	errorMessage := map[string]string{"type": "error", "message": msg}
	if err := conn.WriteJSON(errorMessage); err != nil {
		zap.L().Debug("Failed to send error message to client", zap.Error(err))
	}
	conn.Close()
}

func (h *RoomConnectHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *RoomConnectRequest) {
	playerIDStr := c.Headers("X-Player-Id")
	if playerIDStr == "" {
		playerIDStr = c.Query("player_id")
	}

	playerID, err := uuid.Parse(playerIDStr)
	if err != nil {
		h.sendErrorAndClose(c, fmt.Sprintf("invalid player ID: %v", err))
		return
	}

	roomCode := c.Params("room_code")
	if roomCode == "" {
		h.sendErrorAndClose(c, "missing room code")
		return
	}

	h.usecase.Execute(c, ctx, roomCode, playerID)
}
