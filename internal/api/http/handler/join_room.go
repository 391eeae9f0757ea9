package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type JoinRoomRequest struct {
	RoomCode   string `params:"room_code" validate:"required,len=6"`
	PlayerName string `json:"player_name" validate:"required,min=1,max=32"`
	Object     string `json:"object" validate:"required,min=1,max=64"`
	Place      string `json:"place" validate:"required,min=1,max=64"`
}

type JoinRoomResponse struct {
	Player domain.Player `json:"player"`
}

type JoinRoomHandler struct {
	usecase httpUsecase.JoinRoomUseCase
}

func NewJoinRoomHandler(usecase httpUsecase.JoinRoomUseCase) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase: usecase,
	}
}

func (h *JoinRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *JoinRoomRequest) (*JoinRoomResponse, int, error) {
	player, status, err := h.usecase.Execute(ctx, req.RoomCode, req.PlayerName, req.Object, req.Place)
	if err != nil {
		return nil, status, err
	}

	return &JoinRoomResponse{Player: *player}, status, nil
}
