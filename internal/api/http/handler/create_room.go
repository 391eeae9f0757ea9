package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
	RoomName   string `json:"room_name" validate:"required,min=1,max=64"`
	PlayerName string `json:"player_name" validate:"required,min=1,max=32"`
	Object     string `json:"object" validate:"required,min=1,max=64"`
	Place      string `json:"place" validate:"required,min=1,max=64"`
}

type CreateRoomResponse struct {
	Room   domain.Room   `json:"room"`
	Player domain.Player `json:"player"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase: usecase,
	}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	result, status, err := h.usecase.Execute(ctx, req.RoomName, req.PlayerName, req.Object, req.Place)
	if err != nil {
		return nil, status, err
	}

	return &CreateRoomResponse{Room: result.Room, Player: result.Player}, status, nil
}
