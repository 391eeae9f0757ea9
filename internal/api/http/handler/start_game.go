package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type StartGameRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type StartGameResponse struct {
	Room domain.Room `json:"room"`
}

type StartGameHandler struct {
	usecase httpUsecase.StartGameUseCase
}

func NewStartGameHandler(usecase httpUsecase.StartGameUseCase) *StartGameHandler {
	return &StartGameHandler{
		usecase: usecase,
	}
}

func (h *StartGameHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StartGameRequest) (*StartGameResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomCode, playerID)
	if err != nil {
		return nil, status, err
	}

	return &StartGameResponse{Room: *room}, status, nil
}
