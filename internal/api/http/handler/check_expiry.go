package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CheckExpiryRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type CheckExpiryResponse struct {
	Room domain.Room `json:"room"`
}

type CheckExpiryHandler struct {
	usecase httpUsecase.CheckExpiryUseCase
}

func NewCheckExpiryHandler(usecase httpUsecase.CheckExpiryUseCase) *CheckExpiryHandler {
	return &CheckExpiryHandler{
		usecase: usecase,
	}
}

func (h *CheckExpiryHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CheckExpiryRequest) (*CheckExpiryResponse, int, error) {
	room, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}

	return &CheckExpiryResponse{Room: *room}, status, nil
}
