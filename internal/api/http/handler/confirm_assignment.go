package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type ConfirmAssignmentRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type ConfirmAssignmentResponse struct {
	Room domain.Room `json:"room"`
}

type ConfirmAssignmentHandler struct {
	usecase httpUsecase.ConfirmAssignmentUseCase
}

func NewConfirmAssignmentHandler(usecase httpUsecase.ConfirmAssignmentUseCase) *ConfirmAssignmentHandler {
	return &ConfirmAssignmentHandler{
		usecase: usecase,
	}
}

func (h *ConfirmAssignmentHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *ConfirmAssignmentRequest) (*ConfirmAssignmentResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomCode, playerID)
	if err != nil {
		return nil, status, err
	}

	return &ConfirmAssignmentResponse{Room: *room}, status, nil
}
