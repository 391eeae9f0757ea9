package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitClaimRequest struct {
	RoomCode string    `params:"room_code" validate:"required,len=6"`
	TargetID uuid.UUID `json:"target_id" validate:"required"`
}

type SubmitClaimResponse struct {
	Claim domain.EliminationClaim `json:"claim"`
}

type SubmitClaimHandler struct {
	usecase httpUsecase.SubmitClaimUseCase
}

func NewSubmitClaimHandler(usecase httpUsecase.SubmitClaimUseCase) *SubmitClaimHandler {
	return &SubmitClaimHandler{
		usecase: usecase,
	}
}

func (h *SubmitClaimHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SubmitClaimRequest) (*SubmitClaimResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	claim, status, err := h.usecase.Execute(ctx, req.RoomCode, playerID, req.TargetID)
	if err != nil {
		return nil, status, err
	}

	return &SubmitClaimResponse{Claim: *claim}, status, nil
}
