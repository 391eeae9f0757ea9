package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WitnessVoteRequest struct {
	ClaimID  uuid.UUID `params:"claim_id"`
	Response string    `json:"response" validate:"required,oneof=confirm deny"`
}

type WitnessVoteResponse struct {
	Claim domain.EliminationClaim `json:"claim"`
}

type WitnessVoteHandler struct {
	usecase httpUsecase.WitnessVoteUseCase
}

func NewWitnessVoteHandler(usecase httpUsecase.WitnessVoteUseCase) *WitnessVoteHandler {
	return &WitnessVoteHandler{
		usecase: usecase,
	}
}

func (h *WitnessVoteHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *WitnessVoteRequest) (*WitnessVoteResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	claim, status, err := h.usecase.Execute(ctx, req.ClaimID, playerID, domain.ClaimResponse(req.Response))
	if err != nil {
		return nil, status, err
	}

	return &WitnessVoteResponse{Claim: *claim}, status, nil
}
