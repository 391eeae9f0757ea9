package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RespondClaimRequest struct {
	ClaimID  uuid.UUID `params:"claim_id"`
	Response string    `json:"response" validate:"required,oneof=confirm deny"`
}

type RespondClaimResponse struct {
	Claim domain.EliminationClaim `json:"claim"`
}

type RespondClaimHandler struct {
	usecase httpUsecase.RespondClaimUseCase
}

func NewRespondClaimHandler(usecase httpUsecase.RespondClaimUseCase) *RespondClaimHandler {
	return &RespondClaimHandler{
		usecase: usecase,
	}
}

func (h *RespondClaimHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *RespondClaimRequest) (*RespondClaimResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	claim, status, err := h.usecase.Execute(ctx, req.ClaimID, playerID, domain.ClaimResponse(req.Response))
	if err != nil {
		return nil, status, err
	}

	return &RespondClaimResponse{Claim: *claim}, status, nil
}
