package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetClaimsRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type GetClaimsResponse struct {
	Claims []domain.EliminationClaim `json:"claims"`
}

type GetClaimsHandler struct {
	usecase httpUsecase.GetClaimsUseCase
}

func NewGetClaimsHandler(usecase httpUsecase.GetClaimsUseCase) *GetClaimsHandler {
	return &GetClaimsHandler{
		usecase: usecase,
	}
}

func (h *GetClaimsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetClaimsRequest) (*GetClaimsResponse, int, error) {
	claims, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}

	return &GetClaimsResponse{Claims: claims}, status, nil
}

type GetClaimRequest struct {
	ClaimID uuid.UUID `params:"claim_id"`
}

type GetClaimResponse struct {
	Claim domain.EliminationClaim `json:"claim"`
}

type GetClaimHandler struct {
	usecase httpUsecase.GetClaimUseCase
}

func NewGetClaimHandler(usecase httpUsecase.GetClaimUseCase) *GetClaimHandler {
	return &GetClaimHandler{
		usecase: usecase,
	}
}

func (h *GetClaimHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetClaimRequest) (*GetClaimResponse, int, error) {
	claim, status, err := h.usecase.Execute(ctx, req.ClaimID)
	if err != nil {
		return nil, status, err
	}

	return &GetClaimResponse{Claim: *claim}, status, nil
}
