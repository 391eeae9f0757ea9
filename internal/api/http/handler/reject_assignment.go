package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type RejectAssignmentRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type RejectAssignmentResponse struct {
	Player domain.Player `json:"player"`
}

// RejectAssignmentHandler serves both the reject-object and reject-place
// routes; the kind is fixed per registered instance.
type RejectAssignmentHandler struct {
	usecase httpUsecase.RejectAssignmentUseCase
	kind    httpUsecase.RejectKind
}

func NewRejectObjectHandler(usecase httpUsecase.RejectAssignmentUseCase) *RejectAssignmentHandler {
	return &RejectAssignmentHandler{
		usecase: usecase,
		kind:    httpUsecase.RejectObject,
	}
}

func NewRejectPlaceHandler(usecase httpUsecase.RejectAssignmentUseCase) *RejectAssignmentHandler {
	return &RejectAssignmentHandler{
		usecase: usecase,
		kind:    httpUsecase.RejectPlace,
	}
}

func (h *RejectAssignmentHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *RejectAssignmentRequest) (*RejectAssignmentResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	player, status, err := h.usecase.Execute(ctx, req.RoomCode, playerID, h.kind)
	if err != nil {
		return nil, status, err
	}

	return &RejectAssignmentResponse{Player: *player}, status, nil
}
