package handler

import (
	"context"

	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveRoomRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type LeaveRoomResponse struct {
	Message string `json:"message"`
}

type LeaveRoomHandler struct {
	usecase httpUsecase.LeaveRoomUseCase
}

func NewLeaveRoomHandler(usecase httpUsecase.LeaveRoomUseCase) *LeaveRoomHandler {
	return &LeaveRoomHandler{
		usecase: usecase,
	}
}

func (h *LeaveRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *LeaveRoomRequest) (*LeaveRoomResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	status, err = h.usecase.Execute(ctx, req.RoomCode, playerID)
	if err != nil {
		return nil, status, err
	}

	return &LeaveRoomResponse{Message: "left room"}, status, nil
}
