package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetLeaderboardRequest struct {
	Limit int `query:"limit"`
}

type GetLeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

type GetLeaderboardHandler struct {
	usecase httpUsecase.GetLeaderboardUseCase
}

func NewGetLeaderboardHandler(usecase httpUsecase.GetLeaderboardUseCase) *GetLeaderboardHandler {
	return &GetLeaderboardHandler{
		usecase: usecase,
	}
}

func (h *GetLeaderboardHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetLeaderboardRequest) (*GetLeaderboardResponse, int, error) {
	entries, status, err := h.usecase.Execute(ctx, req.Limit)
	if err != nil {
		return nil, status, err
	}

	return &GetLeaderboardResponse{Entries: entries}, status, nil
}
