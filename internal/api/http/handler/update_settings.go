package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type UpdateSettingsRequest struct {
	RoomCode             string `params:"room_code" validate:"required,len=6"`
	AllowObjectRejection *bool  `json:"allow_object_rejection"`
	AllowPlaceRejection  *bool  `json:"allow_place_rejection"`
	GameDurationDays     *int   `json:"game_duration_days"`
}

type UpdateSettingsResponse struct {
	Room domain.Room `json:"room"`
}

type UpdateSettingsHandler struct {
	usecase httpUsecase.UpdateSettingsUseCase
}

func NewUpdateSettingsHandler(usecase httpUsecase.UpdateSettingsUseCase) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{
		usecase: usecase,
	}
}

func (h *UpdateSettingsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *UpdateSettingsRequest) (*UpdateSettingsResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	patch := domain.SettingsPatch{
		AllowObjectRejection: req.AllowObjectRejection,
		AllowPlaceRejection:  req.AllowPlaceRejection,
		GameDurationDays:     req.GameDurationDays,
	}

	room, status, err := h.usecase.Execute(ctx, req.RoomCode, playerID, patch)
	if err != nil {
		return nil, status, err
	}

	return &UpdateSettingsResponse{Room: *room}, status, nil
}
