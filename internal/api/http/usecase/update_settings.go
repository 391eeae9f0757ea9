package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type UpdateSettingsUseCase interface {
	Execute(ctx context.Context, roomCode string, callerID uuid.UUID, patch domain.SettingsPatch) (*domain.Room, int, error)
}

type updateSettingsUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewUpdateSettingsUseCase(repository PostgresRepository, sink BroadcastSink) UpdateSettingsUseCase {
	return &updateSettingsUseCase{repository: repository, sink: sink}
}

func (u *updateSettingsUseCase) Execute(ctx context.Context, roomCode string, callerID uuid.UUID, patch domain.SettingsPatch) (*domain.Room, int, error) {
	if err := patch.Validate(); err != nil {
		return nil, http.StatusBadRequest, err
	}

	room, err := u.repository.UpdateSettings(ctx, roomCode, callerID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			return nil, http.StatusNotFound, err
		case errors.Is(err, domain.ErrNotAuthorized):
			return nil, http.StatusForbidden, err
		case errors.Is(err, domain.ErrGameAlreadyStarted):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventSettingsUpdated, room.Settings)

	return &room, http.StatusOK, nil
}
