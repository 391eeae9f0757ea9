package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type ConfirmAssignmentUseCase interface {
	Execute(ctx context.Context, roomCode string, playerID uuid.UUID) (*domain.Room, int, error)
}

type confirmAssignmentUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewConfirmAssignmentUseCase(repository PostgresRepository, sink BroadcastSink) ConfirmAssignmentUseCase {
	return &confirmAssignmentUseCase{repository: repository, sink: sink}
}

func (u *confirmAssignmentUseCase) Execute(ctx context.Context, roomCode string, playerID uuid.UUID) (*domain.Room, int, error) {
	room, activated, err := u.repository.ConfirmAssignment(ctx, roomCode, playerID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrNotFound):
			return nil, http.StatusNotFound, err
		case errors.Is(err, domain.ErrInvalidInput):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventPlayerReady, map[string]string{"player_id": playerID.String()})
	if activated {
		u.sink.PublishEvent(ctx, roomCode, domain.EventGameActive, nil)
	}

	return &room, http.StatusOK, nil
}
