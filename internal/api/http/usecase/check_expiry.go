package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"assassin-server/domain"
)

// CheckExpiryUseCase re-evaluates a room's win condition against the clock.
// Expired games finish and pay out even if no one submits another claim.
type CheckExpiryUseCase interface {
	Execute(ctx context.Context, roomCode string) (*domain.Room, int, error)
}

type checkExpiryUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewCheckExpiryUseCase(repository PostgresRepository, sink BroadcastSink) CheckExpiryUseCase {
	return &checkExpiryUseCase{repository: repository, sink: sink}
}

func (u *checkExpiryUseCase) Execute(ctx context.Context, roomCode string) (*domain.Room, int, error) {
	roomCode = strings.ToUpper(roomCode)

	room, err := u.repository.CheckExpiry(ctx, roomCode, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	if room.State == domain.RoomStateFinished {
		u.sink.PublishEvent(ctx, roomCode, domain.EventGameEnded, nil)
	}

	return &room, http.StatusOK, nil
}
