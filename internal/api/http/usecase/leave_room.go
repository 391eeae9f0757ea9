package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomCode string, playerID uuid.UUID) (int, error)
}

type leaveRoomUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewLeaveRoomUseCase(repository PostgresRepository, sink BroadcastSink) LeaveRoomUseCase {
	return &leaveRoomUseCase{repository: repository, sink: sink}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomCode string, playerID uuid.UUID) (int, error) {
	roomCode = strings.ToUpper(roomCode)

	if err := u.repository.LeaveRoom(ctx, roomCode, playerID, time.Now()); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventPlayerLeft, map[string]string{"player_id": playerID.String()})

	room, err := u.repository.GetRoom(ctx, roomCode)
	if err == nil && room.State == domain.RoomStateFinished {
		u.sink.PublishEvent(ctx, roomCode, domain.EventGameEnded, nil)
	}

	return http.StatusOK, nil
}
