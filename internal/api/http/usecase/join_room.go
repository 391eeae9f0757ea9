package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, roomCode, playerName, seedObject, seedPlace string) (*domain.Player, int, error)
}

type joinRoomUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewJoinRoomUseCase(repository PostgresRepository, sink BroadcastSink) JoinRoomUseCase {
	return &joinRoomUseCase{repository: repository, sink: sink}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, roomCode, playerName, seedObject, seedPlace string) (*domain.Player, int, error) {
	roomCode = strings.ToUpper(roomCode)

	player := domain.Player{
		ID:              uuid.New(),
		RoomCode:        roomCode,
		Name:            playerName,
		IsAlive:         true,
		SuggestedObject: seedObject,
		SuggestedPlace:  seedPlace,
	}

	err := u.repository.JoinRoom(ctx, roomCode, player)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			return nil, http.StatusNotFound, err
		case errors.Is(err, domain.ErrRoomFull), errors.Is(err, domain.ErrGameAlreadyStarted), errors.Is(err, domain.ErrConflict):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventPlayerJoined, map[string]string{
		"player_id": player.ID.String(),
		"name":      player.Name,
	})

	return &player, http.StatusCreated, nil
}
