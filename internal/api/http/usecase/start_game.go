package httpUsecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"sync"

	"assassin-server/domain"
	"assassin-server/internal/game"

	"github.com/google/uuid"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, roomCode string, callerID uuid.UUID) (*domain.Room, int, error)
}

type startGameUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
	rng        *rand.Rand
	rngMu      sync.Mutex
}

func NewStartGameUseCase(repository PostgresRepository, sink BroadcastSink, rng *rand.Rand) StartGameUseCase {
	return &startGameUseCase{repository: repository, sink: sink, rng: rng}
}

func (u *startGameUseCase) Execute(ctx context.Context, roomCode string, callerID uuid.UUID) (*domain.Room, int, error) {
	room, err := u.repository.GetRoom(ctx, roomCode)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	if room.CreatedBy != callerID {
		return nil, http.StatusForbidden, fmt.Errorf("%w: only the room creator can start the game", domain.ErrNotAuthorized)
	}
	if room.State != domain.RoomStateLobby {
		return nil, http.StatusConflict, fmt.Errorf("%w: room %s is %s", domain.ErrGameAlreadyStarted, roomCode, room.State)
	}

	players, err := u.repository.GetPlayers(ctx, roomCode)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if len(players) < room.MinPlayers {
		return nil, http.StatusConflict, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientPlayers, len(players), room.MinPlayers)
	}
	if len(players) > room.MaxPlayers {
		return nil, http.StatusConflict, fmt.Errorf("%w: have %d, max %d", domain.ErrTooManyPlayers, len(players), room.MaxPlayers)
	}

	u.rngMu.Lock()
	assignments, err := game.GenerateAssignments(u.rng, players, room.SuggestedObjects, room.SuggestedPlaces)
	u.rngMu.Unlock()
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientPlayers):
			return nil, http.StatusConflict, err
		case errors.Is(err, domain.ErrEmptyAssignmentPool):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	if err := u.repository.ApplyAssignments(ctx, roomCode, assignments); err != nil {
		if errors.Is(err, domain.ErrStaleState) {
			return nil, http.StatusConflict, err
		}
		return nil, http.StatusInternalServerError, err
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventGameStarted, nil)

	room.State = domain.RoomStateAssigning
	return &room, http.StatusOK, nil
}
