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

type RejectKind string

const (
	RejectObject RejectKind = "object"
	RejectPlace  RejectKind = "place"
)

// RejectAssignmentUseCase re-rolls a player's assigned object or place,
// once per player per game, when the room settings allow it.
type RejectAssignmentUseCase interface {
	Execute(ctx context.Context, roomCode string, playerID uuid.UUID, kind RejectKind) (*domain.Player, int, error)
}

type rejectAssignmentUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
	rng        *rand.Rand
	rngMu      sync.Mutex
}

func NewRejectAssignmentUseCase(repository PostgresRepository, sink BroadcastSink, rng *rand.Rand) RejectAssignmentUseCase {
	return &rejectAssignmentUseCase{repository: repository, sink: sink, rng: rng}
}

func (u *rejectAssignmentUseCase) Execute(ctx context.Context, roomCode string, playerID uuid.UUID, kind RejectKind) (*domain.Player, int, error) {
	room, err := u.repository.GetRoom(ctx, roomCode)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}
	if room.State != domain.RoomStateAssigning && room.State != domain.RoomStateActive {
		return nil, http.StatusConflict, fmt.Errorf("%w: room %s is %s", domain.ErrInvalidInput, roomCode, room.State)
	}

	player, err := u.repository.GetPlayer(ctx, roomCode, playerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	var pool []string
	var current string
	switch kind {
	case RejectObject:
		if !room.Settings.AllowObjectRejection {
			return nil, http.StatusForbidden, fmt.Errorf("%w: object rejection disabled in this room", domain.ErrNotAuthorized)
		}
		pool, current = room.SuggestedObjects, player.AssignedObject
	case RejectPlace:
		if !room.Settings.AllowPlaceRejection {
			return nil, http.StatusForbidden, fmt.Errorf("%w: place rejection disabled in this room", domain.ErrNotAuthorized)
		}
		pool, current = room.SuggestedPlaces, player.AssignedPlace
	default:
		return nil, http.StatusBadRequest, fmt.Errorf("%w: unknown rejection kind %q", domain.ErrInvalidInput, kind)
	}

	u.rngMu.Lock()
	replacement, err := game.Reroll(u.rng, pool, current)
	u.rngMu.Unlock()
	if err != nil {
		return nil, http.StatusConflict, err
	}

	if kind == RejectObject {
		err = u.repository.RerollObject(ctx, roomCode, playerID, replacement)
		player.AssignedObject = replacement
		player.ObjectRejected = true
	} else {
		err = u.repository.RerollPlace(ctx, roomCode, playerID, replacement)
		player.AssignedPlace = replacement
		player.PlaceRejected = true
	}
	if err != nil {
		if errors.Is(err, domain.ErrStaleState) {
			return nil, http.StatusConflict, err
		}
		return nil, http.StatusInternalServerError, err
	}

	event := domain.EventObjectRejected
	if kind == RejectPlace {
		event = domain.EventPlaceRejected
	}
	u.sink.PublishEvent(ctx, roomCode, event, map[string]string{"player_id": playerID.String()})

	return &player, http.StatusOK, nil
}
