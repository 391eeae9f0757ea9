package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"assassin-server/domain"
	"assassin-server/internal/game"

	"github.com/google/uuid"
)

const roomCodeAttempts = 5

type CreateRoomResult struct {
	Room   domain.Room   `json:"room"`
	Player domain.Player `json:"player"`
}

type CreateRoomUseCase interface {
	Execute(ctx context.Context, roomName, playerName, seedObject, seedPlace string) (*CreateRoomResult, int, error)
}

type createRoomUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
	minPlayers int
	maxPlayers int
}

func NewCreateRoomUseCase(repository PostgresRepository, sink BroadcastSink, minPlayers, maxPlayers int) CreateRoomUseCase {
	return &createRoomUseCase{
		repository: repository,
		sink:       sink,
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
	}
}

func (u *createRoomUseCase) Execute(ctx context.Context, roomName, playerName, seedObject, seedPlace string) (*CreateRoomResult, int, error) {
	creator := domain.Player{
		ID:              uuid.New(),
		Name:            playerName,
		IsAlive:         true,
		SuggestedObject: seedObject,
		SuggestedPlace:  seedPlace,
	}

	settings := domain.GameSettings{
		AllowObjectRejection: true,
		AllowPlaceRejection:  true,
		GameDurationDays:     7,
	}

	room := domain.Room{
		Name:             roomName,
		State:            domain.RoomStateLobby,
		CreatedBy:        creator.ID,
		MinPlayers:       u.minPlayers,
		MaxPlayers:       u.maxPlayers,
		Duration:         time.Duration(settings.GameDurationDays) * 24 * time.Hour,
		Settings:         settings,
		SuggestedObjects: []string{seedObject},
		SuggestedPlaces:  []string{seedPlace},
	}

	// Re-roll the code on the rare collision.
	var err error
	for attempt := 0; attempt < roomCodeAttempts; attempt++ {
		room.Code = game.GenerateRoomCode()
		err = u.repository.CreateRoom(ctx, room, creator)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, http.StatusInternalServerError, err
		}
	}
	if err != nil {
		return nil, http.StatusConflict, err
	}

	creator.RoomCode = room.Code
	u.sink.PublishEvent(ctx, room.Code, domain.EventRoomCreated, map[string]string{"name": room.Name})

	return &CreateRoomResult{Room: room, Player: creator}, http.StatusCreated, nil
}
