package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assassin-server/domain"
)

type RoomView struct {
	Room    domain.Room     `json:"room"`
	Players []domain.Player `json:"players"`
}

type GetRoomUseCase interface {
	Execute(ctx context.Context, roomCode string) (*RoomView, int, error)
}

type getRoomUseCase struct {
	repository PostgresRepository
}

func NewGetRoomUseCase(repository PostgresRepository) GetRoomUseCase {
	return &getRoomUseCase{repository: repository}
}

func (u *getRoomUseCase) Execute(ctx context.Context, roomCode string) (*RoomView, int, error) {
	roomCode = strings.ToUpper(roomCode)

	room, err := u.repository.GetRoom(ctx, roomCode)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	players, err := u.repository.GetPlayers(ctx, roomCode)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return &RoomView{Room: room, Players: players}, http.StatusOK, nil
}
