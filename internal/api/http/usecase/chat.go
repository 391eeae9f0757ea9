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

type SendMessageUseCase interface {
	Execute(ctx context.Context, roomCode string, senderID uuid.UUID, content string) (*domain.ChatMessage, int, error)
}

type sendMessageUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewSendMessageUseCase(repository PostgresRepository, sink BroadcastSink) SendMessageUseCase {
	return &sendMessageUseCase{repository: repository, sink: sink}
}

func (u *sendMessageUseCase) Execute(ctx context.Context, roomCode string, senderID uuid.UUID, content string) (*domain.ChatMessage, int, error) {
	roomCode = strings.ToUpper(roomCode)

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, http.StatusBadRequest, domain.ErrInvalidInput
	}

	player, err := u.repository.GetPlayer(ctx, roomCode, senderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrNotFound):
			return nil, http.StatusNotFound, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	msg := domain.ChatMessage{
		RoomCode:   roomCode,
		PlayerID:   senderID.String(),
		PlayerName: player.Name,
		Message:    content,
		CreatedAt:  time.Now(),
	}
	if err := u.repository.InsertChatMessage(ctx, msg); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventChatMessage, msg)

	return &msg, http.StatusCreated, nil
}

type GetMessagesUseCase interface {
	Execute(ctx context.Context, roomCode string) ([]domain.ChatMessage, int, error)
}

type getMessagesUseCase struct {
	repository PostgresRepository
}

func NewGetMessagesUseCase(repository PostgresRepository) GetMessagesUseCase {
	return &getMessagesUseCase{repository: repository}
}

func (u *getMessagesUseCase) Execute(ctx context.Context, roomCode string) ([]domain.ChatMessage, int, error) {
	roomCode = strings.ToUpper(roomCode)

	if _, err := u.repository.GetRoom(ctx, roomCode); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	messages, err := u.repository.GetChatMessages(ctx, roomCode)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return messages, http.StatusOK, nil
}
