package handler

import (
	"context"

	"assassin-server/domain"
	httpUsecase "assassin-server/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type SendMessageRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
	Content  string `json:"content" validate:"required,min=1,max=500"`
}

type SendMessageResponse struct {
	Message domain.ChatMessage `json:"message"`
}

type SendMessageHandler struct {
	usecase httpUsecase.SendMessageUseCase
}

func NewSendMessageHandler(usecase httpUsecase.SendMessageUseCase) *SendMessageHandler {
	return &SendMessageHandler{
		usecase: usecase,
	}
}

func (h *SendMessageHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *SendMessageRequest) (*SendMessageResponse, int, error) {
	playerID, status, err := playerIDFromHeader(fbrCtx)
	if err != nil {
		return nil, status, err
	}

	msg, status, err := h.usecase.Execute(ctx, req.RoomCode, playerID, req.Content)
	if err != nil {
		return nil, status, err
	}

	return &SendMessageResponse{Message: *msg}, status, nil
}

type GetMessagesRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type GetMessagesResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type GetMessagesHandler struct {
	usecase httpUsecase.GetMessagesUseCase
}

func NewGetMessagesHandler(usecase httpUsecase.GetMessagesUseCase) *GetMessagesHandler {
	return &GetMessagesHandler{
		usecase: usecase,
	}
}

func (h *GetMessagesHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetMessagesRequest) (*GetMessagesResponse, int, error) {
	messages, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}

	return &GetMessagesResponse{Messages: messages}, status, nil
}
