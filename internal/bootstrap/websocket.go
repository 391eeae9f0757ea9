package bootstrap

import (
	"context"

	"assassin-server/domain"
	"assassin-server/internal/initializer"
)

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
	RoomClientCount(roomCode string) int
}

func InitWebsocket(ctx context.Context, redisRepo RoomRedisManager) Hub {
	client := redisRepo.GetRedisClient()
	return initializer.InitWebsocket(ctx, client)
}
