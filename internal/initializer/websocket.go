package initializer

import (
	"context"

	roomHub "assassin-server/internal/api/ws/hub"

	"github.com/redis/go-redis/v9"
)

func InitWebsocket(ctx context.Context, client *redis.Client) *roomHub.Hub {
	hub := roomHub.NewHub(client)
	hub.Run(ctx)
	return hub
}
