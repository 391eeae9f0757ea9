package bootstrap

import (
	"context"

	"assassin-server/config"
	"assassin-server/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type RoomRedisManager interface {
	Close() error
	GetRedisClient() *redis.Client
	PublishEvent(ctx context.Context, roomCode, eventType string, data interface{})
}

func InitRoomRedis(config config.Config) RoomRedisManager {
	return initializer.InitRoomRedis(config)
}
