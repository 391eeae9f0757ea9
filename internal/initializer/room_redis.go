package initializer

import (
	"fmt"

	"assassin-server/config"
	"assassin-server/infra/redis"

	"go.uber.org/zap"
)

func InitRoomRedis(appConfig config.Config) *redis.RedisManager {
	address := fmt.Sprintf("%s:%s", appConfig.Redis.Host, appConfig.Redis.Port)

	redisManager, err := redis.NewRedisManager(address, appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Fatal("Failed to connect to redis", zap.Error(err))
	}

	return redisManager
}
