// Package redis is the broadcast sink: every room state change is
// published on the room's pub/sub channel, and connected clients
// re-fetch state when anything arrives.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisManager struct {
	client *redis.Client
}

type RoomEvent struct {
	RoomCode  string      `json:"room_code"`
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewRedisManager(redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisManager{client: rdb}, nil
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

func (rm *RedisManager) GetRedisClient() *redis.Client {
	return rm.client
}

// ChannelFor names the pub/sub channel of a room.
func ChannelFor(roomCode string) string {
	return "room:" + roomCode
}

func (rm *RedisManager) PublishEvent(ctx context.Context, roomCode, eventType string, data interface{}) {
	event := RoomEvent{
		RoomCode:  roomCode,
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Failed to marshal room event", zap.Error(err))
		return
	}

	if err := rm.client.Publish(ctx, ChannelFor(roomCode), payload).Err(); err != nil {
		zap.L().Error("Failed to publish room event",
			zap.String("room_code", roomCode),
			zap.String("type", eventType),
			zap.Error(err))
	}
}
