package hub

import (
	"context"

	"assassin-server/infra/redis"

	"go.uber.org/zap"
)

// startSubscriber begins relaying the room's Redis channel to connected
// clients. Payloads are forwarded verbatim; publishers already emit JSON.
func (h *Hub) startSubscriber(roomCode string) {
	h.subMutex.Lock()
	defer h.subMutex.Unlock()

	if _, ok := h.subscribers[roomCode]; ok {
		return
	}

	channel := redis.ChannelFor(roomCode)
	pubsub := h.redisClient.Subscribe(context.Background(), channel)
	h.subscribers[roomCode] = pubsub

	go func() {
		defer pubsub.Close()
		zap.L().Info("Subscribed to room channel", zap.String("channel", channel))

		for msg := range pubsub.Channel() {
			h.BroadcastMessage(roomCode, []byte(msg.Payload))
		}

		zap.L().Info("Unsubscribed from room channel", zap.String("channel", channel))
	}()
}

func (h *Hub) stopSubscriber(roomCode string) {
	h.subMutex.Lock()
	defer h.subMutex.Unlock()

	if pubsub, ok := h.subscribers[roomCode]; ok {
		pubsub.Unsubscribe(context.Background(), redis.ChannelFor(roomCode))
		pubsub.Close()
		delete(h.subscribers, roomCode)
	}
}
