package expiry

import (
	"context"
	"time"

	"assassin-server/domain"

	"go.uber.org/zap"
)

type Repository interface {
	ListExpiredRooms(ctx context.Context, now time.Time) ([]string, error)
	CheckExpiry(ctx context.Context, roomCode string, now time.Time) (domain.Room, error)
}

type BroadcastSink interface {
	PublishEvent(ctx context.Context, roomCode, eventType string, data interface{})
}

// Sweeper periodically finishes active rooms whose game duration has
// elapsed, so games end on time even when nobody is making claims.
type Sweeper struct {
	repository Repository
	sink       BroadcastSink
	interval   time.Duration
}

func NewSweeper(repository Repository, sink BroadcastSink, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		repository: repository,
		sink:       sink,
		interval:   interval,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now()

	roomCodes, err := s.repository.ListExpiredRooms(ctx, now)
	if err != nil {
		zap.L().Error("Failed to list expired rooms", zap.Error(err))
		return
	}

	for _, roomCode := range roomCodes {
		room, err := s.repository.CheckExpiry(ctx, roomCode, now)
		if err != nil {
			zap.L().Error("Failed to expire room",
				zap.String("room_code", roomCode),
				zap.Error(err))
			continue
		}
		if room.State == domain.RoomStateFinished {
			zap.L().Info("Room expired", zap.String("room_code", roomCode))
			s.sink.PublishEvent(ctx, roomCode, domain.EventGameEnded, nil)
		}
	}
}
