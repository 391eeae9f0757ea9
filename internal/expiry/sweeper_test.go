package expiry

import (
	"context"
	"sync"
	"testing"
	"time"

	"assassin-server/domain"
)

type fakeRepo struct {
	mu      sync.Mutex
	expired []string
	rooms   map[string]domain.Room
	checked []string
}

func (f *fakeRepo) ListExpiredRooms(ctx context.Context, now time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expired, nil
}

func (f *fakeRepo) CheckExpiry(ctx context.Context, roomCode string, now time.Time) (domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checked = append(f.checked, roomCode)
	return f.rooms[roomCode], nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeSink) PublishEvent(ctx context.Context, roomCode, eventType string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, roomCode+":"+eventType)
}

func TestSweepFinishesExpiredRooms(t *testing.T) {
	repo := &fakeRepo{
		expired: []string{"AAA111", "BBB222"},
		rooms: map[string]domain.Room{
			"AAA111": {Code: "AAA111", State: domain.RoomStateFinished},
			"BBB222": {Code: "BBB222", State: domain.RoomStateActive},
		},
	}
	sink := &fakeSink{}
	s := NewSweeper(repo, sink, time.Minute)

	s.sweep(context.Background())

	if len(repo.checked) != 2 {
		t.Fatalf("expected both rooms checked, got %v", repo.checked)
	}
	if len(sink.events) != 1 {
		t.Fatalf("expected one game ended event, got %v", sink.events)
	}
	if sink.events[0] != "AAA111:"+domain.EventGameEnded {
		t.Fatalf("unexpected event %q", sink.events[0])
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	repo := &fakeRepo{}
	s := NewSweeper(repo, &fakeSink{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
