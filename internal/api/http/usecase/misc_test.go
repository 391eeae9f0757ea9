package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"assassin-server/domain"
)

func TestRejectAssignmentDisabledBySettings(t *testing.T) {
	repo := &fakeRepository{
		room: domain.Room{
			Code:  "ABC123",
			State: domain.RoomStateActive,
			Settings: domain.GameSettings{
				AllowObjectRejection: false,
				AllowPlaceRejection:  true,
			},
			SuggestedObjects: []string{"spoon", "book"},
			SuggestedPlaces:  []string{"kitchen", "garden"},
		},
		player: domain.Player{ID: uuidOf(1), AssignedObject: "spoon", AssignedPlace: "kitchen"},
	}
	u := NewRejectAssignmentUseCase(repo, &recordSink{}, testRng())

	_, status, err := u.Execute(context.Background(), "ABC123", uuidOf(1), RejectObject)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestRejectAssignmentReplacesObject(t *testing.T) {
	repo := &fakeRepository{
		room: domain.Room{
			Code:  "ABC123",
			State: domain.RoomStateActive,
			Settings: domain.GameSettings{
				AllowObjectRejection: true,
				AllowPlaceRejection:  true,
			},
			SuggestedObjects: []string{"spoon", "book", "candle"},
			SuggestedPlaces:  []string{"kitchen"},
		},
		player: domain.Player{ID: uuidOf(1), AssignedObject: "spoon", AssignedPlace: "kitchen"},
	}
	sink := &recordSink{}
	u := NewRejectAssignmentUseCase(repo, sink, testRng())

	player, status, err := u.Execute(context.Background(), "ABC123", uuidOf(1), RejectObject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if player.AssignedObject == "spoon" {
		t.Error("object should have been replaced")
	}
	if !player.ObjectRejected {
		t.Error("rejection should be marked spent")
	}
	if !sink.has(domain.EventObjectRejected) {
		t.Error("expected object rejected event")
	}
}

func TestRejectAssignmentAlreadySpent(t *testing.T) {
	repo := &fakeRepository{
		room: domain.Room{
			Code:  "ABC123",
			State: domain.RoomStateActive,
			Settings: domain.GameSettings{
				AllowObjectRejection: true,
				AllowPlaceRejection:  true,
			},
			SuggestedObjects: []string{"spoon", "book"},
			SuggestedPlaces:  []string{"kitchen", "garden"},
		},
		player:    domain.Player{ID: uuidOf(1), AssignedObject: "spoon"},
		rerollErr: domain.ErrStaleState,
	}
	u := NewRejectAssignmentUseCase(repo, &recordSink{}, testRng())

	_, status, err := u.Execute(context.Background(), "ABC123", uuidOf(1), RejectObject)
	if !errors.Is(err, domain.ErrStaleState) {
		t.Fatalf("expected ErrStaleState, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestCheckExpiryFinishedPublishesGameEnded(t *testing.T) {
	repo := &fakeRepository{
		expiryRoom: domain.Room{Code: "ABC123", State: domain.RoomStateFinished},
	}
	sink := &recordSink{}
	u := NewCheckExpiryUseCase(repo, sink)

	room, status, err := u.Execute(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if room.State != domain.RoomStateFinished {
		t.Errorf("expected finished room, got %s", room.State)
	}
	if !sink.has(domain.EventGameEnded) {
		t.Error("expected game ended event")
	}
}

func TestCheckExpiryStillActive(t *testing.T) {
	repo := &fakeRepository{
		expiryRoom: domain.Room{Code: "ABC123", State: domain.RoomStateActive},
	}
	sink := &recordSink{}
	u := NewCheckExpiryUseCase(repo, sink)

	_, _, err := u.Execute(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.has(domain.EventGameEnded) {
		t.Error("active room must not publish game ended")
	}
}

func TestSendMessageRequiresMembership(t *testing.T) {
	u := NewSendMessageUseCase(&fakeRepository{}, &recordSink{})

	_, status, err := u.Execute(context.Background(), "ABC123", uuidOf(1), "hello")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestSendMessageUsesPlayerName(t *testing.T) {
	repo := &fakeRepository{
		player: domain.Player{ID: uuidOf(1), Name: "alice"},
	}
	sink := &recordSink{}
	u := NewSendMessageUseCase(repo, sink)

	msg, status, err := u.Execute(context.Background(), "abc123", uuidOf(1), "  hello  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if msg.PlayerName != "alice" {
		t.Errorf("expected sender alice, got %q", msg.PlayerName)
	}
	if msg.Message != "hello" {
		t.Errorf("expected trimmed content, got %q", msg.Message)
	}
	if len(repo.insertedMsgs) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.insertedMsgs))
	}
	if !sink.has(domain.EventChatMessage) {
		t.Error("expected chat message event")
	}
}

func TestSendMessageRejectsEmpty(t *testing.T) {
	repo := &fakeRepository{player: domain.Player{ID: uuidOf(1), Name: "alice"}}
	u := NewSendMessageUseCase(repo, &recordSink{})

	_, status, err := u.Execute(context.Background(), "ABC123", uuidOf(1), "   ")
	if err == nil {
		t.Fatal("expected error for blank message")
	}
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestLeaderboardLimitClamped(t *testing.T) {
	repo := &fakeRepository{}
	u := NewGetLeaderboardUseCase(repo)

	if _, _, err := u.Execute(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.leaderboardCap != defaultLeaderboardLimit {
		t.Errorf("expected default limit %d, got %d", defaultLeaderboardLimit, repo.leaderboardCap)
	}

	if _, _, err := u.Execute(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.leaderboardCap != 10 {
		t.Errorf("expected limit 10, got %d", repo.leaderboardCap)
	}

	if _, _, err := u.Execute(context.Background(), 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.leaderboardCap != defaultLeaderboardLimit {
		t.Errorf("oversized limit should clamp to %d, got %d", defaultLeaderboardLimit, repo.leaderboardCap)
	}
}

func TestLeaveRoomNotFound(t *testing.T) {
	repo := &fakeRepository{leaveErr: domain.ErrNotFound}
	u := NewLeaveRoomUseCase(repo, &recordSink{})

	status, err := u.Execute(context.Background(), "ABC123", uuidOf(1))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestLeaveRoomPublishesEvent(t *testing.T) {
	repo := &fakeRepository{room: domain.Room{Code: "ABC123", State: domain.RoomStateLobby}}
	sink := &recordSink{}
	u := NewLeaveRoomUseCase(repo, sink)

	status, err := u.Execute(context.Background(), "abc123", uuidOf(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !sink.has(domain.EventPlayerLeft) {
		t.Error("expected player left event")
	}
}
