package httpUsecase

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"testing"

	"assassin-server/domain"

	"github.com/google/uuid"
)

func lobbyRoom(creator uuid.UUID) domain.Room {
	return domain.Room{
		Code:             "ABC123",
		State:            domain.RoomStateLobby,
		CreatedBy:        creator,
		MinPlayers:       3,
		MaxPlayers:       10,
		SuggestedObjects: []string{"spoon", "book", "candle"},
		SuggestedPlaces:  []string{"kitchen", "garden", "attic"},
	}
}

func roster(n int) []domain.Player {
	players := make([]domain.Player, n)
	for i := range players {
		players[i] = domain.Player{ID: uuid.New(), Name: string(rune('a' + i)), IsAlive: true}
	}
	return players
}

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestStartGameAppliesAssignments(t *testing.T) {
	creator := uuidOf(1)
	repo := &fakeRepository{
		room:    lobbyRoom(creator),
		players: roster(4),
	}
	sink := &recordSink{}
	u := NewStartGameUseCase(repo, sink, testRng())

	room, status, err := u.Execute(context.Background(), "ABC123", creator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if room.State != domain.RoomStateAssigning {
		t.Errorf("expected assigning state, got %s", room.State)
	}
	if len(repo.applied) != 4 {
		t.Fatalf("expected 4 assignments applied, got %d", len(repo.applied))
	}
	for _, a := range repo.applied {
		if a.PlayerID == a.TargetID {
			t.Error("no player may target themselves")
		}
	}
	if !sink.has(domain.EventGameStarted) {
		t.Error("expected game started event")
	}
}

func TestStartGameOnlyCreator(t *testing.T) {
	repo := &fakeRepository{
		room:    lobbyRoom(uuidOf(1)),
		players: roster(4),
	}
	u := NewStartGameUseCase(repo, &recordSink{}, testRng())

	_, status, err := u.Execute(context.Background(), "ABC123", uuidOf(2))
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestStartGameTooFewPlayers(t *testing.T) {
	creator := uuidOf(1)
	repo := &fakeRepository{
		room:    lobbyRoom(creator),
		players: roster(2),
	}
	u := NewStartGameUseCase(repo, &recordSink{}, testRng())

	_, status, err := u.Execute(context.Background(), "ABC123", creator)
	if !errors.Is(err, domain.ErrInsufficientPlayers) {
		t.Fatalf("expected ErrInsufficientPlayers, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestStartGameNotInLobby(t *testing.T) {
	creator := uuidOf(1)
	room := lobbyRoom(creator)
	room.State = domain.RoomStateActive
	repo := &fakeRepository{room: room, players: roster(4)}
	u := NewStartGameUseCase(repo, &recordSink{}, testRng())

	_, status, err := u.Execute(context.Background(), "ABC123", creator)
	if !errors.Is(err, domain.ErrGameAlreadyStarted) {
		t.Fatalf("expected ErrGameAlreadyStarted, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestStartGameStaleStateOnRace(t *testing.T) {
	creator := uuidOf(1)
	repo := &fakeRepository{
		room:     lobbyRoom(creator),
		players:  roster(4),
		applyErr: domain.ErrStaleState,
	}
	u := NewStartGameUseCase(repo, &recordSink{}, testRng())

	_, status, err := u.Execute(context.Background(), "ABC123", creator)
	if !errors.Is(err, domain.ErrStaleState) {
		t.Fatalf("expected ErrStaleState, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestConfirmAssignmentActivation(t *testing.T) {
	repo := &fakeRepository{
		confirmRoom: domain.Room{Code: "ABC123", State: domain.RoomStateActive},
		confirmAct:  true,
	}
	sink := &recordSink{}
	u := NewConfirmAssignmentUseCase(repo, sink)

	room, status, err := u.Execute(context.Background(), "ABC123", uuidOf(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if room.State != domain.RoomStateActive {
		t.Errorf("expected active room, got %s", room.State)
	}
	if !sink.has(domain.EventPlayerReady) {
		t.Error("expected player ready event")
	}
	if !sink.has(domain.EventGameActive) {
		t.Error("expected game active event on last confirmation")
	}
}

func TestConfirmAssignmentNotLast(t *testing.T) {
	repo := &fakeRepository{
		confirmRoom: domain.Room{Code: "ABC123", State: domain.RoomStateAssigning},
	}
	sink := &recordSink{}
	u := NewConfirmAssignmentUseCase(repo, sink)

	_, _, err := u.Execute(context.Background(), "ABC123", uuidOf(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.has(domain.EventGameActive) {
		t.Error("game active event should wait for the last confirmation")
	}
}
