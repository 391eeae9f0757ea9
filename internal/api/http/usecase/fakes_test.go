package httpUsecase

import (
	"context"
	"time"

	"assassin-server/domain"
	"assassin-server/internal/game"

	"github.com/google/uuid"
)

// fakeRepository returns canned values and records calls; individual
// tests override the fields they care about.
type fakeRepository struct {
	room    domain.Room
	roomErr error
	players []domain.Player
	player  domain.Player
	claim   domain.EliminationClaim

	createRoomErr  error
	createdRooms   []domain.Room
	joinErr        error
	applyErr       error
	applied        []game.Assignment
	confirmRoom    domain.Room
	confirmAct     bool
	confirmErr     error
	rerollErr      error
	submitErr      error
	respondErr     error
	voteErr        error
	leaveErr       error
	expiryRoom     domain.Room
	expiryErr      error
	claims         []domain.EliminationClaim
	messages       []domain.ChatMessage
	insertedMsgs   []domain.ChatMessage
	leaderboard    []domain.LeaderboardEntry
	leaderboardCap int
}

func (f *fakeRepository) CreateRoom(ctx context.Context, room domain.Room, creator domain.Player) error {
	f.createdRooms = append(f.createdRooms, room)
	return f.createRoomErr
}

func (f *fakeRepository) GetRoom(ctx context.Context, roomCode string) (domain.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeRepository) GetPlayers(ctx context.Context, roomCode string) ([]domain.Player, error) {
	return f.players, nil
}

func (f *fakeRepository) GetPlayer(ctx context.Context, roomCode string, playerID uuid.UUID) (domain.Player, error) {
	if f.player.ID == uuid.Nil {
		return domain.Player{}, domain.ErrNotFound
	}
	return f.player, nil
}

func (f *fakeRepository) JoinRoom(ctx context.Context, roomCode string, player domain.Player) error {
	return f.joinErr
}

func (f *fakeRepository) UpdateSettings(ctx context.Context, roomCode string, callerID uuid.UUID, patch domain.SettingsPatch) (domain.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeRepository) ApplyAssignments(ctx context.Context, roomCode string, assignments []game.Assignment) error {
	f.applied = assignments
	return f.applyErr
}

func (f *fakeRepository) ConfirmAssignment(ctx context.Context, roomCode string, playerID uuid.UUID, now time.Time) (domain.Room, bool, error) {
	return f.confirmRoom, f.confirmAct, f.confirmErr
}

func (f *fakeRepository) RerollObject(ctx context.Context, roomCode string, playerID uuid.UUID, newObject string) error {
	return f.rerollErr
}

func (f *fakeRepository) RerollPlace(ctx context.Context, roomCode string, playerID uuid.UUID, newPlace string) error {
	return f.rerollErr
}

func (f *fakeRepository) SubmitClaim(ctx context.Context, roomCode string, claimerID, targetID uuid.UUID) (domain.EliminationClaim, error) {
	return f.claim, f.submitErr
}

func (f *fakeRepository) RespondToClaim(ctx context.Context, claimID, targetID uuid.UUID, response domain.ClaimResponse, now time.Time) (domain.EliminationClaim, error) {
	return f.claim, f.respondErr
}

func (f *fakeRepository) SubmitWitnessVote(ctx context.Context, claimID, witnessID uuid.UUID, response domain.ClaimResponse, now time.Time) (domain.EliminationClaim, error) {
	return f.claim, f.voteErr
}

func (f *fakeRepository) GetOpenClaims(ctx context.Context, roomCode string) ([]domain.EliminationClaim, error) {
	return f.claims, nil
}

func (f *fakeRepository) GetClaim(ctx context.Context, claimID uuid.UUID) (domain.EliminationClaim, error) {
	return f.claim, nil
}

func (f *fakeRepository) LeaveRoom(ctx context.Context, roomCode string, playerID uuid.UUID, now time.Time) error {
	return f.leaveErr
}

func (f *fakeRepository) CheckExpiry(ctx context.Context, roomCode string, now time.Time) (domain.Room, error) {
	return f.expiryRoom, f.expiryErr
}

func (f *fakeRepository) ListExpiredRooms(ctx context.Context, now time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeRepository) InsertChatMessage(ctx context.Context, msg domain.ChatMessage) error {
	f.insertedMsgs = append(f.insertedMsgs, msg)
	return nil
}

func (f *fakeRepository) GetChatMessages(ctx context.Context, roomCode string) ([]domain.ChatMessage, error) {
	return f.messages, nil
}

func (f *fakeRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	f.leaderboardCap = limit
	return f.leaderboard, nil
}

func uuidOf(b byte) uuid.UUID {
	var id uuid.UUID
	id[0] = b
	return id
}

type recordedEvent struct {
	RoomCode string
	Type     string
}

type recordSink struct {
	events []recordedEvent
}

func (r *recordSink) PublishEvent(ctx context.Context, roomCode, eventType string, data interface{}) {
	r.events = append(r.events, recordedEvent{RoomCode: roomCode, Type: eventType})
}

func (r *recordSink) has(eventType string) bool {
	for _, e := range r.events {
		if e.Type == eventType {
			return true
		}
	}
	return false
}
