package httpUsecase

import (
	"context"
	"time"

	"assassin-server/domain"
	"assassin-server/internal/game"

	"github.com/google/uuid"
)

type PostgresRepository interface {
	CreateRoom(ctx context.Context, room domain.Room, creator domain.Player) error
	GetRoom(ctx context.Context, roomCode string) (domain.Room, error)
	GetPlayers(ctx context.Context, roomCode string) ([]domain.Player, error)
	GetPlayer(ctx context.Context, roomCode string, playerID uuid.UUID) (domain.Player, error)
	JoinRoom(ctx context.Context, roomCode string, player domain.Player) error
	UpdateSettings(ctx context.Context, roomCode string, callerID uuid.UUID, patch domain.SettingsPatch) (domain.Room, error)
	ApplyAssignments(ctx context.Context, roomCode string, assignments []game.Assignment) error
	ConfirmAssignment(ctx context.Context, roomCode string, playerID uuid.UUID, now time.Time) (domain.Room, bool, error)
	RerollObject(ctx context.Context, roomCode string, playerID uuid.UUID, newObject string) error
	RerollPlace(ctx context.Context, roomCode string, playerID uuid.UUID, newPlace string) error
	SubmitClaim(ctx context.Context, roomCode string, claimerID, targetID uuid.UUID) (domain.EliminationClaim, error)
	RespondToClaim(ctx context.Context, claimID, targetID uuid.UUID, response domain.ClaimResponse, now time.Time) (domain.EliminationClaim, error)
	SubmitWitnessVote(ctx context.Context, claimID, witnessID uuid.UUID, response domain.ClaimResponse, now time.Time) (domain.EliminationClaim, error)
	GetOpenClaims(ctx context.Context, roomCode string) ([]domain.EliminationClaim, error)
	GetClaim(ctx context.Context, claimID uuid.UUID) (domain.EliminationClaim, error)
	LeaveRoom(ctx context.Context, roomCode string, playerID uuid.UUID, now time.Time) error
	CheckExpiry(ctx context.Context, roomCode string, now time.Time) (domain.Room, error)
	ListExpiredRooms(ctx context.Context, now time.Time) ([]string, error)
	InsertChatMessage(ctx context.Context, msg domain.ChatMessage) error
	GetChatMessages(ctx context.Context, roomCode string) ([]domain.ChatMessage, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type BroadcastSink interface {
	PublishEvent(ctx context.Context, roomCode, eventType string, data interface{})
}
