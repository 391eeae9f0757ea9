package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// LeaveRoom removes the player and keeps the game consistent: the
// leaver's hunter inherits the leaver's target so the cycle stays
// closed, a departing creator hands the room to the earliest joiner,
// and an active game re-checks its win condition.
func (r *Repository) LeaveRoom(ctx context.Context, roomCode string, playerID uuid.UUID, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1 FOR UPDATE`, roomCode)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}

	row = tx.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1 AND room_code = $2 FOR UPDATE`,
		playerID, roomCode)
	leaver, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: player %s not in room %s", domain.ErrNotFound, playerID, roomCode)
		}
		return fmt.Errorf("failed to query player: %w", err)
	}

	// Re-link the target cycle before the row disappears: whoever
	// hunted the leaver now hunts the leaver's target, unless that
	// would point them at themselves.
	if leaver.TargetID != nil && *leaver.TargetID != playerID {
		_, err = tx.ExecContext(ctx,
			`UPDATE players SET target_id = $2, target_name = $3
			 WHERE room_code = $1 AND target_id = $4 AND id <> $2`,
			roomCode, *leaver.TargetID, leaver.TargetName, playerID,
		)
		if err != nil {
			return fmt.Errorf("failed to re-link targets: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM players WHERE id = $1 AND room_code = $2`, playerID, roomCode)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: player %s not in room %s", domain.ErrNotFound, playerID, roomCode)
	}

	// A departing creator hands the room to the earliest joiner.
	if room.CreatedBy == playerID {
		var newCreator uuid.UUID
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM players WHERE room_code = $1 ORDER BY joined_at LIMIT 1`,
			roomCode,
		).Scan(&newCreator)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Room is empty; nothing left to hand over.
		case err != nil:
			return fmt.Errorf("failed to find a new creator: %w", err)
		default:
			_, err = tx.ExecContext(ctx,
				`UPDATE rooms SET created_by = $2 WHERE code = $1`, roomCode, newCreator)
			if err != nil {
				return fmt.Errorf("failed to update room creator: %w", err)
			}
		}
	}

	if err := insertSystemMessageTx(ctx, tx, roomCode, fmt.Sprintf("%s left the room", leaver.Name)); err != nil {
		return err
	}

	if room.State == domain.RoomStateActive {
		if err := evaluateWinTx(ctx, tx, roomCode, now, r.prizePool); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
