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

// ConfirmAssignment sets the player's ready flag (idempotently) and
// flips the room to active once every player has confirmed. It returns
// the room and whether this call activated the game.
func (r *Repository) ConfirmAssignment(ctx context.Context, roomCode string, playerID uuid.UUID, now time.Time) (domain.Room, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Room{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1 FOR UPDATE`, roomCode)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, false, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return domain.Room{}, false, fmt.Errorf("failed to query room: %w", err)
	}
	if room.State != domain.RoomStateAssigning {
		return domain.Room{}, false, fmt.Errorf("%w: room %s is %s, not assigning", domain.ErrInvalidInput, roomCode, room.State)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE players SET confirmed_ready = TRUE WHERE id = $1 AND room_code = $2`,
		playerID, roomCode,
	)
	if err != nil {
		return domain.Room{}, false, fmt.Errorf("failed to confirm assignment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Room{}, false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Room{}, false, fmt.Errorf("%w: player %s not in room %s", domain.ErrNotFound, playerID, roomCode)
	}

	var unready int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE room_code = $1 AND NOT confirmed_ready`,
		roomCode,
	).Scan(&unready)
	if err != nil {
		return domain.Room{}, false, fmt.Errorf("failed to count unready players: %w", err)
	}

	activated := false
	if unready == 0 {
		res, err := tx.ExecContext(ctx,
			`UPDATE rooms SET state = 'active', start_time = $2 WHERE code = $1 AND state = 'assigning'`,
			roomCode, now,
		)
		if err != nil {
			return domain.Room{}, false, fmt.Errorf("failed to activate room: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return domain.Room{}, false, fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 1 {
			activated = true
			room.State = domain.RoomStateActive
			start := now
			room.StartTime = &start
			if err := insertSystemMessageTx(ctx, tx, roomCode, "All players confirmed! Game is now active!"); err != nil {
				return domain.Room{}, false, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Room{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return room, activated, nil
}
