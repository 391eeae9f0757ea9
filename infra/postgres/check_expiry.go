package postgres

import (
	"context"
	"fmt"
	"time"

	"assassin-server/domain"
)

// CheckExpiry runs the duration-expiry branch of the win condition for
// one room. It is idempotent housekeeping: a room that is not active,
// or not yet past its deadline, comes back unchanged.
func (r *Repository) CheckExpiry(ctx context.Context, roomCode string, now time.Time) (domain.Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Room{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := evaluateWinTx(ctx, tx, roomCode, now, r.prizePool); err != nil {
		return domain.Room{}, err
	}

	row := tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1`, roomCode)
	room, err := scanRoom(row)
	if err != nil {
		return domain.Room{}, fmt.Errorf("failed to query room: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return domain.Room{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return room, nil
}

// ListExpiredRooms feeds the periodic sweep: active rooms whose
// deadline has passed.
func (r *Repository) ListExpiredRooms(ctx context.Context, now time.Time) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code FROM rooms
		 WHERE state = 'active' AND start_time + (duration_ms * interval '1 millisecond') <= $1`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired rooms: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan room code: %w", err)
		}
		codes = append(codes, code)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return codes, nil
}
