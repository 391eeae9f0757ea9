package postgres

import (
	"context"
	"fmt"

	"assassin-server/domain"
	"assassin-server/internal/game"
)

// ApplyAssignments persists the generated assignments and the
// lobby->assigning transition atomically. The state guard makes
// concurrent start attempts lose cleanly with ErrStaleState.
func (r *Repository) ApplyAssignments(ctx context.Context, roomCode string, assignments []game.Assignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rooms SET state = 'assigning' WHERE code = $1 AND state = 'lobby'`,
		roomCode,
	)
	if err != nil {
		return fmt.Errorf("failed to transition room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: room %s is no longer in lobby", domain.ErrStaleState, roomCode)
	}

	// The roster was snapshotted before this transaction; a join that
	// committed in between would leave a player without an assignment.
	// The room row is locked now, so this count is final.
	var roster int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE room_code = $1`, roomCode,
	).Scan(&roster)
	if err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if roster != len(assignments) {
		return fmt.Errorf("%w: roster of room %s changed to %d players during assignment", domain.ErrStaleState, roomCode, roster)
	}

	for _, a := range assignments {
		res, err := tx.ExecContext(ctx,
			`UPDATE players
			 SET target_id = $2, target_name = $3, assigned_object = $4, assigned_place = $5
			 WHERE id = $1 AND room_code = $6`,
			a.PlayerID, a.TargetID, a.TargetName, a.Object, a.Place, roomCode,
		)
		if err != nil {
			return fmt.Errorf("failed to write assignment: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			// A player left between generation and persist; the whole
			// batch rolls back and the caller retries.
			return fmt.Errorf("%w: player %s left during assignment", domain.ErrStaleState, a.PlayerID)
		}
	}

	if err := insertSystemMessageTx(ctx, tx, roomCode, "Game starting! Check your assignments."); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
