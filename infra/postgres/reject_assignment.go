package postgres

import (
	"context"
	"fmt"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// RerollObject swaps the player's assigned object for a freshly drawn
// one. The rejection flag guards the once-per-game allowance; losing
// the guard means the flag was already spent.
func (r *Repository) RerollObject(ctx context.Context, roomCode string, playerID uuid.UUID, newObject string) error {
	return r.reroll(ctx, roomCode, playerID,
		`UPDATE players SET assigned_object = $3, object_rejected = TRUE
		 WHERE id = $1 AND room_code = $2 AND NOT object_rejected`,
		newObject, "object")
}

// RerollPlace is the place-side twin of RerollObject.
func (r *Repository) RerollPlace(ctx context.Context, roomCode string, playerID uuid.UUID, newPlace string) error {
	return r.reroll(ctx, roomCode, playerID,
		`UPDATE players SET assigned_place = $3, place_rejected = TRUE
		 WHERE id = $1 AND room_code = $2 AND NOT place_rejected`,
		newPlace, "place")
}

func (r *Repository) reroll(ctx context.Context, roomCode string, playerID uuid.UUID, query, newValue, kind string) error {
	res, err := r.db.ExecContext(ctx, query, playerID, roomCode, newValue)
	if err != nil {
		return fmt.Errorf("failed to reroll %s: %w", kind, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s rejection already used", domain.ErrStaleState, kind)
	}
	return nil
}
