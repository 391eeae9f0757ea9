package postgres

import (
	"context"
	"fmt"

	"assassin-server/domain"

	"github.com/lib/pq"
)

// CreateRoom inserts the room together with its creator and the welcome
// message in one transaction. A room-code collision surfaces as
// ErrConflict so the caller can re-roll the code.
func (r *Repository) CreateRoom(ctx context.Context, room domain.Room, creator domain.Player) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO rooms (code, name, state, created_by, min_players, max_players, duration_ms,
			allow_object_rejection, allow_place_rejection, game_duration_days,
			suggested_objects, suggested_places)
		 VALUES ($1, $2, 'lobby', $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		room.Code, room.Name, room.CreatedBy, room.MinPlayers, room.MaxPlayers,
		room.Duration.Milliseconds(),
		room.Settings.AllowObjectRejection, room.Settings.AllowPlaceRejection,
		room.Settings.GameDurationDays,
		pq.Array(room.SuggestedObjects), pq.Array(room.SuggestedPlaces),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: room code %s already taken", domain.ErrConflict, room.Code)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO players (id, room_code, name, suggested_object, suggested_place)
		 VALUES ($1, $2, $3, $4, $5)`,
		creator.ID, room.Code, creator.Name, creator.SuggestedObject, creator.SuggestedPlace,
	)
	if err != nil {
		return fmt.Errorf("failed to add creator to room: %w", err)
	}

	if err := insertSystemMessageTx(ctx, tx, room.Code, fmt.Sprintf("%s created the room", creator.Name)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
