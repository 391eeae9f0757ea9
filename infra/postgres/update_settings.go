package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// UpdateSettings applies a creator-only settings patch while the room
// is still in the lobby, and returns the updated room.
func (r *Repository) UpdateSettings(ctx context.Context, roomCode string, callerID uuid.UUID, patch domain.SettingsPatch) (domain.Room, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Room{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1 FOR UPDATE`, roomCode)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return domain.Room{}, fmt.Errorf("failed to query room: %w", err)
	}

	if room.CreatedBy != callerID {
		return domain.Room{}, fmt.Errorf("%w: only the room creator can change settings", domain.ErrNotAuthorized)
	}
	if room.State != domain.RoomStateLobby {
		return domain.Room{}, fmt.Errorf("%w: room %s is %s", domain.ErrGameAlreadyStarted, roomCode, room.State)
	}

	settings, duration := patch.Apply(room.Settings)

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms
		 SET allow_object_rejection = $2,
		     allow_place_rejection = $3,
		     game_duration_days = $4,
		     duration_ms = $5
		 WHERE code = $1 AND state = 'lobby'`,
		roomCode, settings.AllowObjectRejection, settings.AllowPlaceRejection,
		settings.GameDurationDays, duration.Milliseconds(),
	)
	if err != nil {
		return domain.Room{}, fmt.Errorf("failed to update settings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return domain.Room{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	room.Settings = settings
	room.Duration = duration
	return room, nil
}
