package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assassin-server/domain"
)

func (r *Repository) JoinRoom(ctx context.Context, roomCode string, player domain.Player) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the room row so concurrent joins serialize on the capacity
	// check.
	var state string
	var maxPlayers int
	err = tx.QueryRowContext(ctx,
		`SELECT state, max_players FROM rooms WHERE code = $1 FOR UPDATE`,
		roomCode,
	).Scan(&state, &maxPlayers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}

	if state != string(domain.RoomStateLobby) {
		return fmt.Errorf("%w: room %s is %s", domain.ErrGameAlreadyStarted, roomCode, state)
	}

	var currentPlayers int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE room_code = $1`, roomCode,
	).Scan(&currentPlayers)
	if err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if currentPlayers >= maxPlayers {
		return fmt.Errorf("%w: room %s has %d players", domain.ErrRoomFull, roomCode, currentPlayers)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO players (id, room_code, name, suggested_object, suggested_place)
		 VALUES ($1, $2, $3, $4, $5)`,
		player.ID, roomCode, player.Name, player.SuggestedObject, player.SuggestedPlace,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: name %q already taken in room %s", domain.ErrConflict, player.Name, roomCode)
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}

	// Suggestion pools only grow while the room is in the lobby.
	_, err = tx.ExecContext(ctx,
		`UPDATE rooms
		 SET suggested_objects = array_append(suggested_objects, $2),
		     suggested_places = array_append(suggested_places, $3)
		 WHERE code = $1`,
		roomCode, player.SuggestedObject, player.SuggestedPlace,
	)
	if err != nil {
		return fmt.Errorf("failed to append suggestions: %w", err)
	}

	if err := insertSystemMessageTx(ctx, tx, roomCode, fmt.Sprintf("%s joined the room", player.Name)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
