package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assassin-server/domain"

	"github.com/google/uuid"
)

func (r *Repository) GetRoom(ctx context.Context, roomCode string) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1`, roomCode)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return domain.Room{}, fmt.Errorf("failed to query room: %w", err)
	}
	return room, nil
}

func (r *Repository) GetPlayers(ctx context.Context, roomCode string) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE room_code = $1 ORDER BY joined_at`, roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return players, nil
}

func (r *Repository) GetPlayer(ctx context.Context, roomCode string, playerID uuid.UUID) (domain.Player, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE room_code = $1 AND id = $2`, roomCode, playerID)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Player{}, fmt.Errorf("%w: player %s not in room %s", domain.ErrNotFound, playerID, roomCode)
		}
		return domain.Player{}, fmt.Errorf("failed to query player: %w", err)
	}
	return player, nil
}
