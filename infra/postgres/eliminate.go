package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"assassin-server/domain"
	"assassin-server/internal/game"

	"github.com/google/uuid"
)

// eliminateTx flips the target's alive flag exactly once. The is_alive
// guard is what makes two racing confirm paths converge on a single
// elimination.
func eliminateTx(ctx context.Context, tx *sql.Tx, roomCode string, targetID uuid.UUID, now time.Time) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE players SET is_alive = FALSE, eliminated_at = $3
		 WHERE id = $1 AND room_code = $2 AND is_alive`,
		targetID, roomCode, now,
	)
	if err != nil {
		return fmt.Errorf("failed to eliminate player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: player %s already eliminated", domain.ErrStaleState, targetID)
	}
	return nil
}

// evaluateWinTx re-checks the win condition inside the caller's
// transaction. It must run after every elimination and on expiry
// sweeps; anything else leaves a stale alive-count behind.
func evaluateWinTx(ctx context.Context, tx *sql.Tx, roomCode string, now time.Time, prizePool int) error {
	row := tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE code = $1 FOR UPDATE`, roomCode)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return fmt.Errorf("failed to query room: %w", err)
	}
	if room.State != domain.RoomStateActive {
		return nil
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE room_code = $1 ORDER BY joined_at FOR UPDATE`, roomCode)
	if err != nil {
		return fmt.Errorf("failed to query players: %w", err)
	}
	players, err := collectPlayers(rows)
	if err != nil {
		return err
	}

	var contenders []domain.Player
	for _, p := range players {
		if p.Contender() {
			contenders = append(contenders, p)
		}
	}

	switch {
	case len(contenders) == 1:
		// Solo victory: last one standing takes the whole pool.
		winner := contenders[0]
		if err := awardPointsTx(ctx, tx, winner.ID, prizePool); err != nil {
			return err
		}
		winner.Points += prizePool
		msg := fmt.Sprintf("%s is the last assassin standing and wins the game!", winner.Name)
		return finishRoomTx(ctx, tx, roomCode, now, players, []domain.Player{winner}, msg)

	case len(contenders) == 0:
		return finishRoomTx(ctx, tx, roomCode, now, players, nil, "Game over - no assassins survived.")

	case room.Expired(now):
		// Shared victory: split the pool evenly, remainder to the
		// earliest joiners (contenders are already join-ordered).
		shares := game.SplitPrize(prizePool, len(contenders))
		for i := range contenders {
			if err := awardPointsTx(ctx, tx, contenders[i].ID, shares[i]); err != nil {
				return err
			}
			contenders[i].Points += shares[i]
		}
		msg := fmt.Sprintf("Time is up! %d survivors share the victory.", len(contenders))
		return finishRoomTx(ctx, tx, roomCode, now, players, contenders, msg)
	}

	return nil
}

func awardPointsTx(ctx context.Context, tx *sql.Tx, playerID uuid.UUID, points int) error {
	if points == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		`UPDATE players SET points = points + $2 WHERE id = $1`, playerID, points)
	if err != nil {
		return fmt.Errorf("failed to award points: %w", err)
	}
	return nil
}

// finishRoomTx performs the active->finished transition, records the
// leaderboard aggregate once, and posts the end-of-game notice. The
// state guard plus the leaderboard_recorded flag keep the whole step
// idempotent under races.
func finishRoomTx(ctx context.Context, tx *sql.Tx, roomCode string, now time.Time, players, winners []domain.Player, message string) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE rooms SET state = 'finished', end_time = $2, leaderboard_recorded = TRUE
		 WHERE code = $1 AND state = 'active' AND NOT leaderboard_recorded`,
		roomCode, now,
	)
	if err != nil {
		return fmt.Errorf("failed to finish room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: room %s already finished", domain.ErrStaleState, roomCode)
	}

	for _, result := range gameResults(players, winners) {
		if err := recordGameResultTx(ctx, tx, result); err != nil {
			return err
		}
	}

	return insertSystemMessageTx(ctx, tx, roomCode, message)
}

// gameResults ranks every non-spectator: survivors finish first, the
// eliminated rank by how long they lasted.
func gameResults(players, winners []domain.Player) []domain.GameResult {
	won := make(map[uuid.UUID]bool, len(winners))
	winnerPoints := make(map[uuid.UUID]int, len(winners))
	for _, w := range winners {
		won[w.ID] = true
		winnerPoints[w.ID] = w.Points
	}

	var alive, eliminated []domain.Player
	for _, p := range players {
		if p.IsSpectator {
			continue
		}
		if p.IsAlive {
			alive = append(alive, p)
		} else {
			eliminated = append(eliminated, p)
		}
	}
	sort.SliceStable(eliminated, func(i, j int) bool {
		ti, tj := time.Time{}, time.Time{}
		if eliminated[i].EliminatedAt != nil {
			ti = *eliminated[i].EliminatedAt
		}
		if eliminated[j].EliminatedAt != nil {
			tj = *eliminated[j].EliminatedAt
		}
		return ti.After(tj)
	})

	results := make([]domain.GameResult, 0, len(alive)+len(eliminated))
	for _, p := range alive {
		points := p.Points
		if wp, ok := winnerPoints[p.ID]; ok {
			points = wp
		}
		results = append(results, domain.GameResult{
			PlayerName: p.Name, Points: points, Won: won[p.ID], Position: 1,
		})
	}
	for i, p := range eliminated {
		results = append(results, domain.GameResult{
			PlayerName: p.Name, Points: p.Points, Won: false, Position: len(alive) + 1 + i,
		})
	}
	return results
}

func recordGameResultTx(ctx context.Context, tx *sql.Tx, result domain.GameResult) error {
	wonInc := 0
	if result.Won {
		wonInc = 1
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO leaderboard (player_name, total_points, games_played, games_won, average_position)
		 VALUES ($1, $2, 1, $3, $4)
		 ON CONFLICT (player_name) DO UPDATE SET
			total_points = leaderboard.total_points + EXCLUDED.total_points,
			games_won = leaderboard.games_won + EXCLUDED.games_won,
			average_position = (leaderboard.average_position * leaderboard.games_played + $4)
				/ (leaderboard.games_played + 1),
			games_played = leaderboard.games_played + 1`,
		result.PlayerName, result.Points, wonInc, float64(result.Position),
	)
	if err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}
	return nil
}

func collectPlayers(rows *sql.Rows) ([]domain.Player, error) {
	defer rows.Close()
	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return players, nil
}
