package postgres

import (
	"context"
	"fmt"

	"assassin-server/domain"
)

func (r *Repository) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT player_name, total_points, games_played, games_won, average_position
		 FROM leaderboard ORDER BY total_points DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		err := rows.Scan(&entry.PlayerName, &entry.TotalPoints, &entry.GamesPlayed,
			&entry.GamesWon, &entry.AveragePosition)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}
