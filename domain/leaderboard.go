package domain

type LeaderboardEntry struct {
	PlayerName      string  `json:"player_name"`
	TotalPoints     int     `json:"total_points"`
	GamesPlayed     int     `json:"games_played"`
	GamesWon        int     `json:"games_won"`
	AveragePosition float64 `json:"average_position"`
}

// GameResult is one player's outcome of a finished game, folded into
// the leaderboard aggregate.
type GameResult struct {
	PlayerName string
	Points     int
	Won        bool
	Position   int
}
