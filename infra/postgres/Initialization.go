package postgres

import (
	"database/sql"
	"fmt"
)

const (
	createRoomsTable = `
		CREATE TABLE IF NOT EXISTS rooms (
			code VARCHAR(10) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			state VARCHAR(20) NOT NULL DEFAULT 'lobby', -- 'lobby', 'assigning', 'active', 'finished'
			created_by UUID NOT NULL,
			min_players INT NOT NULL DEFAULT 5,
			max_players INT NOT NULL DEFAULT 20,
			duration_ms BIGINT NOT NULL,
			allow_object_rejection BOOLEAN NOT NULL DEFAULT TRUE,
			allow_place_rejection BOOLEAN NOT NULL DEFAULT TRUE,
			game_duration_days INT NOT NULL DEFAULT 7,
			suggested_objects TEXT[] NOT NULL DEFAULT '{}',
			suggested_places TEXT[] NOT NULL DEFAULT '{}',
			leaderboard_recorded BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			start_time TIMESTAMP WITH TIME ZONE,
			end_time TIMESTAMP WITH TIME ZONE
		);`

	createPlayersTable = `
		CREATE TABLE IF NOT EXISTS players (
			id UUID PRIMARY KEY,
			room_code VARCHAR(10) REFERENCES rooms(code) ON DELETE CASCADE NOT NULL,
			name VARCHAR(50) NOT NULL,
			is_alive BOOLEAN NOT NULL DEFAULT TRUE,
			is_spectator BOOLEAN NOT NULL DEFAULT FALSE,
			target_id UUID,
			target_name VARCHAR(50),
			assigned_object TEXT,
			assigned_place TEXT,
			suggested_object TEXT,
			suggested_place TEXT,
			object_rejected BOOLEAN NOT NULL DEFAULT FALSE,
			place_rejected BOOLEAN NOT NULL DEFAULT FALSE,
			points INT NOT NULL DEFAULT 0,
			confirmed_ready BOOLEAN NOT NULL DEFAULT FALSE,
			joined_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			eliminated_at TIMESTAMP WITH TIME ZONE,
			UNIQUE(room_code, name)
		);`

	createClaimsTable = `
		CREATE TABLE IF NOT EXISTS elimination_claims (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			room_code VARCHAR(10) REFERENCES rooms(code) ON DELETE CASCADE NOT NULL,
			claimer_id UUID NOT NULL,
			target_id UUID NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending', -- 'pending', 'confirmed', 'disputed', 'verified', 'rejected'
			target_response VARCHAR(10),
			witnesses TEXT[],
			witness_responses JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	// One open claim per target, enforced by the store as well as the
	// submit-time check.
	createOpenClaimIndex = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_claims_open_target
		ON elimination_claims(target_id)
		WHERE status IN ('pending', 'disputed');`

	createChatMessagesTable = `
		CREATE TABLE IF NOT EXISTS chat_messages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			room_code VARCHAR(10) REFERENCES rooms(code) ON DELETE CASCADE NOT NULL,
			player_id VARCHAR(40) NOT NULL,
			player_name VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			is_system_message BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createLeaderboardTable = `
		CREATE TABLE IF NOT EXISTS leaderboard (
			player_name VARCHAR(50) PRIMARY KEY,
			total_points INT NOT NULL DEFAULT 0,
			games_played INT NOT NULL DEFAULT 0,
			games_won INT NOT NULL DEFAULT 0,
			average_position REAL NOT NULL DEFAULT 0
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_rooms_state ON rooms(state);
		CREATE INDEX IF NOT EXISTS idx_players_room_code ON players(room_code);
		CREATE INDEX IF NOT EXISTS idx_claims_room_status ON elimination_claims(room_code, status);
		CREATE INDEX IF NOT EXISTS idx_chat_messages_room_code ON chat_messages(room_code);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_points ON leaderboard(total_points DESC);`
)

func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"rooms", createRoomsTable},
		{"players", createPlayersTable},
		{"elimination_claims", createClaimsTable},
		{"chat_messages", createChatMessagesTable},
		{"leaderboard", createLeaderboardTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
	}

	if _, err := db.Exec(createOpenClaimIndex); err != nil {
		return fmt.Errorf("failed to create open claim index: %w", err)
	}
	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
