package postgres

import (
	"context"
	"fmt"

	"assassin-server/domain"
)

func (r *Repository) InsertChatMessage(ctx context.Context, msg domain.ChatMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_messages (room_code, player_id, player_name, message, is_system_message)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.RoomCode, msg.PlayerID, msg.PlayerName, msg.Message, msg.IsSystemMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (r *Repository) GetChatMessages(ctx context.Context, roomCode string) ([]domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, room_code, player_id, player_name, message, is_system_message, created_at
		 FROM chat_messages WHERE room_code = $1 ORDER BY created_at`,
		roomCode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		err := rows.Scan(&msg.ID, &msg.RoomCode, &msg.PlayerID, &msg.PlayerName,
			&msg.Message, &msg.IsSystemMessage, &msg.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return messages, nil
}
