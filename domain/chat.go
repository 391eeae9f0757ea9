package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemSender is the reserved player id of system messages.
const SystemSender = "system"

type ChatMessage struct {
	ID              uuid.UUID `json:"id"`
	RoomCode        string    `json:"room_code"`
	PlayerID        string    `json:"player_id"`
	PlayerName      string    `json:"player_name"`
	Message         string    `json:"message"`
	IsSystemMessage bool      `json:"is_system_message"`
	CreatedAt       time.Time `json:"created_at"`
}
