package domain

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID              uuid.UUID  `json:"id"`
	RoomCode        string     `json:"room_code"`
	Name            string     `json:"name"`
	IsAlive         bool       `json:"is_alive"`
	IsSpectator     bool       `json:"is_spectator"`
	TargetID        *uuid.UUID `json:"target_id,omitempty"`
	TargetName      string     `json:"target_name,omitempty"`
	AssignedObject  string     `json:"assigned_object,omitempty"`
	AssignedPlace   string     `json:"assigned_place,omitempty"`
	SuggestedObject string     `json:"suggested_object,omitempty"`
	SuggestedPlace  string     `json:"suggested_place,omitempty"`
	ObjectRejected  bool       `json:"object_rejected"`
	PlaceRejected   bool       `json:"place_rejected"`
	Points          int        `json:"points"`
	ConfirmedReady  bool       `json:"confirmed_ready"`
	JoinedAt        time.Time  `json:"joined_at"`
	EliminatedAt    *time.Time `json:"eliminated_at,omitempty"`
}

// Contender reports whether the player counts toward alive-count and
// win-condition checks.
func (p Player) Contender() bool {
	return p.IsAlive && !p.IsSpectator
}
