package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RoomState string

const (
	RoomStateLobby     RoomState = "lobby"
	RoomStateAssigning RoomState = "assigning"
	RoomStateActive    RoomState = "active"
	RoomStateFinished  RoomState = "finished"
)

const (
	MinGameDurationDays = 1
	MaxGameDurationDays = 14
)

type GameSettings struct {
	AllowObjectRejection bool `json:"allow_object_rejection"`
	AllowPlaceRejection  bool `json:"allow_place_rejection"`
	GameDurationDays     int  `json:"game_duration_days"`
}

// SettingsPatch carries the recognized settings fields; nil means
// "leave unchanged".
type SettingsPatch struct {
	AllowObjectRejection *bool `json:"allow_object_rejection"`
	AllowPlaceRejection  *bool `json:"allow_place_rejection"`
	GameDurationDays     *int  `json:"game_duration_days"`
}

func (p SettingsPatch) Validate() error {
	if p.GameDurationDays != nil {
		if *p.GameDurationDays < MinGameDurationDays || *p.GameDurationDays > MaxGameDurationDays {
			return fmt.Errorf("%w: game duration must be between %d and %d days",
				ErrInvalidInput, MinGameDurationDays, MaxGameDurationDays)
		}
	}
	return nil
}

// Apply folds the patch into existing settings and returns the room
// duration derived from the (possibly updated) day count.
func (p SettingsPatch) Apply(s GameSettings) (GameSettings, time.Duration) {
	if p.AllowObjectRejection != nil {
		s.AllowObjectRejection = *p.AllowObjectRejection
	}
	if p.AllowPlaceRejection != nil {
		s.AllowPlaceRejection = *p.AllowPlaceRejection
	}
	if p.GameDurationDays != nil {
		s.GameDurationDays = *p.GameDurationDays
	}
	return s, time.Duration(s.GameDurationDays) * 24 * time.Hour
}

type Room struct {
	Code             string       `json:"code"`
	Name             string       `json:"name"`
	State            RoomState    `json:"state"`
	CreatedBy        uuid.UUID    `json:"created_by"`
	MinPlayers       int          `json:"min_players"`
	MaxPlayers       int          `json:"max_players"`
	Duration         time.Duration `json:"duration"`
	Settings         GameSettings `json:"settings"`
	SuggestedObjects []string     `json:"suggested_objects"`
	SuggestedPlaces  []string     `json:"suggested_places"`
	CreatedAt        time.Time    `json:"created_at"`
	StartTime        *time.Time   `json:"start_time,omitempty"`
	EndTime          *time.Time   `json:"end_time,omitempty"`
}

// Deadline reports the scheduled end of an active game. The zero time
// is returned while the game has not started.
func (r Room) Deadline() time.Time {
	if r.StartTime == nil {
		return time.Time{}
	}
	return r.StartTime.Add(r.Duration)
}

func (r Room) Expired(now time.Time) bool {
	if r.State != RoomStateActive || r.StartTime == nil {
		return false
	}
	return !now.Before(r.Deadline())
}
