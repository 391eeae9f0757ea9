package domain

import (
	"errors"
	"testing"
	"time"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestSettingsPatchValidate(t *testing.T) {
	if err := (SettingsPatch{}).Validate(); err != nil {
		t.Fatalf("empty patch should validate, got %v", err)
	}
	if err := (SettingsPatch{GameDurationDays: intPtr(7)}).Validate(); err != nil {
		t.Fatalf("7 days should validate, got %v", err)
	}
	if err := (SettingsPatch{GameDurationDays: intPtr(0)}).Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("0 days should fail, got %v", err)
	}
	if err := (SettingsPatch{GameDurationDays: intPtr(15)}).Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("15 days should fail, got %v", err)
	}
}

func TestSettingsPatchApply(t *testing.T) {
	base := GameSettings{
		AllowObjectRejection: true,
		AllowPlaceRejection:  true,
		GameDurationDays:     7,
	}

	patch := SettingsPatch{
		AllowObjectRejection: boolPtr(false),
		GameDurationDays:     intPtr(3),
	}

	got, duration := patch.Apply(base)
	if got.AllowObjectRejection {
		t.Error("object rejection should be disabled")
	}
	if !got.AllowPlaceRejection {
		t.Error("place rejection should stay enabled")
	}
	if got.GameDurationDays != 3 {
		t.Errorf("expected 3 days, got %d", got.GameDurationDays)
	}
	if duration != 3*24*time.Hour {
		t.Errorf("expected 72h duration, got %v", duration)
	}
}

func TestRoomExpired(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	room := Room{
		State:     RoomStateActive,
		StartTime: &start,
		Duration:  7 * 24 * time.Hour,
	}

	if room.Expired(start.Add(6 * 24 * time.Hour)) {
		t.Error("room should not be expired before the deadline")
	}
	if !room.Expired(start.Add(7 * 24 * time.Hour)) {
		t.Error("room should be expired exactly at the deadline")
	}

	room.State = RoomStateLobby
	if room.Expired(start.Add(30 * 24 * time.Hour)) {
		t.Error("lobby room never expires")
	}

	room.State = RoomStateActive
	room.StartTime = nil
	if room.Expired(start) {
		t.Error("room without a start time never expires")
	}
}
