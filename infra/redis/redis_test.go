package redis

import (
	"encoding/json"
	"testing"
	"time"
)

func TestChannelFor(t *testing.T) {
	if got := ChannelFor("ABC123"); got != "room:ABC123" {
		t.Errorf("expected room:ABC123, got %q", got)
	}
}

func TestRoomEventEnvelope(t *testing.T) {
	event := RoomEvent{
		RoomCode:  "ABC123",
		Type:      "claim_submitted",
		Data:      map[string]string{"claim_id": "x"},
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"room_code", "type", "data", "timestamp"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("envelope missing %q", key)
		}
	}
	if decoded["type"] != "claim_submitted" {
		t.Errorf("expected type claim_submitted, got %v", decoded["type"])
	}
}

func TestRoomEventOmitsNilData(t *testing.T) {
	payload, err := json.Marshal(RoomEvent{RoomCode: "ABC123", Type: "game_ended"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := decoded["data"]; ok {
		t.Error("nil data should be omitted from the envelope")
	}
}
