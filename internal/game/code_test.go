package game

import (
	"strings"
	"testing"
)

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateRoomCode()
		if len(code) != RoomCodeLength {
			t.Fatalf("expected length %d, got %q", RoomCodeLength, code)
		}
		for _, c := range code {
			if !strings.ContainsRune(RoomCodeChars, c) {
				t.Fatalf("code %q contains invalid character %q", code, c)
			}
		}
		seen[code] = true
	}
	// 100 draws from a 36^6 space should not all collide.
	if len(seen) < 2 {
		t.Fatalf("expected varied codes, got %d distinct", len(seen))
	}
}
