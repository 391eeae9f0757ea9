package game

import (
	"errors"
	"math/rand"
	"testing"

	"assassin-server/domain"

	"github.com/google/uuid"
)

func makePlayers(n int) []domain.Player {
	players := make([]domain.Player, n)
	for i := range players {
		players[i] = domain.Player{
			ID:      uuid.New(),
			Name:    string(rune('A' + i)),
			IsAlive: true,
		}
	}
	return players
}

func TestGenerateAssignmentsSingleCycle(t *testing.T) {
	objects := []string{"spoon", "book", "candle"}
	places := []string{"kitchen", "garden"}

	for n := 2; n <= 12; n++ {
		rng := rand.New(rand.NewSource(int64(n)))
		players := makePlayers(n)

		assignments, err := GenerateAssignments(rng, players, objects, places)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(assignments) != n {
			t.Fatalf("n=%d: expected %d assignments, got %d", n, n, len(assignments))
		}

		targetOf := make(map[uuid.UUID]uuid.UUID, n)
		for _, a := range assignments {
			if a.PlayerID == a.TargetID {
				t.Fatalf("n=%d: player %s targets themselves", n, a.PlayerID)
			}
			if _, dup := targetOf[a.PlayerID]; dup {
				t.Fatalf("n=%d: player %s assigned twice", n, a.PlayerID)
			}
			targetOf[a.PlayerID] = a.TargetID
		}

		// Following targets from any player must visit everyone exactly
		// once before returning to the start.
		start := assignments[0].PlayerID
		seen := map[uuid.UUID]bool{start: true}
		current := targetOf[start]
		steps := 1
		for current != start {
			if seen[current] {
				t.Fatalf("n=%d: cycle revisits %s before closing", n, current)
			}
			seen[current] = true
			current = targetOf[current]
			steps++
			if steps > n {
				t.Fatalf("n=%d: cycle does not close", n)
			}
		}
		if steps != n {
			t.Fatalf("n=%d: cycle length %d, want %d", n, steps, n)
		}
	}
}

func TestGenerateAssignmentsPoolWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	players := makePlayers(5)

	assignments, err := GenerateAssignments(rng, players, []string{"rope"}, []string{"attic", "cellar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range assignments {
		if a.Object != "rope" {
			t.Errorf("expected wrapped object %q, got %q", "rope", a.Object)
		}
		if a.Place != "attic" && a.Place != "cellar" {
			t.Errorf("unexpected place %q", a.Place)
		}
	}
}

func TestGenerateAssignmentsTooFewPlayers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := GenerateAssignments(rng, makePlayers(1), []string{"x"}, []string{"y"})
	if !errors.Is(err, domain.ErrInsufficientPlayers) {
		t.Fatalf("expected ErrInsufficientPlayers, got %v", err)
	}
}

func TestGenerateAssignmentsEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := GenerateAssignments(rng, makePlayers(3), nil, []string{"y"})
	if !errors.Is(err, domain.ErrEmptyAssignmentPool) {
		t.Fatalf("expected ErrEmptyAssignmentPool for empty objects, got %v", err)
	}

	_, err = GenerateAssignments(rng, makePlayers(3), []string{"x"}, nil)
	if !errors.Is(err, domain.ErrEmptyAssignmentPool) {
		t.Fatalf("expected ErrEmptyAssignmentPool for empty places, got %v", err)
	}
}

func TestRerollAvoidsCurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []string{"spoon", "book", "candle"}

	for i := 0; i < 50; i++ {
		got, err := Reroll(rng, pool, "spoon")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == "spoon" {
			t.Fatalf("reroll returned the rejected value")
		}
	}
}

func TestRerollSingleOptionKeepsCurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	got, err := Reroll(rng, []string{"spoon"}, "spoon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "spoon" {
		t.Fatalf("expected current value back, got %q", got)
	}
}

func TestRerollEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	_, err := Reroll(rng, nil, "spoon")
	if !errors.Is(err, domain.ErrEmptyAssignmentPool) {
		t.Fatalf("expected ErrEmptyAssignmentPool, got %v", err)
	}
}
