package game

import (
	"testing"

	"assassin-server/domain"

	"github.com/google/uuid"
)

func TestWitnessSetExclusions(t *testing.T) {
	claimer := domain.Player{ID: uuid.New(), IsAlive: true}
	target := domain.Player{ID: uuid.New(), IsAlive: true}
	alive := domain.Player{ID: uuid.New(), IsAlive: true}
	dead := domain.Player{ID: uuid.New(), IsAlive: false}
	spectator := domain.Player{ID: uuid.New(), IsAlive: true, IsSpectator: true}

	players := []domain.Player{claimer, target, alive, dead, spectator}
	witnesses := WitnessSet(players, claimer.ID, target.ID)

	if len(witnesses) != 1 {
		t.Fatalf("expected 1 witness, got %d", len(witnesses))
	}
	if witnesses[0] != alive.ID {
		t.Fatalf("expected alive bystander as witness, got %s", witnesses[0])
	}
}

func TestWitnessSetEmptyWhenNoBystanders(t *testing.T) {
	claimer := domain.Player{ID: uuid.New(), IsAlive: true}
	target := domain.Player{ID: uuid.New(), IsAlive: true}

	witnesses := WitnessSet([]domain.Player{claimer, target}, claimer.ID, target.ID)
	if len(witnesses) != 0 {
		t.Fatalf("expected no witnesses, got %d", len(witnesses))
	}
}

func TestTallySingleConfirmVerifies(t *testing.T) {
	w1, w2, w3 := uuid.New(), uuid.New(), uuid.New()
	witnesses := []uuid.UUID{w1, w2, w3}

	responses := map[uuid.UUID]domain.ClaimResponse{
		w1: domain.ResponseDeny,
		w2: domain.ResponseConfirm,
	}
	if got := Tally(witnesses, responses); got != VerdictVerified {
		t.Fatalf("expected VerdictVerified, got %v", got)
	}
}

func TestTallyUnanimousDenyRejects(t *testing.T) {
	w1, w2 := uuid.New(), uuid.New()
	witnesses := []uuid.UUID{w1, w2}

	responses := map[uuid.UUID]domain.ClaimResponse{
		w1: domain.ResponseDeny,
		w2: domain.ResponseDeny,
	}
	if got := Tally(witnesses, responses); got != VerdictRejected {
		t.Fatalf("expected VerdictRejected, got %v", got)
	}
}

func TestTallyPartialDenyStaysOpen(t *testing.T) {
	w1, w2 := uuid.New(), uuid.New()
	witnesses := []uuid.UUID{w1, w2}

	responses := map[uuid.UUID]domain.ClaimResponse{
		w1: domain.ResponseDeny,
	}
	if got := Tally(witnesses, responses); got != VerdictOpen {
		t.Fatalf("expected VerdictOpen, got %v", got)
	}
}

func TestTallyNoWitnessesStaysOpen(t *testing.T) {
	if got := Tally(nil, nil); got != VerdictOpen {
		t.Fatalf("expected VerdictOpen for empty witness set, got %v", got)
	}
}

func TestSplitPrizeConservesTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 1},
		{100, 3},
		{100, 7},
		{5, 8},
		{0, 4},
	}

	for _, tc := range cases {
		shares := SplitPrize(tc.total, tc.n)
		if len(shares) != tc.n {
			t.Fatalf("total=%d n=%d: got %d shares", tc.total, tc.n, len(shares))
		}
		sum := 0
		for i, s := range shares {
			sum += s
			if i > 0 && s > shares[i-1] {
				t.Fatalf("total=%d n=%d: shares not front-loaded: %v", tc.total, tc.n, shares)
			}
		}
		if sum != tc.total {
			t.Fatalf("total=%d n=%d: shares sum to %d: %v", tc.total, tc.n, sum, shares)
		}
	}
}

func TestSplitPrizeRemainderGoesToEarliest(t *testing.T) {
	shares := SplitPrize(100, 3)
	want := []int{34, 33, 33}
	for i := range want {
		if shares[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, shares)
		}
	}
}

func TestSplitPrizeNoSurvivors(t *testing.T) {
	if shares := SplitPrize(100, 0); shares != nil {
		t.Fatalf("expected nil shares, got %v", shares)
	}
}
