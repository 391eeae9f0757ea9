package game

import (
	"assassin-server/domain"

	"github.com/google/uuid"
)

// WitnessSet snapshots the players eligible to adjudicate a disputed
// claim: alive, non-spectator, and neither claimer nor target.
func WitnessSet(players []domain.Player, claimerID, targetID uuid.UUID) []uuid.UUID {
	var witnesses []uuid.UUID
	for _, p := range players {
		if !p.Contender() {
			continue
		}
		if p.ID == claimerID || p.ID == targetID {
			continue
		}
		witnesses = append(witnesses, p.ID)
	}
	return witnesses
}

type Verdict int

const (
	VerdictOpen Verdict = iota
	VerdictVerified
	VerdictRejected
)

// Tally resolves a disputed claim from its recorded witness votes. Any
// confirm vote verifies the claim outright; a full set of deny votes
// rejects it; anything less leaves it open.
func Tally(witnesses []uuid.UUID, responses map[uuid.UUID]domain.ClaimResponse) Verdict {
	denies := 0
	for _, w := range witnesses {
		switch responses[w] {
		case domain.ResponseConfirm:
			return VerdictVerified
		case domain.ResponseDeny:
			denies++
		}
	}
	if denies == len(witnesses) && len(witnesses) > 0 {
		return VerdictRejected
	}
	return VerdictOpen
}

// SplitPrize divides the prize pool across n survivors. Shares are
// ordered by join time; the integer remainder goes one point at a time
// to the earliest joiners so no points are lost.
func SplitPrize(total, n int) []int {
	if n <= 0 {
		return nil
	}
	shares := make([]int, n)
	base := total / n
	remainder := total % n
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}
