package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestClaimStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ClaimStatus
		want     bool
	}{
		{ClaimPending, ClaimConfirmed, true},
		{ClaimPending, ClaimDisputed, true},
		{ClaimPending, ClaimRejected, true},
		{ClaimPending, ClaimVerified, false},
		{ClaimDisputed, ClaimVerified, true},
		{ClaimDisputed, ClaimRejected, true},
		{ClaimDisputed, ClaimConfirmed, false},
		{ClaimConfirmed, ClaimRejected, false},
		{ClaimVerified, ClaimRejected, false},
		{ClaimRejected, ClaimVerified, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestClaimStatusTerminal(t *testing.T) {
	for _, s := range []ClaimStatus{ClaimConfirmed, ClaimVerified, ClaimRejected} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []ClaimStatus{ClaimPending, ClaimDisputed} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestClaimResponseValid(t *testing.T) {
	if !ResponseConfirm.Valid() || !ResponseDeny.Valid() {
		t.Error("confirm and deny are valid responses")
	}
	if ClaimResponse("maybe").Valid() {
		t.Error("arbitrary strings are not valid responses")
	}
}

func TestClaimWitnessHelpers(t *testing.T) {
	w1, w2, outsider := uuid.New(), uuid.New(), uuid.New()
	claim := EliminationClaim{
		Witnesses: []uuid.UUID{w1, w2},
		WitnessResponses: map[uuid.UUID]ClaimResponse{
			w1: ResponseDeny,
		},
	}

	if !claim.IsWitness(w1) || !claim.IsWitness(w2) {
		t.Error("listed witnesses should be recognized")
	}
	if claim.IsWitness(outsider) {
		t.Error("outsider should not be a witness")
	}
	if !claim.HasVoted(w1) {
		t.Error("w1 has voted")
	}
	if claim.HasVoted(w2) {
		t.Error("w2 has not voted")
	}
}
