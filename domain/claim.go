package domain

import (
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "pending"
	ClaimConfirmed ClaimStatus = "confirmed"
	ClaimDisputed  ClaimStatus = "disputed"
	ClaimVerified  ClaimStatus = "verified"
	ClaimRejected  ClaimStatus = "rejected"
)

func (s ClaimStatus) Terminal() bool {
	switch s {
	case ClaimConfirmed, ClaimVerified, ClaimRejected:
		return true
	}
	return false
}

// CanTransition encodes the claim state machine: pending resolves by
// the target (confirmed or disputed), disputed resolves by witnesses
// (verified or rejected). Terminal states accept nothing.
func (s ClaimStatus) CanTransition(to ClaimStatus) bool {
	switch s {
	case ClaimPending:
		return to == ClaimConfirmed || to == ClaimDisputed || to == ClaimRejected
	case ClaimDisputed:
		return to == ClaimVerified || to == ClaimRejected
	}
	return false
}

type ClaimResponse string

const (
	ResponseConfirm ClaimResponse = "confirm"
	ResponseDeny    ClaimResponse = "deny"
)

func (r ClaimResponse) Valid() bool {
	return r == ResponseConfirm || r == ResponseDeny
}

type EliminationClaim struct {
	ID               uuid.UUID                   `json:"id"`
	RoomCode         string                      `json:"room_code"`
	ClaimerID        uuid.UUID                   `json:"claimer_id"`
	TargetID         uuid.UUID                   `json:"target_id"`
	Status           ClaimStatus                 `json:"status"`
	TargetResponse   ClaimResponse               `json:"target_response,omitempty"`
	Witnesses        []uuid.UUID                 `json:"witnesses,omitempty"`
	WitnessResponses map[uuid.UUID]ClaimResponse `json:"witness_responses,omitempty"`
	CreatedAt        time.Time                   `json:"created_at"`
}

func (c EliminationClaim) IsWitness(id uuid.UUID) bool {
	for _, w := range c.Witnesses {
		if w == id {
			return true
		}
	}
	return false
}

func (c EliminationClaim) HasVoted(id uuid.UUID) bool {
	_, ok := c.WitnessResponses[id]
	return ok
}
