package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// WitnessVoteUseCase records one witness vote on a disputed claim. A single
// confirming vote verifies the claim; unanimous denial rejects it.
type WitnessVoteUseCase interface {
	Execute(ctx context.Context, claimID, witnessID uuid.UUID, response domain.ClaimResponse) (*domain.EliminationClaim, int, error)
}

type witnessVoteUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewWitnessVoteUseCase(repository PostgresRepository, sink BroadcastSink) WitnessVoteUseCase {
	return &witnessVoteUseCase{repository: repository, sink: sink}
}

func (u *witnessVoteUseCase) Execute(ctx context.Context, claimID, witnessID uuid.UUID, response domain.ClaimResponse) (*domain.EliminationClaim, int, error) {
	if !response.Valid() {
		return nil, http.StatusBadRequest, domain.ErrInvalidInput
	}

	claim, err := u.repository.SubmitWitnessVote(ctx, claimID, witnessID, response, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, http.StatusNotFound, err
		case errors.Is(err, domain.ErrNotAuthorized):
			return nil, http.StatusForbidden, err
		case errors.Is(err, domain.ErrInvalidClaimState), errors.Is(err, domain.ErrDuplicateVote), errors.Is(err, domain.ErrStaleState):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	u.sink.PublishEvent(ctx, claim.RoomCode, domain.EventWitnessVote, map[string]string{
		"claim_id":   claim.ID.String(),
		"witness_id": witnessID.String(),
	})
	publishClaimOutcome(ctx, u.sink, u.repository, claim)

	return &claim, http.StatusOK, nil
}
