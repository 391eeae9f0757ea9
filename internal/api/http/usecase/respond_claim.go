package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// RespondClaimUseCase records the target's answer to an elimination claim.
// A confirmation settles the claim immediately; a denial opens witness voting.
type RespondClaimUseCase interface {
	Execute(ctx context.Context, claimID, targetID uuid.UUID, response domain.ClaimResponse) (*domain.EliminationClaim, int, error)
}

type respondClaimUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewRespondClaimUseCase(repository PostgresRepository, sink BroadcastSink) RespondClaimUseCase {
	return &respondClaimUseCase{repository: repository, sink: sink}
}

func (u *respondClaimUseCase) Execute(ctx context.Context, claimID, targetID uuid.UUID, response domain.ClaimResponse) (*domain.EliminationClaim, int, error) {
	if !response.Valid() {
		return nil, http.StatusBadRequest, domain.ErrInvalidInput
	}

	claim, err := u.repository.RespondToClaim(ctx, claimID, targetID, response, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, http.StatusNotFound, err
		case errors.Is(err, domain.ErrNotAuthorized):
			return nil, http.StatusForbidden, err
		case errors.Is(err, domain.ErrInvalidClaimState), errors.Is(err, domain.ErrStaleState):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	publishClaimOutcome(ctx, u.sink, u.repository, claim)

	return &claim, http.StatusOK, nil
}

// publishClaimOutcome emits the event matching the claim's new status and,
// when a confirmed or verified claim ended the game, the game-ended event.
func publishClaimOutcome(ctx context.Context, sink BroadcastSink, repository PostgresRepository, claim domain.EliminationClaim) {
	data := map[string]string{
		"claim_id":   claim.ID.String(),
		"claimer_id": claim.ClaimerID.String(),
		"target_id":  claim.TargetID.String(),
	}

	switch claim.Status {
	case domain.ClaimConfirmed:
		sink.PublishEvent(ctx, claim.RoomCode, domain.EventClaimConfirmed, data)
	case domain.ClaimDisputed:
		sink.PublishEvent(ctx, claim.RoomCode, domain.EventClaimDisputed, data)
	case domain.ClaimVerified:
		sink.PublishEvent(ctx, claim.RoomCode, domain.EventClaimVerified, data)
	case domain.ClaimRejected:
		sink.PublishEvent(ctx, claim.RoomCode, domain.EventClaimRejected, data)
	}

	if claim.Status != domain.ClaimConfirmed && claim.Status != domain.ClaimVerified {
		return
	}
	room, err := repository.GetRoom(ctx, claim.RoomCode)
	if err != nil {
		return
	}
	if room.State == domain.RoomStateFinished {
		sink.PublishEvent(ctx, claim.RoomCode, domain.EventGameEnded, nil)
	}
}
