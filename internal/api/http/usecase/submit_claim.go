package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type SubmitClaimUseCase interface {
	Execute(ctx context.Context, roomCode string, claimerID, targetID uuid.UUID) (*domain.EliminationClaim, int, error)
}

type submitClaimUseCase struct {
	repository PostgresRepository
	sink       BroadcastSink
}

func NewSubmitClaimUseCase(repository PostgresRepository, sink BroadcastSink) SubmitClaimUseCase {
	return &submitClaimUseCase{repository: repository, sink: sink}
}

func (u *submitClaimUseCase) Execute(ctx context.Context, roomCode string, claimerID, targetID uuid.UUID) (*domain.EliminationClaim, int, error) {
	roomCode = strings.ToUpper(roomCode)

	claim, err := u.repository.SubmitClaim(ctx, roomCode, claimerID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrNotFound):
			return nil, http.StatusNotFound, err
		case errors.Is(err, domain.ErrDuplicateClaim), errors.Is(err, domain.ErrInvalidClaimState):
			return nil, http.StatusConflict, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}

	u.sink.PublishEvent(ctx, roomCode, domain.EventClaimSubmitted, map[string]string{
		"claim_id":   claim.ID.String(),
		"claimer_id": claimerID.String(),
		"target_id":  targetID.String(),
	})

	return &claim, http.StatusCreated, nil
}
