package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type GetClaimsUseCase interface {
	Execute(ctx context.Context, roomCode string) ([]domain.EliminationClaim, int, error)
}

type getClaimsUseCase struct {
	repository PostgresRepository
}

func NewGetClaimsUseCase(repository PostgresRepository) GetClaimsUseCase {
	return &getClaimsUseCase{repository: repository}
}

func (u *getClaimsUseCase) Execute(ctx context.Context, roomCode string) ([]domain.EliminationClaim, int, error) {
	roomCode = strings.ToUpper(roomCode)

	if _, err := u.repository.GetRoom(ctx, roomCode); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	claims, err := u.repository.GetOpenClaims(ctx, roomCode)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return claims, http.StatusOK, nil
}

type GetClaimUseCase interface {
	Execute(ctx context.Context, claimID uuid.UUID) (*domain.EliminationClaim, int, error)
}

type getClaimUseCase struct {
	repository PostgresRepository
}

func NewGetClaimUseCase(repository PostgresRepository) GetClaimUseCase {
	return &getClaimUseCase{repository: repository}
}

func (u *getClaimUseCase) Execute(ctx context.Context, claimID uuid.UUID) (*domain.EliminationClaim, int, error) {
	claim, err := u.repository.GetClaim(ctx, claimID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	return &claim, http.StatusOK, nil
}
