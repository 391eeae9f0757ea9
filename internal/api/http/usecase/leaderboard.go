package httpUsecase

import (
	"context"
	"net/http"

	"assassin-server/domain"
)

const defaultLeaderboardLimit = 50

type GetLeaderboardUseCase interface {
	Execute(ctx context.Context, limit int) ([]domain.LeaderboardEntry, int, error)
}

type getLeaderboardUseCase struct {
	repository PostgresRepository
}

func NewGetLeaderboardUseCase(repository PostgresRepository) GetLeaderboardUseCase {
	return &getLeaderboardUseCase{repository: repository}
}

func (u *getLeaderboardUseCase) Execute(ctx context.Context, limit int) ([]domain.LeaderboardEntry, int, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultLeaderboardLimit
	}

	entries, err := u.repository.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return entries, http.StatusOK, nil
}
