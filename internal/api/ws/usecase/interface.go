package wsUsecase

import (
	"context"

	"assassin-server/domain"

	"github.com/google/uuid"
)

type Hub interface {
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
}

type PostgresRepository interface {
	GetPlayer(ctx context.Context, roomCode string, playerID uuid.UUID) (domain.Player, error)
}
