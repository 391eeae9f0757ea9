package initializer

import (
	"fmt"

	"assassin-server/config"
	"assassin-server/infra/postgres"

	"go.uber.org/zap"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		appConfig.Postgres.User,
		appConfig.Postgres.Password,
		appConfig.Postgres.Host,
		appConfig.Postgres.Port,
		appConfig.Postgres.DB,
	)

	repository, err := postgres.NewRepository(connString, appConfig.Game.PrizePool)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	return repository
}
