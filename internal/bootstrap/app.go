package bootstrap

import (
	"context"
	"time"

	"assassin-server/config"
	"assassin-server/internal/expiry"
	"assassin-server/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config       config.Config
	postgresRepo PostgresRepository
	roomRedis    RoomRedisManager
	wsHub        Hub
	sweeper      *expiry.Sweeper
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}
	cancel       context.CancelFunc
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.postgresRepo = InitDatabase(a.config)
	a.roomRedis = InitRoomRedis(a.config)
	a.wsHub = InitWebsocket(ctx, a.roomRedis)
	a.sweeper = expiry.NewSweeper(a.postgresRepo, a.roomRedis, a.config.Game.SweepInterval)
	go a.sweeper.Run(ctx)

	a.httpHandlers = SetupHTTPHandlers(a.postgresRepo, a.roomRedis, a.config.Game)
	a.wsHandlers = SetupWSHandlers(a.postgresRepo, a.wsHub)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		a.cancel()
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
		if err := a.roomRedis.Close(); err != nil {
			zap.L().Error("Failed to close redis", zap.Error(err))
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
