package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitForShutdown blocks until SIGINT/SIGTERM, then drains the fiber
// app within the given timeout.
func WaitForShutdown(app *fiber.App, timeout time.Duration, ctx context.Context) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		zap.L().Info("Shutdown signal received", zap.String("signal", s.String()))
	case <-ctx.Done():
		zap.L().Info("Context cancelled, shutting down")
	}

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Error("Server shutdown failed", zap.Error(err))
	}
}
