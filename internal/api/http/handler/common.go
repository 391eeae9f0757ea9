package handler

import (
	"fmt"

	"assassin-server/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// playerIDFromHeader reads the caller's ephemeral player identity from the
// X-Player-ID header set by the client on every in-room request.
func playerIDFromHeader(fbrCtx *fiber.Ctx) (uuid.UUID, int, error) {
	playerIDStr := fbrCtx.Get("X-Player-ID")

	if playerIDStr == "" {
		return uuid.Nil, fiber.StatusUnauthorized, domain.ErrNotAuthorized
	}
	playerID, err := uuid.Parse(playerIDStr)
	if err != nil {
		return uuid.Nil, fiber.StatusBadRequest, fmt.Errorf("invalid player ID format")
	}

	return playerID, fiber.StatusOK, nil
}
