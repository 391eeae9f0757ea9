package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// SubmitClaim opens a pending elimination claim. The partial unique
// index on open claims backs up the explicit duplicate check, so a
// racing duplicate loses either way.
func (r *Repository) SubmitClaim(ctx context.Context, roomCode string, claimerID, targetID uuid.UUID) (domain.EliminationClaim, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var state string
	err = tx.QueryRowContext(ctx,
		`SELECT state FROM rooms WHERE code = $1`, roomCode).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EliminationClaim{}, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return domain.EliminationClaim{}, fmt.Errorf("failed to query room: %w", err)
	}
	if state != string(domain.RoomStateActive) {
		return domain.EliminationClaim{}, fmt.Errorf("%w: room %s is %s, not active", domain.ErrInvalidClaimState, roomCode, state)
	}

	var claimerName, targetName string
	var claimerAlive, targetAlive bool
	err = tx.QueryRowContext(ctx,
		`SELECT c.name, c.is_alive, t.name, t.is_alive
		 FROM players c, players t
		 WHERE c.id = $2 AND c.room_code = $1 AND t.id = $3 AND t.room_code = $1`,
		roomCode, claimerID, targetID,
	).Scan(&claimerName, &claimerAlive, &targetName, &targetAlive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EliminationClaim{}, fmt.Errorf("%w: claimer or target not in room %s", domain.ErrNotFound, roomCode)
		}
		return domain.EliminationClaim{}, fmt.Errorf("failed to query claim parties: %w", err)
	}
	if !claimerAlive {
		return domain.EliminationClaim{}, fmt.Errorf("%w: claimer %s is not alive", domain.ErrInvalidClaimState, claimerID)
	}
	if !targetAlive {
		return domain.EliminationClaim{}, fmt.Errorf("%w: target %s is not alive", domain.ErrInvalidClaimState, targetID)
	}

	var hasOpenClaim bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM elimination_claims
			WHERE target_id = $1 AND status IN ('pending', 'disputed'))`,
		targetID,
	).Scan(&hasOpenClaim)
	if err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to check open claims: %w", err)
	}
	if hasOpenClaim {
		return domain.EliminationClaim{}, fmt.Errorf("%w: target %s already has an open claim", domain.ErrDuplicateClaim, targetID)
	}

	row := tx.QueryRowContext(ctx,
		`INSERT INTO elimination_claims (room_code, claimer_id, target_id, status)
		 VALUES ($1, $2, $3, 'pending')
		 RETURNING `+claimColumns,
		roomCode, claimerID, targetID,
	)
	claim, err := scanClaim(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.EliminationClaim{}, fmt.Errorf("%w: target %s already has an open claim", domain.ErrDuplicateClaim, targetID)
		}
		return domain.EliminationClaim{}, fmt.Errorf("failed to insert claim: %w", err)
	}

	msg := fmt.Sprintf("%s claims to have eliminated %s!", claimerName, targetName)
	if err := insertSystemMessageTx(ctx, tx, roomCode, msg); err != nil {
		return domain.EliminationClaim{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return claim, nil
}
