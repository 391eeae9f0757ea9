package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"assassin-server/domain"
	"assassin-server/internal/game"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RespondToClaim applies the target's confirm/deny to a pending claim.
// Confirm eliminates the target and re-checks the win condition in the
// same transaction; deny snapshots the witness set and opens the
// dispute.
func (r *Repository) RespondToClaim(ctx context.Context, claimID, targetID uuid.UUID, response domain.ClaimResponse, now time.Time) (domain.EliminationClaim, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+claimColumns+` FROM elimination_claims WHERE id = $1 FOR UPDATE`, claimID)
	claim, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EliminationClaim{}, fmt.Errorf("%w: claim %s", domain.ErrNotFound, claimID)
		}
		return domain.EliminationClaim{}, fmt.Errorf("failed to query claim: %w", err)
	}

	if claim.TargetID != targetID {
		return domain.EliminationClaim{}, fmt.Errorf("%w: only the claim target may respond", domain.ErrInvalidClaimState)
	}
	if claim.Status != domain.ClaimPending {
		return domain.EliminationClaim{}, fmt.Errorf("%w: claim %s is %s, not pending", domain.ErrInvalidClaimState, claimID, claim.Status)
	}

	// Room before players, the same lock order as leave/join, so a
	// concurrent leave serializes instead of deadlocking.
	if err := lockRoomTx(ctx, tx, claim.RoomCode); err != nil {
		return domain.EliminationClaim{}, err
	}

	if response == domain.ResponseConfirm {
		if err := transitionClaimTx(ctx, tx, claimID, domain.ClaimPending, domain.ClaimConfirmed,
			`target_response = 'confirm'`); err != nil {
			return domain.EliminationClaim{}, err
		}
		if err := eliminateTx(ctx, tx, claim.RoomCode, claim.TargetID, now); err != nil {
			return domain.EliminationClaim{}, err
		}
		if err := insertEliminationNoticeTx(ctx, tx, claim, ""); err != nil {
			return domain.EliminationClaim{}, err
		}
		if err := evaluateWinTx(ctx, tx, claim.RoomCode, now, r.prizePool); err != nil {
			return domain.EliminationClaim{}, err
		}
		claim.Status = domain.ClaimConfirmed
		claim.TargetResponse = domain.ResponseConfirm
	} else {
		players, err := lockRoomPlayersTx(ctx, tx, claim.RoomCode)
		if err != nil {
			return domain.EliminationClaim{}, err
		}
		witnesses := game.WitnessSet(players, claim.ClaimerID, claim.TargetID)

		if len(witnesses) == 0 {
			// Nobody left to adjudicate; the dispute dies on arrival.
			if err := transitionClaimTx(ctx, tx, claimID, domain.ClaimPending, domain.ClaimRejected,
				`target_response = 'deny'`); err != nil {
				return domain.EliminationClaim{}, err
			}
			if err := insertSystemMessageTx(ctx, tx, claim.RoomCode,
				"Elimination claim rejected - no witnesses available."); err != nil {
				return domain.EliminationClaim{}, err
			}
			claim.Status = domain.ClaimRejected
		} else {
			res, err := tx.ExecContext(ctx,
				`UPDATE elimination_claims
				 SET status = 'disputed', target_response = 'deny', witnesses = $2, witness_responses = '{}'
				 WHERE id = $1 AND status = 'pending'`,
				claimID, pq.Array(uuidStrings(witnesses)),
			)
			if err != nil {
				return domain.EliminationClaim{}, fmt.Errorf("failed to dispute claim: %w", err)
			}
			if err := requireAffected(res, claimID); err != nil {
				return domain.EliminationClaim{}, err
			}
			targetName := playerNameIn(players, claim.TargetID)
			msg := fmt.Sprintf("%s denied the elimination claim. We are seeking witnesses!", targetName)
			if err := insertSystemMessageTx(ctx, tx, claim.RoomCode, msg); err != nil {
				return domain.EliminationClaim{}, err
			}
			claim.Status = domain.ClaimDisputed
			claim.Witnesses = witnesses
			claim.WitnessResponses = map[uuid.UUID]domain.ClaimResponse{}
		}
		claim.TargetResponse = domain.ResponseDeny
	}

	if err = tx.Commit(); err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return claim, nil
}

// transitionClaimTx is the status-guarded claim update every resolution
// path funnels through; losing the guard means a concurrent resolver
// already moved the claim on.
func transitionClaimTx(ctx context.Context, tx *sql.Tx, claimID uuid.UUID, from, to domain.ClaimStatus, extraSet string) error {
	set := `status = '` + string(to) + `'`
	if extraSet != "" {
		set += ", " + extraSet
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE elimination_claims SET `+set+` WHERE id = $1 AND status = '`+string(from)+`'`,
		claimID,
	)
	if err != nil {
		return fmt.Errorf("failed to transition claim: %w", err)
	}
	return requireAffected(res, claimID)
}

func requireAffected(res sql.Result, claimID uuid.UUID) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: claim %s was resolved concurrently", domain.ErrStaleState, claimID)
	}
	return nil
}

func lockRoomTx(ctx context.Context, tx *sql.Tx, roomCode string) error {
	var code string
	err := tx.QueryRowContext(ctx,
		`SELECT code FROM rooms WHERE code = $1 FOR UPDATE`, roomCode).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomCode)
		}
		return fmt.Errorf("failed to lock room: %w", err)
	}
	return nil
}

func lockRoomPlayersTx(ctx context.Context, tx *sql.Tx, roomCode string) ([]domain.Player, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE room_code = $1 ORDER BY joined_at FOR UPDATE`, roomCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	return collectPlayers(rows)
}

func playerNameIn(players []domain.Player, id uuid.UUID) string {
	for _, p := range players {
		if p.ID == id {
			return p.Name
		}
	}
	return "Unknown"
}

func insertEliminationNoticeTx(ctx context.Context, tx *sql.Tx, claim domain.EliminationClaim, witnessName string) error {
	var claimerName, targetName string
	err := tx.QueryRowContext(ctx,
		`SELECT c.name, t.name FROM players c, players t WHERE c.id = $1 AND t.id = $2`,
		claim.ClaimerID, claim.TargetID,
	).Scan(&claimerName, &targetName)
	if err != nil {
		return fmt.Errorf("failed to query claim parties: %w", err)
	}
	msg := fmt.Sprintf("%s has been eliminated by %s!", targetName, claimerName)
	if witnessName != "" {
		msg = fmt.Sprintf("%s has been eliminated by %s (confirmed by witness %s)!", targetName, claimerName, witnessName)
	}
	return insertSystemMessageTx(ctx, tx, claim.RoomCode, msg)
}
