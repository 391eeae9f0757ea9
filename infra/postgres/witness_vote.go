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
)

// SubmitWitnessVote records one witness's verdict on a disputed claim.
// The first confirm vote verifies the claim and eliminates the target;
// the last deny (with no confirms) rejects it. The claim row is held
// FOR UPDATE for the whole decision, and the status guard on the final
// update makes the disputed->terminal transition happen exactly once.
func (r *Repository) SubmitWitnessVote(ctx context.Context, claimID, witnessID uuid.UUID, response domain.ClaimResponse, now time.Time) (domain.EliminationClaim, error) {
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

	if claim.Status != domain.ClaimDisputed {
		return domain.EliminationClaim{}, fmt.Errorf("%w: claim %s is %s, not disputed", domain.ErrInvalidClaimState, claimID, claim.Status)
	}
	if !claim.IsWitness(witnessID) {
		return domain.EliminationClaim{}, fmt.Errorf("%w: player %s is not a witness of claim %s", domain.ErrInvalidClaimState, witnessID, claimID)
	}
	if claim.HasVoted(witnessID) {
		return domain.EliminationClaim{}, fmt.Errorf("%w: witness %s already voted on claim %s", domain.ErrDuplicateVote, witnessID, claimID)
	}

	// Room before players, matching the leave/join lock order.
	if err := lockRoomTx(ctx, tx, claim.RoomCode); err != nil {
		return domain.EliminationClaim{}, err
	}

	if claim.WitnessResponses == nil {
		claim.WitnessResponses = map[uuid.UUID]domain.ClaimResponse{}
	}
	claim.WitnessResponses[witnessID] = response
	responsesJSON, err := marshalResponses(claim.WitnessResponses)
	if err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to marshal witness responses: %w", err)
	}

	switch game.Tally(claim.Witnesses, claim.WitnessResponses) {
	case game.VerdictVerified:
		res, err := tx.ExecContext(ctx,
			`UPDATE elimination_claims SET status = 'verified', witness_responses = $2
			 WHERE id = $1 AND status = 'disputed'`,
			claimID, responsesJSON,
		)
		if err != nil {
			return domain.EliminationClaim{}, fmt.Errorf("failed to verify claim: %w", err)
		}
		if err := requireAffected(res, claimID); err != nil {
			return domain.EliminationClaim{}, err
		}
		if err := eliminateTx(ctx, tx, claim.RoomCode, claim.TargetID, now); err != nil {
			return domain.EliminationClaim{}, err
		}
		witnessName := playerNameByID(ctx, tx, witnessID)
		if err := insertEliminationNoticeTx(ctx, tx, claim, witnessName); err != nil {
			return domain.EliminationClaim{}, err
		}
		if err := evaluateWinTx(ctx, tx, claim.RoomCode, now, r.prizePool); err != nil {
			return domain.EliminationClaim{}, err
		}
		claim.Status = domain.ClaimVerified

	case game.VerdictRejected:
		res, err := tx.ExecContext(ctx,
			`UPDATE elimination_claims SET status = 'rejected', witness_responses = $2
			 WHERE id = $1 AND status = 'disputed'`,
			claimID, responsesJSON,
		)
		if err != nil {
			return domain.EliminationClaim{}, fmt.Errorf("failed to reject claim: %w", err)
		}
		if err := requireAffected(res, claimID); err != nil {
			return domain.EliminationClaim{}, err
		}
		if err := insertSystemMessageTx(ctx, tx, claim.RoomCode,
			"Elimination claim rejected - no witnesses confirmed the elimination."); err != nil {
			return domain.EliminationClaim{}, err
		}
		claim.Status = domain.ClaimRejected

	default:
		// Partial deny votes; the dispute stays open.
		res, err := tx.ExecContext(ctx,
			`UPDATE elimination_claims SET witness_responses = $2
			 WHERE id = $1 AND status = 'disputed'`,
			claimID, responsesJSON,
		)
		if err != nil {
			return domain.EliminationClaim{}, fmt.Errorf("failed to record witness vote: %w", err)
		}
		if err := requireAffected(res, claimID); err != nil {
			return domain.EliminationClaim{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.EliminationClaim{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return claim, nil
}

func playerNameByID(ctx context.Context, tx *sql.Tx, id uuid.UUID) string {
	var name string
	if err := tx.QueryRowContext(ctx, `SELECT name FROM players WHERE id = $1`, id).Scan(&name); err != nil {
		return "Unknown"
	}
	return name
}
