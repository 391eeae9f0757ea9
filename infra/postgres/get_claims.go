package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assassin-server/domain"

	"github.com/google/uuid"
)

// GetOpenClaims returns the room's claims still awaiting resolution,
// the set clients poll to render response/witness prompts.
func (r *Repository) GetOpenClaims(ctx context.Context, roomCode string) ([]domain.EliminationClaim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+claimColumns+` FROM elimination_claims
		 WHERE room_code = $1 AND status IN ('pending', 'disputed')
		 ORDER BY created_at`,
		roomCode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	var claims []domain.EliminationClaim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, claim)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return claims, nil
}

func (r *Repository) GetClaim(ctx context.Context, claimID uuid.UUID) (domain.EliminationClaim, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+claimColumns+` FROM elimination_claims WHERE id = $1`, claimID)
	claim, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EliminationClaim{}, fmt.Errorf("%w: claim %s", domain.ErrNotFound, claimID)
		}
		return domain.EliminationClaim{}, fmt.Errorf("failed to query claim: %w", err)
	}
	return claim, nil
}
