package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"assassin-server/domain"

	"github.com/google/uuid"
)

func TestSubmitClaimDuplicate(t *testing.T) {
	repo := &fakeRepository{submitErr: domain.ErrDuplicateClaim}
	u := NewSubmitClaimUseCase(repo, &recordSink{})

	_, status, err := u.Execute(context.Background(), "abc123", uuidOf(1), uuidOf(2))
	if !errors.Is(err, domain.ErrDuplicateClaim) {
		t.Fatalf("expected ErrDuplicateClaim, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestSubmitClaimPublishesEvent(t *testing.T) {
	repo := &fakeRepository{
		claim: domain.EliminationClaim{
			ID:        uuidOf(9),
			RoomCode:  "ABC123",
			ClaimerID: uuidOf(1),
			TargetID:  uuidOf(2),
			Status:    domain.ClaimPending,
		},
	}
	sink := &recordSink{}
	u := NewSubmitClaimUseCase(repo, sink)

	claim, status, err := u.Execute(context.Background(), "abc123", uuidOf(1), uuidOf(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if claim.Status != domain.ClaimPending {
		t.Errorf("new claim should be pending, got %s", claim.Status)
	}
	if !sink.has(domain.EventClaimSubmitted) {
		t.Error("expected claim submitted event")
	}
}

func TestRespondClaimInvalidResponse(t *testing.T) {
	u := NewRespondClaimUseCase(&fakeRepository{}, &recordSink{})

	_, status, err := u.Execute(context.Background(), uuidOf(9), uuidOf(2), domain.ClaimResponse("maybe"))
	if err == nil {
		t.Fatal("expected error for invalid response")
	}
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestRespondClaimConfirmEndsGame(t *testing.T) {
	repo := &fakeRepository{
		claim: domain.EliminationClaim{
			ID:        uuidOf(9),
			RoomCode:  "ABC123",
			ClaimerID: uuidOf(1),
			TargetID:  uuidOf(2),
			Status:    domain.ClaimConfirmed,
		},
		room: domain.Room{Code: "ABC123", State: domain.RoomStateFinished},
	}
	sink := &recordSink{}
	u := NewRespondClaimUseCase(repo, sink)

	claim, status, err := u.Execute(context.Background(), uuidOf(9), uuidOf(2), domain.ResponseConfirm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if claim.Status != domain.ClaimConfirmed {
		t.Errorf("expected confirmed claim, got %s", claim.Status)
	}
	if !sink.has(domain.EventClaimConfirmed) {
		t.Error("expected claim confirmed event")
	}
	if !sink.has(domain.EventGameEnded) {
		t.Error("expected game ended event when the room finished")
	}
}

func TestRespondClaimDenyOpensDispute(t *testing.T) {
	repo := &fakeRepository{
		claim: domain.EliminationClaim{
			ID:       uuidOf(9),
			RoomCode: "ABC123",
			Status:   domain.ClaimDisputed,
			Witnesses: []uuid.UUID{uuidOf(3), uuidOf(4)},
		},
		room: domain.Room{Code: "ABC123", State: domain.RoomStateActive},
	}
	sink := &recordSink{}
	u := NewRespondClaimUseCase(repo, sink)

	claim, _, err := u.Execute(context.Background(), uuidOf(9), uuidOf(2), domain.ResponseDeny)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claim.Status != domain.ClaimDisputed {
		t.Errorf("expected disputed claim, got %s", claim.Status)
	}
	if !sink.has(domain.EventClaimDisputed) {
		t.Error("expected claim disputed event")
	}
	if sink.has(domain.EventGameEnded) {
		t.Error("disputed claim must not end the game")
	}
}

func TestRespondClaimWrongTarget(t *testing.T) {
	repo := &fakeRepository{respondErr: domain.ErrNotAuthorized}
	u := NewRespondClaimUseCase(repo, &recordSink{})

	_, status, err := u.Execute(context.Background(), uuidOf(9), uuidOf(5), domain.ResponseConfirm)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestWitnessVoteVerifies(t *testing.T) {
	repo := &fakeRepository{
		claim: domain.EliminationClaim{
			ID:       uuidOf(9),
			RoomCode: "ABC123",
			Status:   domain.ClaimVerified,
		},
		room: domain.Room{Code: "ABC123", State: domain.RoomStateActive},
	}
	sink := &recordSink{}
	u := NewWitnessVoteUseCase(repo, sink)

	claim, status, err := u.Execute(context.Background(), uuidOf(9), uuidOf(3), domain.ResponseConfirm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if claim.Status != domain.ClaimVerified {
		t.Errorf("expected verified claim, got %s", claim.Status)
	}
	if !sink.has(domain.EventWitnessVote) {
		t.Error("expected witness vote event")
	}
	if !sink.has(domain.EventClaimVerified) {
		t.Error("expected claim verified event")
	}
}

func TestWitnessVoteDuplicate(t *testing.T) {
	repo := &fakeRepository{voteErr: domain.ErrDuplicateVote}
	u := NewWitnessVoteUseCase(repo, &recordSink{})

	_, status, err := u.Execute(context.Background(), uuidOf(9), uuidOf(3), domain.ResponseDeny)
	if !errors.Is(err, domain.ErrDuplicateVote) {
		t.Fatalf("expected ErrDuplicateVote, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestWitnessVoteOnSettledClaim(t *testing.T) {
	repo := &fakeRepository{voteErr: domain.ErrInvalidClaimState}
	u := NewWitnessVoteUseCase(repo, &recordSink{})

	_, status, err := u.Execute(context.Background(), uuidOf(9), uuidOf(3), domain.ResponseDeny)
	if !errors.Is(err, domain.ErrInvalidClaimState) {
		t.Fatalf("expected ErrInvalidClaimState, got %v", err)
	}
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}
