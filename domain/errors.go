package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room full")
	ErrGameAlreadyStarted  = errors.New("game already started")
	ErrInsufficientPlayers = errors.New("insufficient players")
	ErrTooManyPlayers      = errors.New("too many players")
	ErrInvalidClaimState   = errors.New("invalid claim state")
	ErrDuplicateClaim      = errors.New("duplicate claim")
	ErrDuplicateVote       = errors.New("duplicate vote")
	ErrStaleState          = errors.New("stale state")
	ErrEmptyAssignmentPool = errors.New("empty assignment pool")
)
