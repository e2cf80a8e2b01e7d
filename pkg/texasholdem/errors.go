package texasholdem

import (
	"errors"

	"holdem/pkg/potledger"
)

// ErrInvalidAction is an error when a decision is not one of the legal actions
// The player is asked again, the decision is never replaced with a default.
var ErrInvalidAction = errors.New("invalid action")

// ErrIllegalState is an error when the engine is driven out of order
var ErrIllegalState = errors.New("illegal game state")

// ErrTooManyInvalidActions is an error when a decision source keeps sending invalid decisions
var ErrTooManyInvalidActions = errors.New("too many invalid actions")

// ErrSessionClosed is an error when a closed session is used
var ErrSessionClosed = errors.New("session is closed")

// isRecoverable returns true if the player can simply be asked again
func isRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidAction) || errors.Is(err, potledger.ErrInsufficientChips)
}
