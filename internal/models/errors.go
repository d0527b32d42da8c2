package models

// MatchError is the error type returned by participant and match operations
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAmount      MatchError = "invalid amount"
	ErrInsufficientFunds  MatchError = "insufficient funds"
	ErrUnknownParticipant MatchError = "unknown participant"
	ErrInvalidState       MatchError = "invalid match state"
	ErrMaxLevel           MatchError = "upgrade already at maximum level"
)
