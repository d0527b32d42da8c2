package round_result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/minefest/internal/repositories/round_result Repository

import (
	"context"
)

// Repository defines the interface for the round history ledger
type Repository interface {
	// AddRoundResult appends a resolved round to its match's history
	AddRoundResult(ctx context.Context, input *AddRoundResultInput) error

	// GetRoundResultsForMatch retrieves a match's rounds in order
	GetRoundResultsForMatch(ctx context.Context, input *GetRoundResultsForMatchInput) (*GetRoundResultsForMatchOutput, error)

	// GetParticipantStats retrieves the running totals for a participant
	GetParticipantStats(ctx context.Context, input *GetParticipantStatsInput) (*GetParticipantStatsOutput, error)

	// DeleteRoundResults removes a match's history
	DeleteRoundResults(ctx context.Context, input *DeleteRoundResultsInput) error
}
