package round_result

import "github.com/KirkDiggler/minefest/internal/models"

// AddRoundResultInput contains parameters for recording a round
type AddRoundResultInput struct {
	Result *models.RoundResult
}

// GetRoundResultsForMatchInput contains parameters for listing a match's rounds
type GetRoundResultsForMatchInput struct {
	MatchID string
}

// GetRoundResultsForMatchOutput contains a match's rounds ordered by round number
type GetRoundResultsForMatchOutput struct {
	Results []*models.RoundResult
}

// GetParticipantStatsInput contains parameters for retrieving participant totals
type GetParticipantStatsInput struct {
	ParticipantID string
}

// ParticipantStats are running totals across every recorded round
type ParticipantStats struct {
	// ParticipantID is the ID of the participant
	ParticipantID string

	// RoundsPlayed is the number of rounds the participant was ranked in
	RoundsPlayed int

	// RoundsWon is the number of rounds the participant ranked first
	RoundsWon int

	// DamageTaken is the total damage received
	DamageTaken int
}

// GetParticipantStatsOutput contains a participant's totals
type GetParticipantStatsOutput struct {
	Stats *ParticipantStats
}

// DeleteRoundResultsInput contains parameters for deleting a match's history
type DeleteRoundResultsInput struct {
	MatchID string
}
