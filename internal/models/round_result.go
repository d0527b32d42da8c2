package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundStanding is one participant's placement in a resolved round
type RoundStanding struct {
	// ParticipantID is the ID of the ranked participant
	ParticipantID string

	// ParticipantName is the display name of the ranked participant
	ParticipantName string

	// Index is the participant's position in the match's initial order
	Index int

	// Rank is the 0-indexed position; rank 0 donated the most
	Rank int

	// Donated is the amount the participant donated in the round
	Donated decimal.Decimal

	// Damage is what this placement deals; it equals Rank
	Damage int

	// HealthAfter is the participant's health once damage was applied
	HealthAfter int

	// Eliminated is true when this round's damage eliminated the participant
	Eliminated bool

	// PetAbsorbed is true when the participant's pet took this round's damage
	// in place of its owner
	PetAbsorbed bool

	// PetLoot is the gold a searching pet found this round
	PetLoot decimal.Decimal
}

// HealthLost is the health the participant actually lost this round
func (r RoundStanding) HealthLost() int {
	if r.PetAbsorbed {
		return 0
	}
	return r.Damage
}

// RoundResult is emitted once for every resolved round
type RoundResult struct {
	// MatchID is the ID of the match the round belongs to
	MatchID string

	// Round is the number of the resolved round
	Round int

	// Standings are ordered by rank
	Standings []RoundStanding

	// Phase is the match phase after resolution
	Phase MatchPhase

	// Outcome is set when this round ended the match
	Outcome *MatchOutcome

	// ResolvedAt is when the round was resolved
	ResolvedAt time.Time
}

// Winner returns the top-ranked standing, or nil for an empty round
func (r *RoundResult) Winner() *RoundStanding {
	if len(r.Standings) == 0 {
		return nil
	}
	return &r.Standings[0]
}

// Standing returns the standing of the given participant
func (r *RoundResult) Standing(participantID string) (*RoundStanding, bool) {
	for i := range r.Standings {
		if r.Standings[i].ParticipantID == participantID {
			return &r.Standings[i], true
		}
	}
	return nil, false
}

// Clone returns a copy that shares nothing with the engine's history
func (r *RoundResult) Clone() *RoundResult {
	c := *r
	c.Standings = make([]RoundStanding, len(r.Standings))
	copy(c.Standings, r.Standings)
	c.Outcome = r.Outcome.Clone()
	return &c
}
