package models

import (
	"time"
)

// MatchPhase represents the current state of a match
type MatchPhase string

const (
	// MatchPhaseActive indicates a round is in progress
	MatchPhaseActive MatchPhase = "active"

	// MatchPhaseRoundTransition indicates bots are committing and the round is being resolved
	MatchPhaseRoundTransition MatchPhase = "round_transition"

	// MatchPhaseGameOver indicates the match has ended
	MatchPhaseGameOver MatchPhase = "game_over"
)

// IsActive returns true while a round is in progress
func (p MatchPhase) IsActive() bool {
	return p == MatchPhaseActive
}

// IsRoundTransition returns true while a round is being resolved
func (p MatchPhase) IsRoundTransition() bool {
	return p == MatchPhaseRoundTransition
}

// IsGameOver returns true once the match has ended
func (p MatchPhase) IsGameOver() bool {
	return p == MatchPhaseGameOver
}

// OutcomeReason explains why a match ended
type OutcomeReason string

const (
	// OutcomeReasonRoundLimit indicates the final round was resolved
	OutcomeReasonRoundLimit OutcomeReason = "round_limit"

	// OutcomeReasonHumanEliminated indicates the human player ran out of health
	OutcomeReasonHumanEliminated OutcomeReason = "human_eliminated"

	// OutcomeReasonLastStanding indicates only one participant is left
	OutcomeReasonLastStanding OutcomeReason = "last_standing"
)

// Rules are the fixed parameters of a match
type Rules struct {
	// MaxRounds is the number of rounds after which the match ends
	MaxRounds int

	// RoundLength is the simulated duration of one round
	RoundLength time.Duration

	// MaxHealth is every participant's starting health
	MaxHealth int

	// BotCount is the number of automated opponents
	BotCount int
}

// DefaultRules returns the standard match parameters
func DefaultRules() Rules {
	return Rules{
		MaxRounds:   10,
		RoundLength: 30 * time.Second,
		MaxHealth:   10,
		BotCount:    3,
	}
}

// MatchOutcome describes how a match ended
type MatchOutcome struct {
	// Reason is why the match ended
	Reason OutcomeReason

	// WinnerID is the participant who won, empty if nobody is left standing
	WinnerID string

	// HumanWon is true when the winner is the human player
	HumanWon bool

	// RoundsPlayed is the number of rounds resolved
	RoundsPlayed int
}

// Clone returns a copy of the outcome; a nil outcome stays nil
func (o *MatchOutcome) Clone() *MatchOutcome {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// Match is the whole contest
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// Rules are the parameters the match was started with
	Rules Rules

	// Participants in their initial order; never re-sorted
	Participants []*Participant

	// Round is the current round number, starting at 1
	Round int

	// RoundClock is the simulated time elapsed in the current round
	RoundClock time.Duration

	// Phase is the current state of the match
	Phase MatchPhase

	// Outcome is set once the match is over
	Outcome *MatchOutcome

	// History contains every resolved round in order
	History []*RoundResult

	// StartedAt is when the match was created
	StartedAt time.Time
}

// Participant returns the participant with the given ID
func (m *Match) Participant(id string) (*Participant, error) {
	for _, p := range m.Participants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrUnknownParticipant
}

// Human returns the human participant, or nil if the match has none
func (m *Match) Human() *Participant {
	for _, p := range m.Participants {
		if p.IsHuman {
			return p
		}
	}
	return nil
}

// Active returns the non-eliminated participants in initial order
func (m *Match) Active() []*Participant {
	active := make([]*Participant, 0, len(m.Participants))
	for _, p := range m.Participants {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

// RoundElapsed reports whether the round clock has reached the round length
func (m *Match) RoundElapsed() bool {
	return m.RoundClock >= m.Rules.RoundLength
}

// Snapshot returns a read-only copy of the match
func (m *Match) Snapshot() *MatchSnapshot {
	participants := make([]*Participant, len(m.Participants))
	for i, p := range m.Participants {
		participants[i] = p.Clone()
	}

	return &MatchSnapshot{
		MatchID:      m.ID,
		Round:        m.Round,
		RoundClock:   m.RoundClock,
		RoundLength:  m.Rules.RoundLength,
		MaxRounds:    m.Rules.MaxRounds,
		Phase:        m.Phase,
		Participants: participants,
		Outcome:      m.Outcome.Clone(),
	}
}

// MatchSnapshot is a point-in-time copy of a match for the UI and for bot policies
type MatchSnapshot struct {
	MatchID      string
	Round        int
	RoundClock   time.Duration
	RoundLength  time.Duration
	MaxRounds    int
	Phase        MatchPhase
	Participants []*Participant
	Outcome      *MatchOutcome
}

// TimeLeft returns the simulated time remaining in the round
func (s *MatchSnapshot) TimeLeft() time.Duration {
	left := s.RoundLength - s.RoundClock
	if left < 0 {
		return 0
	}
	return left
}

// Rivals returns the non-eliminated participants other than the given one
func (s *MatchSnapshot) Rivals(id string) []*Participant {
	var rivals []*Participant
	for _, p := range s.Participants {
		if p.ID != id && !p.Eliminated {
			rivals = append(rivals, p)
		}
	}
	return rivals
}
