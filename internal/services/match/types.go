package match

import (
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/common/clock"
	"github.com/KirkDiggler/minefest/internal/common/uuid"
	"github.com/KirkDiggler/minefest/internal/dice"
	"github.com/KirkDiggler/minefest/internal/economy"
	"github.com/KirkDiggler/minefest/internal/models"
	roundResultRepo "github.com/KirkDiggler/minefest/internal/repositories/round_result"
	"github.com/KirkDiggler/minefest/internal/services/accrual"
	"github.com/KirkDiggler/minefest/internal/services/policy"
)

// Config holds configuration for the match service
type Config struct {
	// Rules for new matches; the zero value means models.DefaultRules
	Rules models.Rules

	// Schedule prices upgrades and drives accrual
	Schedule *economy.Schedule

	// BotPolicies names the policy of each bot in order, repeating when there
	// are more bots than names; empty means policy.DefaultLineup
	BotPolicies []string

	// Policies overrides the policy registry
	Policies map[string]policy.Func

	// HumanName is the display name of the human player
	HumanName string

	// Service dependencies
	Accrual       accrual.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// RoundRecorder optionally keeps a history of every resolved round
	RoundRecorder roundResultRepo.Repository

	// Logger defaults to the standard logger
	Logger *log.Logger
}

// StartMatchInput contains parameters for starting a match
type StartMatchInput struct {
	// HumanName overrides the configured display name of the human player
	HumanName string
}

// StartMatchOutput contains the result of starting a match
type StartMatchOutput struct {
	// MatchID is the unique identifier for the new match
	MatchID string

	// HumanID is the participant ID the UI acts on behalf of
	HumanID string

	// Snapshot is the state of the new match
	Snapshot *models.MatchSnapshot
}

// AdvanceInput contains parameters for advancing simulated time
type AdvanceInput struct {
	// Elapsed is the simulated time to add; must not be negative
	Elapsed time.Duration
}

// AdvanceOutput contains the result of advancing simulated time
type AdvanceOutput struct {
	// Results holds one entry per round resolved during this call
	Results []*models.RoundResult

	// Snapshot is the state after advancing
	Snapshot *models.MatchSnapshot
}

// RequestUpgradeInput contains parameters for buying an upgrade
type RequestUpgradeInput struct {
	ParticipantID string
}

// RequestUpgradeOutput contains the result of buying an upgrade
type RequestUpgradeOutput struct {
	// Participant is a copy of the participant after the purchase
	Participant *models.Participant

	// Cost is what the upgrade cost
	Cost decimal.Decimal

	// Level is the new level
	Level int
}

// RequestDonateInput contains parameters for donating gold
type RequestDonateInput struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// RequestDonateOutput contains the result of donating gold
type RequestDonateOutput struct {
	// Participant is a copy of the participant after the donation
	Participant *models.Participant
}

// RequestPetInput contains parameters for pet requests
type RequestPetInput struct {
	ParticipantID string
}

// RequestPetOutput contains the result of a pet request
type RequestPetOutput struct {
	// Participant is a copy of the participant after the request
	Participant *models.Participant

	// Cost is what the request cost; only unlocking costs gold
	Cost decimal.Decimal
}

// GrantGoldInput contains parameters for crediting gold directly
type GrantGoldInput struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// GrantGoldOutput contains the result of crediting gold
type GrantGoldOutput struct {
	// Participant is a copy of the participant after the credit
	Participant *models.Participant
}

// GetSnapshotInput contains parameters for reading the match state
type GetSnapshotInput struct {
}

// GetSnapshotOutput contains the current match state
type GetSnapshotOutput struct {
	Snapshot *models.MatchSnapshot
}

// GetRoundHistoryInput contains parameters for listing resolved rounds
type GetRoundHistoryInput struct {
	// MatchID selects a previous match from the round recorder; empty means the current match
	MatchID string
}

// GetRoundHistoryOutput contains resolved rounds in order
type GetRoundHistoryOutput struct {
	MatchID string
	Results []*models.RoundResult
}
