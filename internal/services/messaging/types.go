package messaging

import (
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/dice"
	"github.com/KirkDiggler/minefest/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneWarning is used when the player is close to elimination
	ToneWarning MessageTone = "warning"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks between message variants; a time-seeded roller is used when nil
	DiceRoller dice.Roller
}

// GetRoundResultMessageInput contains parameters for a round announcement
type GetRoundResultMessageInput struct {
	// Result is the resolved round
	Result *models.RoundResult

	// HumanID is the participant the message is written for
	HumanID string
}

// GetRoundResultMessageOutput contains a round announcement
type GetRoundResultMessageOutput struct {
	Title string

	// Message is the headline about the human's placing
	Message string

	// Lines has one entry per standing, in rank order
	Lines []string

	Tone MessageTone
}

// GetOutcomeMessageInput contains parameters for a match-end announcement
type GetOutcomeMessageInput struct {
	Outcome *models.MatchOutcome

	// WinnerName is the display name of the winner, empty if there is none
	WinnerName string
}

// GetOutcomeMessageOutput contains a match-end announcement
type GetOutcomeMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetUpgradeMessageInput contains parameters for an upgrade confirmation
type GetUpgradeMessageInput struct {
	Upgrade models.Upgrade
	Level   int
	Cost    decimal.Decimal
}

// GetUpgradeMessageOutput contains an upgrade confirmation
type GetUpgradeMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the match service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
