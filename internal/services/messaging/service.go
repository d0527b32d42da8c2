package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/minefest/internal/dice"
	"github.com/KirkDiggler/minefest/internal/models"
)

// ErrNilInput is returned when a request is made without input
var ErrNilInput = errors.New("input cannot be nil")

// lowHealth is the health at or below which the player gets warned
const lowHealth = 3

// service implements the Service interface
type service struct {
	// Roller for selecting random messages
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var roller dice.Roller
	if config != nil && config.DiceRoller != nil {
		roller = config.DiceRoller
	} else {
		roller = dice.New(nil)
	}

	return &service{
		roller: roller,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.roller.Roll(len(messages))-1]
}

// GetRoundResultMessage returns an announcement for a resolved round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, ErrNilInput
	}

	result := input.Result
	output := &GetRoundResultMessageOutput{
		Title: fmt.Sprintf("Round %d", result.Round),
		Lines: make([]string, 0, len(result.Standings)),
	}

	for _, standing := range result.Standings {
		taken := fmt.Sprintf("took %d damage", standing.Damage)
		if standing.PetAbsorbed {
			taken = fmt.Sprintf("pet took %d damage", standing.Damage)
		}
		line := fmt.Sprintf("#%d %s donated %s gold, %s (%d hp)",
			standing.Rank+1, standing.ParticipantName, standing.Donated.StringFixed(2), taken, standing.HealthAfter)
		if standing.PetLoot.IsPositive() {
			line += fmt.Sprintf(", pet found %s gold", standing.PetLoot.StringFixed(2))
		}
		if standing.Eliminated {
			line += " and is out"
		}
		output.Lines = append(output.Lines, line)
	}

	standing, ok := result.Standing(input.HumanID)
	switch {
	case !ok:
		output.Message = "You sat this one out."
		output.Tone = ToneNeutral
	case standing.Eliminated:
		output.Message = s.pick([]string{
			"Your mine has collapsed. You're out of the festival.",
			"Out of health and out of the running. The festival goes on without you.",
		})
		output.Tone = ToneWarning
	case standing.PetAbsorbed:
		output.Message = fmt.Sprintf("Ranked #%d, but your pet took the hit for you. It won't be back.", standing.Rank+1)
		output.Tone = ToneWarning
	case standing.Rank == 0:
		output.Message = s.pick([]string{
			fmt.Sprintf("Top donor with %s gold! Not a scratch on you.", standing.Donated.StringFixed(2)),
			"The festival crowd chants your name. No damage this round!",
			"Generosity pays. You take the round untouched.",
		})
		output.Tone = ToneCelebration
	case standing.HealthAfter <= lowHealth:
		output.Message = fmt.Sprintf("Ranked #%d and down to %d health. Donate more next round or you're done.", standing.Rank+1, standing.HealthAfter)
		output.Tone = ToneWarning
	default:
		output.Message = s.pick([]string{
			fmt.Sprintf("Ranked #%d. That cost you %d health.", standing.Rank+1, standing.Damage),
			fmt.Sprintf("#%d this round. Dig deeper and give more!", standing.Rank+1),
			fmt.Sprintf("Rank #%d. Someone out there wants it more than you.", standing.Rank+1),
		})
		output.Tone = ToneEncouraging
	}

	return output, nil
}

// GetOutcomeMessage returns an announcement for the end of a match
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil || input.Outcome == nil {
		return nil, ErrNilInput
	}

	outcome := input.Outcome
	winner := input.WinnerName
	if winner == "" {
		winner = "Nobody"
	}

	if outcome.HumanWon {
		var message string
		switch outcome.Reason {
		case models.OutcomeReasonLastStanding:
			message = fmt.Sprintf("Everyone else ran dry after %d rounds. The festival is yours!", outcome.RoundsPlayed)
		default:
			message = fmt.Sprintf("You outlasted them all over %d rounds. Champion of the Minefest!", outcome.RoundsPlayed)
		}
		return &GetOutcomeMessageOutput{
			Title:   "Victory!",
			Message: message,
			Tone:    ToneCelebration,
		}, nil
	}

	var message string
	switch outcome.Reason {
	case models.OutcomeReasonHumanEliminated:
		message = s.pick([]string{
			fmt.Sprintf("You were eliminated in round %d. %s takes the festival.", outcome.RoundsPlayed, winner),
			fmt.Sprintf("Knocked out after %d rounds. %s is still digging.", outcome.RoundsPlayed, winner),
		})
	case models.OutcomeReasonRoundLimit:
		message = fmt.Sprintf("Time's up after %d rounds. %s finished healthiest.", outcome.RoundsPlayed, winner)
	default:
		message = fmt.Sprintf("%s is the last one standing after %d rounds.", winner, outcome.RoundsPlayed)
	}

	return &GetOutcomeMessageOutput{
		Title:   "Game Over",
		Message: message,
		Tone:    ToneNeutral,
	}, nil
}

// GetUpgradeMessage returns a confirmation for a bought upgrade
func (s *service) GetUpgradeMessage(ctx context.Context, input *GetUpgradeMessageInput) (*GetUpgradeMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var message string
	switch input.Upgrade {
	case models.UpgradePickaxe:
		message = fmt.Sprintf("Pickaxe upgraded to level %d for %s gold. You dig faster now.", input.Level, input.Cost.StringFixed(0))
	case models.UpgradeMine:
		message = fmt.Sprintf("Mine upgraded to level %d for %s gold. Every swing yields more.", input.Level, input.Cost.StringFixed(0))
	default:
		return nil, fmt.Errorf("unknown upgrade %q", input.Upgrade)
	}

	return &GetUpgradeMessageOutput{
		Message: message,
		Tone:    ToneEncouraging,
	}, nil
}

// GetErrorMessage returns player feedback for a rejected request
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case errors.Is(input.Err, models.ErrInsufficientFunds):
		messages = []string{
			"Not enough gold.",
			"Not enough gold. Keep digging!",
			"Your pockets are lighter than you think. Not enough gold.",
		}
	case errors.Is(input.Err, models.ErrMaxLevel):
		messages = []string{
			"That's already maxed out.",
			"Maxed out. There's nothing left to upgrade there.",
		}
	case errors.Is(input.Err, models.ErrInvalidAmount):
		messages = []string{
			"That amount doesn't make sense.",
			"Nice try. Amounts can't be negative.",
		}
	case errors.Is(input.Err, models.ErrInvalidState):
		messages = []string{
			"You can't do that right now.",
			"The festival isn't taking requests right now.",
		}
	case errors.Is(input.Err, models.ErrUnknownParticipant):
		messages = []string{
			"Who? That miner isn't in this match.",
		}
	default:
		messages = []string{
			"Something went wrong down in the mine.",
		}
		tone = ToneNeutral
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
