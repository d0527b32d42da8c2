package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/minefest/internal/dice/mocks"
	"github.com/KirkDiggler/minefest/internal/models"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	service    Service
	ctx        context.Context

	result *models.RoundResult
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	// Always pick the first variant
	s.mockRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	var err error
	s.service, err = NewService(&ServiceConfig{DiceRoller: s.mockRoller})
	s.Require().NoError(err)

	s.result = &models.RoundResult{
		MatchID: "test-match-id",
		Round:   3,
		Standings: []models.RoundStanding{
			{ParticipantID: "bot-1", ParticipantName: "Bot 1 (outbid)", Index: 1, Rank: 0, Donated: decimal.NewFromInt(12), Damage: 0, HealthAfter: 9},
			{ParticipantID: "human", ParticipantName: "You", Index: 0, Rank: 1, Donated: decimal.RequireFromString("4.5"), Damage: 1, HealthAfter: 6},
			{ParticipantID: "bot-2", ParticipantName: "Bot 2 (random)", Index: 2, Rank: 2, Donated: decimal.Zero, Damage: 2, HealthAfter: 0, Eliminated: true},
		},
		Phase: models.MatchPhaseActive,
	}
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetRoundResultMessage() {
	output, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Result:  s.result,
		HumanID: "human",
	})
	s.Require().NoError(err)

	s.Equal("Round 3", output.Title)
	s.Equal("Ranked #2. That cost you 1 health.", output.Message)
	s.Equal(ToneEncouraging, output.Tone)
	s.Equal([]string{
		"#1 Bot 1 (outbid) donated 12.00 gold, took 0 damage (9 hp)",
		"#2 You donated 4.50 gold, took 1 damage (6 hp)",
		"#3 Bot 2 (random) donated 0.00 gold, took 2 damage (0 hp) and is out",
	}, output.Lines)
}

func (s *MessagingServiceTestSuite) TestGetRoundResultMessageTones() {
	s.Run("winner", func() {
		output, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{Result: s.result, HumanID: "bot-1"})
		s.Require().NoError(err)
		s.Equal(ToneCelebration, output.Tone)
		s.Equal("Top donor with 12.00 gold! Not a scratch on you.", output.Message)
	})

	s.Run("eliminated", func() {
		output, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{Result: s.result, HumanID: "bot-2"})
		s.Require().NoError(err)
		s.Equal(ToneWarning, output.Tone)
	})

	s.Run("low health", func() {
		s.result.Standings[1].HealthAfter = 2
		output, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{Result: s.result, HumanID: "human"})
		s.Require().NoError(err)
		s.Equal(ToneWarning, output.Tone)
		s.Contains(output.Message, "down to 2 health")
	})

	s.Run("not ranked", func() {
		output, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{Result: s.result, HumanID: "ghost"})
		s.Require().NoError(err)
		s.Equal(ToneNeutral, output.Tone)
	})

	s.Run("nil input", func() {
		_, err := s.service.GetRoundResultMessage(s.ctx, nil)
		s.ErrorIs(err, ErrNilInput)
	})
}

func (s *MessagingServiceTestSuite) TestGetRoundResultMessagePet() {
	s.result.Standings[1].HealthAfter = 7
	s.result.Standings[1].PetAbsorbed = true
	s.result.Standings[0].PetLoot = decimal.NewFromInt(25)

	output, err := s.service.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Result:  s.result,
		HumanID: "human",
	})
	s.Require().NoError(err)

	s.Equal(ToneWarning, output.Tone)
	s.Contains(output.Message, "your pet took the hit")
	s.Equal("#1 Bot 1 (outbid) donated 12.00 gold, took 0 damage (9 hp), pet found 25.00 gold", output.Lines[0])
	s.Equal("#2 You donated 4.50 gold, pet took 1 damage (7 hp)", output.Lines[1])
}

func (s *MessagingServiceTestSuite) TestGetOutcomeMessage() {
	testCases := []struct {
		name    string
		input   *GetOutcomeMessageInput
		title   string
		message string
		tone    MessageTone
	}{
		{
			name: "human wins on round limit",
			input: &GetOutcomeMessageInput{
				Outcome:    &models.MatchOutcome{Reason: models.OutcomeReasonRoundLimit, WinnerID: "human", HumanWon: true, RoundsPlayed: 10},
				WinnerName: "You",
			},
			title:   "Victory!",
			message: "You outlasted them all over 10 rounds. Champion of the Minefest!",
			tone:    ToneCelebration,
		},
		{
			name: "human last standing",
			input: &GetOutcomeMessageInput{
				Outcome: &models.MatchOutcome{Reason: models.OutcomeReasonLastStanding, WinnerID: "human", HumanWon: true, RoundsPlayed: 6},
			},
			title:   "Victory!",
			message: "Everyone else ran dry after 6 rounds. The festival is yours!",
			tone:    ToneCelebration,
		},
		{
			name: "human eliminated",
			input: &GetOutcomeMessageInput{
				Outcome:    &models.MatchOutcome{Reason: models.OutcomeReasonHumanEliminated, WinnerID: "bot-1", RoundsPlayed: 4},
				WinnerName: "Bot 1 (economist)",
			},
			title:   "Game Over",
			message: "You were eliminated in round 4. Bot 1 (economist) takes the festival.",
			tone:    ToneNeutral,
		},
		{
			name: "bot healthiest at round limit",
			input: &GetOutcomeMessageInput{
				Outcome:    &models.MatchOutcome{Reason: models.OutcomeReasonRoundLimit, WinnerID: "bot-2", RoundsPlayed: 10},
				WinnerName: "Bot 2 (balanced)",
			},
			title:   "Game Over",
			message: "Time's up after 10 rounds. Bot 2 (balanced) finished healthiest.",
			tone:    ToneNeutral,
		},
		{
			name: "nobody left",
			input: &GetOutcomeMessageInput{
				Outcome: &models.MatchOutcome{Reason: models.OutcomeReasonLastStanding, RoundsPlayed: 3},
			},
			title:   "Game Over",
			message: "Nobody is the last one standing after 3 rounds.",
			tone:    ToneNeutral,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetOutcomeMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.title, output.Title)
			s.Equal(tc.message, output.Message)
			s.Equal(tc.tone, output.Tone)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetUpgradeMessage() {
	output, err := s.service.GetUpgradeMessage(s.ctx, &GetUpgradeMessageInput{
		Upgrade: models.UpgradeMine,
		Level:   2,
		Cost:    decimal.NewFromInt(135),
	})
	s.Require().NoError(err)
	s.Equal("Mine upgraded to level 2 for 135 gold. Every swing yields more.", output.Message)

	_, err = s.service.GetUpgradeMessage(s.ctx, &GetUpgradeMessageInput{Upgrade: "shovel"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		name    string
		err     error
		message string
		tone    MessageTone
	}{
		{"insufficient funds", models.ErrInsufficientFunds, "Not enough gold.", ToneFunny},
		{"wrapped insufficient funds", fmt.Errorf("upgrade failed: %w", models.ErrInsufficientFunds), "Not enough gold.", ToneFunny},
		{"max level", models.ErrMaxLevel, "That's already maxed out.", ToneFunny},
		{"invalid amount", models.ErrInvalidAmount, "That amount doesn't make sense.", ToneFunny},
		{"invalid state", fmt.Errorf("%w: match is game_over", models.ErrInvalidState), "You can't do that right now.", ToneFunny},
		{"unknown participant", models.ErrUnknownParticipant, "Who? That miner isn't in this match.", ToneFunny},
		{"unexpected", fmt.Errorf("boom"), "Something went wrong down in the mine.", ToneNeutral},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.Equal(tc.message, output.Message)
			s.Equal(tc.tone, output.Tone)
		})
	}
}
