package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ParticipantTestSuite struct {
	suite.Suite
	participant *Participant
}

func (s *ParticipantTestSuite) SetupTest() {
	s.participant = NewParticipant("test-participant-id", "Test Miner", 0, true, 10)
}

func TestParticipantTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantTestSuite))
}

func (s *ParticipantTestSuite) TestCredit() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(25)))
	s.Require().NoError(s.participant.Credit(decimal.RequireFromString("0.5")))

	s.True(s.participant.Gold.Equal(decimal.RequireFromString("25.5")))
	s.True(s.participant.TotalEarned.Equal(decimal.RequireFromString("25.5")))
}

func (s *ParticipantTestSuite) TestCredit_NegativeAmount() {
	err := s.participant.Credit(decimal.NewFromInt(-1))

	s.ErrorIs(err, ErrInvalidAmount)
	s.True(s.participant.Gold.IsZero())
}

func (s *ParticipantTestSuite) TestDonate() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(100)))

	s.Require().NoError(s.participant.Donate(decimal.NewFromInt(40)))

	s.True(s.participant.Gold.Equal(decimal.NewFromInt(60)))
	s.True(s.participant.DonatedThisRound.Equal(decimal.NewFromInt(40)))
}

func (s *ParticipantTestSuite) TestDonate_InsufficientFundsLeavesStateUnchanged() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(10)))
	s.Require().NoError(s.participant.Donate(decimal.NewFromInt(4)))

	err := s.participant.Donate(decimal.RequireFromString("6.01"))

	s.ErrorIs(err, ErrInsufficientFunds)
	s.True(s.participant.Gold.Equal(decimal.NewFromInt(6)))
	s.True(s.participant.DonatedThisRound.Equal(decimal.NewFromInt(4)))
}

func (s *ParticipantTestSuite) TestDonate_EntireBalance() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(10)))

	s.Require().NoError(s.participant.Donate(decimal.NewFromInt(10)))

	s.True(s.participant.Gold.IsZero())
	s.True(s.participant.DonatedThisRound.LessThanOrEqual(s.participant.TotalEarned))
}

func (s *ParticipantTestSuite) TestDonate_NegativeAmount() {
	s.ErrorIs(s.participant.Donate(decimal.NewFromInt(-5)), ErrInvalidAmount)
}

func (s *ParticipantTestSuite) TestApplyDamage() {
	s.Require().NoError(s.participant.ApplyDamage(3))

	s.Equal(7, s.participant.Health)
	s.False(s.participant.Eliminated)
}

func (s *ParticipantTestSuite) TestApplyDamage_ClampsAndEliminates() {
	s.Require().NoError(s.participant.ApplyDamage(25))

	s.Equal(0, s.participant.Health)
	s.True(s.participant.Eliminated)
}

func (s *ParticipantTestSuite) TestApplyDamage_Negative() {
	s.ErrorIs(s.participant.ApplyDamage(-1), ErrInvalidAmount)
	s.Equal(10, s.participant.Health)
}

func (s *ParticipantTestSuite) TestUpgrades() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(200)))

	s.Require().NoError(s.participant.UpgradePickaxe(decimal.NewFromInt(50)))
	s.Require().NoError(s.participant.UpgradeMine(decimal.NewFromInt(75)))

	s.Equal(1, s.participant.PickaxeLevel)
	s.Equal(1, s.participant.MineLevel)
	s.Equal(1, s.participant.Level(UpgradeMine))
	s.True(s.participant.Gold.Equal(decimal.NewFromInt(75)))
}

func (s *ParticipantTestSuite) TestUpgrade_InsufficientFunds() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(49)))

	err := s.participant.UpgradePickaxe(decimal.NewFromInt(50))

	s.ErrorIs(err, ErrInsufficientFunds)
	s.Equal(0, s.participant.PickaxeLevel)
	s.True(s.participant.Gold.Equal(decimal.NewFromInt(49)))
}

func (s *ParticipantTestSuite) TestResetRound() {
	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(10)))
	s.Require().NoError(s.participant.Donate(decimal.NewFromInt(10)))

	s.participant.ResetRound()

	s.True(s.participant.DonatedThisRound.IsZero())
}

func (s *ParticipantTestSuite) TestClone_IsIndependent() {
	clone := s.participant.Clone()
	clone.Health = 1

	s.Equal(10, s.participant.Health)
}

func (s *ParticipantTestSuite) TestRoundResultClone_IsIndependent() {
	result := &RoundResult{
		MatchID:   "test-match-id",
		Round:     1,
		Standings: []RoundStanding{{ParticipantID: s.participant.ID, Rank: 0}},
		Outcome:   &MatchOutcome{Reason: OutcomeReasonRoundLimit, WinnerID: s.participant.ID},
	}

	clone := result.Clone()
	clone.Standings[0].Rank = 3
	clone.Outcome.WinnerID = "other"

	s.Equal(0, result.Standings[0].Rank)
	s.Equal(s.participant.ID, result.Outcome.WinnerID)
	s.Nil((&RoundResult{}).Clone().Outcome)
}

func (s *ParticipantTestSuite) TestUnlockPet() {
	s.ErrorIs(s.participant.UnlockPet(decimal.NewFromInt(1000)), ErrInsufficientFunds)
	s.False(s.participant.Pet.Unlocked)

	s.Require().NoError(s.participant.Credit(decimal.NewFromInt(1200)))
	s.Require().NoError(s.participant.UnlockPet(decimal.NewFromInt(1000)))

	s.True(s.participant.Pet.Active())
	s.Equal(PetActivityIdle, s.participant.Pet.Activity)
	s.True(s.participant.Gold.Equal(decimal.NewFromInt(200)))

	s.ErrorIs(s.participant.UnlockPet(decimal.Zero), ErrInvalidState)
}

func (s *ParticipantTestSuite) TestPet_Toggles() {
	s.ErrorIs(s.participant.Pet.ToggleMining(), ErrInvalidState)

	s.participant.Pet.Unlocked = true

	s.Require().NoError(s.participant.Pet.ToggleMining())
	s.True(s.participant.Pet.IsMining())

	s.Require().NoError(s.participant.Pet.ToggleSearching())
	s.True(s.participant.Pet.IsSearching())
	s.False(s.participant.Pet.IsMining())

	s.Require().NoError(s.participant.Pet.ToggleSearching())
	s.Equal(PetActivityIdle, s.participant.Pet.Activity)
}

func (s *ParticipantTestSuite) TestPet_TakesOneHit() {
	s.False(s.participant.Pet.TakeHit())

	s.participant.Pet.Unlocked = true
	s.Require().NoError(s.participant.Pet.ToggleMining())

	s.True(s.participant.Pet.TakeHit())
	s.False(s.participant.Pet.Alive)
	s.Equal(PetActivityIdle, s.participant.Pet.Activity)

	s.False(s.participant.Pet.TakeHit())
	s.ErrorIs(s.participant.Pet.ToggleSearching(), ErrInvalidState)
}
