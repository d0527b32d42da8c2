package economy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/minefest/internal/models"
)

func TestDefaultScheduleIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestScheduleCurvesAreMonotonic(t *testing.T) {
	s := Default()

	for level := 0; level < 10; level++ {
		assert.True(t, s.Rate(level+1).GreaterThanOrEqual(s.Rate(level)), "rate at level %d", level)
		assert.True(t, s.Yield(level+1).GreaterThanOrEqual(s.Yield(level)), "yield at level %d", level)
		assert.True(t, s.Cost(models.UpgradePickaxe, level+1).GreaterThanOrEqual(s.Cost(models.UpgradePickaxe, level)))
		assert.True(t, s.Cost(models.UpgradeMine, level+1).GreaterThanOrEqual(s.Cost(models.UpgradeMine, level)))
	}
}

func TestScheduleCosts(t *testing.T) {
	s := Default()

	assert.True(t, s.Cost(models.UpgradePickaxe, 0).Equal(decimal.NewFromInt(50)))
	assert.True(t, s.Cost(models.UpgradePickaxe, 1).Equal(decimal.NewFromInt(90)))
	assert.True(t, s.Cost(models.UpgradeMine, 0).Equal(decimal.NewFromInt(75)))
	assert.True(t, s.Cost(models.UpgradeMine, 2).Equal(decimal.NewFromInt(243)))
}

func TestScheduleNextCost_RespectsMaxLevel(t *testing.T) {
	s := Default()
	p := models.NewParticipant("p1", "Miner", 0, false, 10)
	p.PickaxeLevel = 4

	_, ok := s.NextCost(p, models.UpgradePickaxe)
	assert.False(t, ok)

	cost, ok := s.NextCost(p, models.UpgradeMine)
	assert.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromInt(75)))
}

func TestScheduleValidate_RejectsShrinkingCosts(t *testing.T) {
	s := Default()
	s.CostGrowth = decimal.RequireFromString("0.9")

	assert.Error(t, s.Validate())
}

func TestScheduleValidate_RejectsNegativeRate(t *testing.T) {
	s := Default()
	s.RatePerLevel = decimal.NewFromInt(-1)

	assert.Error(t, s.Validate())
}

func TestScheduleIncome_MiningPet(t *testing.T) {
	s := Default()
	p := models.NewParticipant("p1", "Miner", 0, true, 10)

	assert.True(t, s.Income(p).Equal(decimal.NewFromInt(1)))

	p.Pet.Unlocked = true
	require.NoError(t, p.Pet.ToggleMining())
	assert.True(t, s.Income(p).Equal(decimal.RequireFromString("1.5")))

	require.NoError(t, p.Pet.ToggleSearching())
	assert.True(t, s.Income(p).Equal(decimal.NewFromInt(1)))

	require.NoError(t, p.Pet.ToggleMining())
	p.Pet.TakeHit()
	assert.True(t, s.Income(p).Equal(decimal.NewFromInt(1)))
}

func TestScheduleValidate_PetValues(t *testing.T) {
	s := Default()
	s.PetCost = decimal.NewFromInt(-1)
	assert.Error(t, s.Validate())

	s = Default()
	s.PetLootSides = -1
	assert.Error(t, s.Validate())
}
