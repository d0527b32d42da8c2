// Package economy holds the configurable curves that turn equipment levels into
// mining income and upgrade prices.
package economy

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/models"
)

// Schedule defines mining rate, yield and upgrade cost per level.
//
// Rate and yield are linear in level; costs grow geometrically. Validate keeps
// every curve non-decreasing in level.
type Schedule struct {
	// BaseRate is gold mined per second at pickaxe level 0
	BaseRate decimal.Decimal

	// RatePerLevel is added to the rate for each pickaxe level
	RatePerLevel decimal.Decimal

	// BaseYield is the yield multiplier at mine level 0
	BaseYield decimal.Decimal

	// YieldPerLevel is added to the yield for each mine level
	YieldPerLevel decimal.Decimal

	// PickaxeBaseCost is the price of the first pickaxe upgrade
	PickaxeBaseCost decimal.Decimal

	// MineBaseCost is the price of the first mine upgrade
	MineBaseCost decimal.Decimal

	// CostGrowth multiplies the price for each level already owned
	CostGrowth decimal.Decimal

	// MaxLevel caps both upgrades; 0 means uncapped
	MaxLevel int

	// PetCost is the price of unlocking the pet
	PetCost decimal.Decimal

	// PetMiningRate is gold per second added while the pet mines
	PetMiningRate decimal.Decimal

	// PetLootSides is the die a searching pet rolls each round; it finds loot on
	// the highest face. 0 disables searching.
	PetLootSides int

	// PetLootReward is the gold a searching pet finds
	PetLootReward decimal.Decimal
}

// Default returns the standard schedule
func Default() *Schedule {
	return &Schedule{
		BaseRate:        decimal.NewFromInt(1),
		RatePerLevel:    decimal.RequireFromString("0.5"),
		BaseYield:       decimal.NewFromInt(1),
		YieldPerLevel:   decimal.RequireFromString("0.5"),
		PickaxeBaseCost: decimal.NewFromInt(50),
		MineBaseCost:    decimal.NewFromInt(75),
		CostGrowth:      decimal.RequireFromString("1.8"),
		MaxLevel:        4,
		PetCost:         decimal.NewFromInt(1000),
		PetMiningRate:   decimal.RequireFromString("0.5"),
		PetLootSides:    6,
		PetLootReward:   decimal.NewFromInt(25),
	}
}

// Validate checks that the curves are monotonic and non-negative
func (s *Schedule) Validate() error {
	if s.BaseRate.IsNegative() || s.RatePerLevel.IsNegative() {
		return errors.New("rate curve cannot be negative")
	}

	if s.BaseYield.IsNegative() || s.YieldPerLevel.IsNegative() {
		return errors.New("yield curve cannot be negative")
	}

	if s.PickaxeBaseCost.IsNegative() || s.MineBaseCost.IsNegative() {
		return errors.New("upgrade cost cannot be negative")
	}

	if s.CostGrowth.LessThan(decimal.NewFromInt(1)) {
		return errors.New("cost growth must be at least 1")
	}

	if s.MaxLevel < 0 {
		return errors.New("max level cannot be negative")
	}

	if s.PetCost.IsNegative() || s.PetMiningRate.IsNegative() || s.PetLootReward.IsNegative() {
		return errors.New("pet values cannot be negative")
	}

	if s.PetLootSides < 0 {
		return errors.New("pet loot die cannot have negative sides")
	}

	return nil
}

// Rate returns gold per second for a pickaxe level
func (s *Schedule) Rate(level int) decimal.Decimal {
	return s.BaseRate.Add(s.RatePerLevel.Mul(decimal.NewFromInt(int64(clampLevel(level)))))
}

// Yield returns the yield multiplier for a mine level
func (s *Schedule) Yield(level int) decimal.Decimal {
	return s.BaseYield.Add(s.YieldPerLevel.Mul(decimal.NewFromInt(int64(clampLevel(level)))))
}

// Income returns gold per second for a participant's current equipment,
// including a mining pet
func (s *Schedule) Income(p *models.Participant) decimal.Decimal {
	income := s.Rate(p.PickaxeLevel).Mul(s.Yield(p.MineLevel))
	if p.Pet.IsMining() {
		income = income.Add(s.PetMiningRate)
	}
	return income
}

// Cost returns the price of raising an upgrade from the given level
func (s *Schedule) Cost(upgrade models.Upgrade, level int) decimal.Decimal {
	base := s.PickaxeBaseCost
	if upgrade == models.UpgradeMine {
		base = s.MineBaseCost
	}

	growth := s.CostGrowth.Pow(decimal.NewFromInt(int64(clampLevel(level))))

	return base.Mul(growth).Round(0)
}

// CanUpgrade reports whether the level is below the cap
func (s *Schedule) CanUpgrade(level int) bool {
	return s.MaxLevel == 0 || level < s.MaxLevel
}

// NextCost returns the price of the participant's next upgrade and whether one is available
func (s *Schedule) NextCost(p *models.Participant, upgrade models.Upgrade) (decimal.Decimal, bool) {
	level := p.Level(upgrade)
	if !s.CanUpgrade(level) {
		return decimal.Zero, false
	}
	return s.Cost(upgrade, level), true
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	return level
}
