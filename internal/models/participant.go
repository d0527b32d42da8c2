package models

import (
	"github.com/shopspring/decimal"
)

// Upgrade names a piece of equipment a participant can improve
type Upgrade string

const (
	// UpgradePickaxe raises the mining rate
	UpgradePickaxe Upgrade = "pickaxe"

	// UpgradeMine raises the yield of each mining operation
	UpgradeMine Upgrade = "mine"
)

// Participant is one economic actor in a match, either the human player or a bot
type Participant struct {
	// ID is the unique identifier for the participant
	ID string

	// Name is the display name of the participant
	Name string

	// Index is the participant's position in the match's initial order
	Index int

	// IsHuman is true for the player controlled through the UI
	IsHuman bool

	// Policy is the name of the decision policy driving a bot
	Policy string

	// Health is the remaining health, in [0, MaxHealth]
	Health int

	// MaxHealth is the health the participant started with
	MaxHealth int

	// Gold is the current balance
	Gold decimal.Decimal

	// TotalEarned is all gold ever credited to the participant
	TotalEarned decimal.Decimal

	// PickaxeLevel affects how fast gold is mined
	PickaxeLevel int

	// MineLevel affects how much gold each mining operation yields
	MineLevel int

	// DonatedThisRound is the amount donated since the round started
	DonatedThisRound decimal.Decimal

	// Eliminated is set once health reaches zero
	Eliminated bool

	// RoundsWon counts the rounds this participant finished ranked first
	RoundsWon int

	// Pet is the participant's companion, locked until bought
	Pet Pet
}

// NewParticipant creates a participant at full health with no gold
func NewParticipant(id, name string, index int, isHuman bool, maxHealth int) *Participant {
	return &Participant{
		ID:               id,
		Name:             name,
		Index:            index,
		IsHuman:          isHuman,
		Health:           maxHealth,
		MaxHealth:        maxHealth,
		Gold:             decimal.Zero,
		TotalEarned:      decimal.Zero,
		DonatedThisRound: decimal.Zero,
		Pet:              NewPet(),
	}
}

// Credit adds gold to the balance
func (p *Participant) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	p.Gold = p.Gold.Add(amount)
	p.TotalEarned = p.TotalEarned.Add(amount)

	return nil
}

// Donate moves gold from the balance into this round's donation
func (p *Participant) Donate(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(p.Gold) {
		return ErrInsufficientFunds
	}

	p.Gold = p.Gold.Sub(amount)
	p.DonatedThisRound = p.DonatedThisRound.Add(amount)

	return nil
}

// ApplyDamage lowers health, clamped at zero, and eliminates at zero
func (p *Participant) ApplyDamage(amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		p.Eliminated = true
	}

	return nil
}

// UpgradePickaxe charges cost and raises the pickaxe level by one
func (p *Participant) UpgradePickaxe(cost decimal.Decimal) error {
	if err := p.charge(cost); err != nil {
		return err
	}

	p.PickaxeLevel++

	return nil
}

// UpgradeMine charges cost and raises the mine level by one
func (p *Participant) UpgradeMine(cost decimal.Decimal) error {
	if err := p.charge(cost); err != nil {
		return err
	}

	p.MineLevel++

	return nil
}

// UnlockPet charges cost and unlocks the pet. A pet can be bought once per match.
func (p *Participant) UnlockPet(cost decimal.Decimal) error {
	if p.Pet.Unlocked {
		return ErrInvalidState
	}

	if err := p.charge(cost); err != nil {
		return err
	}

	p.Pet.Unlocked = true

	return nil
}

// Level returns the participant's current level for an upgrade
func (p *Participant) Level(upgrade Upgrade) int {
	if upgrade == UpgradeMine {
		return p.MineLevel
	}
	return p.PickaxeLevel
}

// ResetRound clears the per-round donation
func (p *Participant) ResetRound() {
	p.DonatedThisRound = decimal.Zero
}

// Clone returns a copy safe to hand to read-only consumers
func (p *Participant) Clone() *Participant {
	c := *p
	return &c
}

func (p *Participant) charge(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return ErrInvalidAmount
	}

	if cost.GreaterThan(p.Gold) {
		return ErrInsufficientFunds
	}

	p.Gold = p.Gold.Sub(cost)

	return nil
}
