package policy

import (
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/dice"
	"github.com/KirkDiggler/minefest/internal/economy"
	"github.com/KirkDiggler/minefest/internal/models"
)

// Func decides a bot's upgrades and donation for the round that is ending.
//
// bot is a copy of the deciding bot; snapshot is the match as every bot sees it
// at the round boundary. All randomness must come from env.Roller.
type Func func(bot models.Participant, snapshot *models.MatchSnapshot, env *Env) Decision

// Env is what a policy may consult besides the match itself
type Env struct {
	// Schedule prices the upgrades
	Schedule *economy.Schedule

	// Roller is the seeded randomness source
	Roller dice.Roller
}

// Decision is a bot's end-of-round commitment
type Decision struct {
	// Upgrades are bought in order, before donating
	Upgrades []models.Upgrade

	// Donate is taken from what is left after the upgrades
	Donate decimal.Decimal

	// Reason is a short human-readable explanation
	Reason string
}
