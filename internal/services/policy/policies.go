package policy

import (
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/models"
)

// maxUpgradesPerRound bounds how many upgrades a single decision may buy
const maxUpgradesPerRound = 8

// Economist invests in whichever tool trails and keeps donations small, unless
// it is close to elimination
func Economist(bot models.Participant, snapshot *models.MatchSnapshot, env *Env) Decision {
	b := newBudget(bot, env.Schedule)

	if bot.Health < 3 {
		return b.decide(b.gold, "critical health, donating everything")
	}

	for bought := 0; bought < maxUpgradesPerRound && b.buyLowest(); bought++ {
	}

	return b.decide(b.share(pct("0.1")), "investing, donating 10%")
}

// Aggressive buys at most one upgrade a round and donates most of its gold
func Aggressive(bot models.Participant, snapshot *models.MatchSnapshot, env *Env) Decision {
	b := newBudget(bot, env.Schedule)

	if snapshot.Round <= 2 && !hasUpgrades(bot) {
		b.buy(models.UpgradePickaxe)
	} else if env.Roller.Roll(2) == 1 {
		b.buyFirst(models.UpgradePickaxe, models.UpgradeMine)
	} else {
		b.buyFirst(models.UpgradeMine, models.UpgradePickaxe)
	}

	switch {
	case bot.Health < 3:
		return b.decide(b.share(pct("0.9")), "critical health, donating 90%")
	case bot.Health < 5:
		return b.decide(b.share(pct("0.5")), "low health, donating 50%")
	default:
		return b.decide(b.share(pct("0.7")), "donating 70%")
	}
}

// Balanced keeps its tools level and donates a moderate share
func Balanced(bot models.Participant, snapshot *models.MatchSnapshot, env *Env) Decision {
	b := newBudget(bot, env.Schedule)

	if snapshot.Round == 1 && !hasUpgrades(bot) {
		b.buy(models.UpgradePickaxe)
	} else {
		for i := 0; i < 2; i++ {
			if !balancedUpgrade(b, env) {
				break
			}
		}
	}

	if bot.Health < 3 {
		return b.decide(b.share(pct("0.9")), "critical health, donating 90%")
	}
	return b.decide(b.share(pct("0.3")), "donating 30%")
}

func balancedUpgrade(b *budget, env *Env) bool {
	switch {
	case b.pickaxe < b.mine && b.canBuy(models.UpgradePickaxe):
		return b.buy(models.UpgradePickaxe)
	case b.mine < b.pickaxe && b.canBuy(models.UpgradeMine):
		return b.buy(models.UpgradeMine)
	case b.pickaxe == b.mine:
		if env.Roller.Roll(2) == 1 {
			return b.buy(models.UpgradePickaxe)
		}
		return b.buy(models.UpgradeMine)
	}
	return false
}

// Random picks one upgrade and a donation share by chance
func Random(bot models.Participant, snapshot *models.MatchSnapshot, env *Env) Decision {
	b := newBudget(bot, env.Schedule)

	if env.Roller.Roll(2) == 1 {
		b.buy(models.UpgradePickaxe)
	} else {
		b.buy(models.UpgradeMine)
	}

	share := env.Roller.Fraction(pct("0.1"), pct("0.4"))

	return b.decide(b.share(share), "donating "+share.Shift(2).String()+"%")
}

// Outbid watches what its rivals have already donated this round and tops the
// highest by one gold when it can
func Outbid(bot models.Participant, snapshot *models.MatchSnapshot, env *Env) Decision {
	b := newBudget(bot, env.Schedule)

	highest := decimal.Zero
	for _, rival := range snapshot.Rivals(bot.ID) {
		if rival.DonatedThisRound.GreaterThan(highest) {
			highest = rival.DonatedThisRound
		}
	}
	target := highest.Add(decimal.NewFromInt(1))

	if target.GreaterThan(b.gold) {
		return b.decide(b.share(pct("0.5")), "cannot outbid, donating 50%")
	}

	if bot.Health >= 5 {
		for _, upgrade := range []models.Upgrade{models.UpgradePickaxe, models.UpgradeMine} {
			cost, ok := b.cost(upgrade)
			if ok && b.gold.Sub(cost).GreaterThanOrEqual(target) {
				b.buy(upgrade)
				break
			}
		}
	}

	return b.decide(target, "outbidding the top donor")
}
