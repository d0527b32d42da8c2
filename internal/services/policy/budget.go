package policy

import (
	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/economy"
	"github.com/KirkDiggler/minefest/internal/models"
)

// budget tracks a bot's balance and levels while a decision is being built, so
// that the donation is always taken from what the upgrades leave behind
type budget struct {
	schedule *economy.Schedule
	gold     decimal.Decimal
	pickaxe  int
	mine     int
	bought   []models.Upgrade
}

func newBudget(bot models.Participant, schedule *economy.Schedule) *budget {
	return &budget{
		schedule: schedule,
		gold:     bot.Gold,
		pickaxe:  bot.PickaxeLevel,
		mine:     bot.MineLevel,
	}
}

func (b *budget) level(upgrade models.Upgrade) int {
	if upgrade == models.UpgradeMine {
		return b.mine
	}
	return b.pickaxe
}

func (b *budget) cost(upgrade models.Upgrade) (decimal.Decimal, bool) {
	level := b.level(upgrade)
	if !b.schedule.CanUpgrade(level) {
		return decimal.Zero, false
	}
	return b.schedule.Cost(upgrade, level), true
}

func (b *budget) canBuy(upgrade models.Upgrade) bool {
	cost, ok := b.cost(upgrade)
	return ok && cost.LessThanOrEqual(b.gold)
}

// buy deducts the upgrade's cost if it is available and affordable
func (b *budget) buy(upgrade models.Upgrade) bool {
	if !b.canBuy(upgrade) {
		return false
	}

	cost, _ := b.cost(upgrade)
	b.gold = b.gold.Sub(cost)
	if upgrade == models.UpgradeMine {
		b.mine++
	} else {
		b.pickaxe++
	}
	b.bought = append(b.bought, upgrade)

	return true
}

// buyFirst buys the first upgrade in order that is affordable
func (b *budget) buyFirst(order ...models.Upgrade) bool {
	for _, upgrade := range order {
		if b.buy(upgrade) {
			return true
		}
	}
	return false
}

// buyLowest upgrades whichever level trails, pickaxe first on a tie
func (b *budget) buyLowest() bool {
	if b.mine < b.pickaxe {
		return b.buyFirst(models.UpgradeMine, models.UpgradePickaxe)
	}
	return b.buyFirst(models.UpgradePickaxe, models.UpgradeMine)
}

// share returns a fraction of the remaining gold, truncated to cents
func (b *budget) share(fraction decimal.Decimal) decimal.Decimal {
	return b.gold.Mul(fraction).Truncate(2)
}

func (b *budget) decide(donate decimal.Decimal, reason string) Decision {
	if donate.IsNegative() {
		donate = decimal.Zero
	}
	if donate.GreaterThan(b.gold) {
		donate = b.gold
	}

	return Decision{
		Upgrades: b.bought,
		Donate:   donate,
		Reason:   reason,
	}
}

func hasUpgrades(bot models.Participant) bool {
	return bot.PickaxeLevel > 0 || bot.MineLevel > 0
}

func pct(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
