package dice

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/minefest/internal/dice Roller

// Roller is the only source of randomness bots are allowed to use
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int

	// Fraction returns a value in [low, high) with two decimal places
	Fraction(low, high decimal.Decimal) decimal.Decimal
}

// SeededRoller provides reproducible dice rolls
type SeededRoller struct {
	seed   int64
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed; zero seeds from the current time
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &SeededRoller{
		seed:   seed,
		random: random,
	}
}

// Seed returns the seed the roller was created with, for replaying a match
func (r *SeededRoller) Seed() int64 {
	return r.seed
}

// Roll generates a random dice roll with the specified number of sides
func (r *SeededRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Fraction picks a value between low and high
func (r *SeededRoller) Fraction(low, high decimal.Decimal) decimal.Decimal {
	if high.LessThanOrEqual(low) {
		return low
	}

	span := high.Sub(low)
	picked := low.Add(span.Mul(decimal.NewFromFloat(r.random.Float64()))).Truncate(2)
	if picked.GreaterThanOrEqual(high) {
		return low
	}

	return picked
}
