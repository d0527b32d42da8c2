package dice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoll_StaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 200; i++ {
		value := roller.Roll(2)
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 2)
	}
}

func TestRoll_DefaultsToSixSides(t *testing.T) {
	roller := New(&Config{Seed: 7})

	for i := 0; i < 200; i++ {
		value := roller.Roll(0)
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 6)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 1234})
	b := New(&Config{Seed: 1234})

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(6), b.Roll(6))
		assert.True(t, a.Fraction(decimal.Zero, decimal.NewFromInt(1)).Equal(b.Fraction(decimal.Zero, decimal.NewFromInt(1))))
	}
}

func TestFraction_StaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 99})
	min := decimal.RequireFromString("0.1")
	max := decimal.RequireFromString("0.4")

	for i := 0; i < 200; i++ {
		value := roller.Fraction(min, max)
		assert.True(t, value.GreaterThanOrEqual(min), value.String())
		assert.True(t, value.LessThan(max), value.String())
	}
}

func TestFraction_EmptyRange(t *testing.T) {
	roller := New(&Config{Seed: 5})
	value := decimal.RequireFromString("0.3")

	assert.True(t, roller.Fraction(value, value).Equal(value))
}

func TestNew_RecordsSeed(t *testing.T) {
	assert.Equal(t, int64(77), New(&Config{Seed: 77}).Seed())
	assert.NotZero(t, New(nil).Seed())
}
