package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/models"
)

// Service converts elapsed simulated time into mined gold
type Service interface {
	// Accrue credits the participant with the gold mined over elapsed and returns the amount
	Accrue(participant *models.Participant, elapsed time.Duration) (decimal.Decimal, error)

	// Preview returns the gold the participant would mine over elapsed without crediting it
	Preview(participant *models.Participant, elapsed time.Duration) decimal.Decimal
}
