package accrual

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/economy"
	"github.com/KirkDiggler/minefest/internal/models"
)

// ErrNilSchedule is returned when the service is created without an economy schedule
var ErrNilSchedule = errors.New("economy schedule cannot be nil")

// Config holds configuration for the accrual service
type Config struct {
	// Schedule supplies the rate and yield curves
	Schedule *economy.Schedule
}

type service struct {
	schedule *economy.Schedule
}

// New creates a new accrual service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Schedule == nil {
		return nil, ErrNilSchedule
	}

	if err := cfg.Schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}

	return &service{
		schedule: cfg.Schedule,
	}, nil
}

// Accrue credits rate(pickaxe) x seconds x yield(mine) to the participant
func (s *service) Accrue(participant *models.Participant, elapsed time.Duration) (decimal.Decimal, error) {
	if participant == nil {
		return decimal.Zero, models.ErrUnknownParticipant
	}

	if elapsed < 0 {
		return decimal.Zero, models.ErrInvalidAmount
	}

	if elapsed == 0 || participant.Eliminated {
		return decimal.Zero, nil
	}

	mined := s.Preview(participant, elapsed)
	if err := participant.Credit(mined); err != nil {
		return decimal.Zero, fmt.Errorf("failed to credit %s: %w", participant.ID, err)
	}

	return mined, nil
}

// Preview computes mined gold from the exact elapsed duration
func (s *service) Preview(participant *models.Participant, elapsed time.Duration) decimal.Decimal {
	if elapsed <= 0 || participant == nil || participant.Eliminated {
		return decimal.Zero
	}

	seconds := decimal.New(int64(elapsed), -9)

	return s.schedule.Income(participant).Mul(seconds)
}
