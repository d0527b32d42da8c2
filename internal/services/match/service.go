package match

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/minefest/internal/common/clock"
	"github.com/KirkDiggler/minefest/internal/common/uuid"
	"github.com/KirkDiggler/minefest/internal/dice"
	"github.com/KirkDiggler/minefest/internal/economy"
	"github.com/KirkDiggler/minefest/internal/models"
	roundResultRepo "github.com/KirkDiggler/minefest/internal/repositories/round_result"
	"github.com/KirkDiggler/minefest/internal/services/accrual"
	"github.com/KirkDiggler/minefest/internal/services/policy"
	"github.com/KirkDiggler/minefest/internal/services/resolver"
)

const defaultHumanName = "You"

// service implements the Service interface
type service struct {
	rules       models.Rules
	schedule    *economy.Schedule
	botPolicies []string
	policies    map[string]policy.Func
	humanName   string

	accrual       accrual.Service
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	recorder      roundResultRepo.Repository
	logger        *log.Logger

	// busy is held for the duration of every mutating call
	busy  atomic.Bool
	match *models.Match
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Schedule == nil {
		return nil, ErrNilSchedule
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules
	if rules == (models.Rules{}) {
		rules = models.DefaultRules()
	}
	if rules.MaxRounds < 1 || rules.RoundLength <= 0 || rules.MaxHealth < 1 || rules.BotCount < 1 {
		return nil, ErrInvalidRules
	}

	policies := cfg.Policies
	if policies == nil {
		policies = policy.Registry
	}

	botPolicies := cfg.BotPolicies
	if len(botPolicies) == 0 {
		botPolicies = policy.DefaultLineup
	}
	for _, name := range botPolicies {
		if _, ok := policies[name]; !ok {
			return nil, policy.ErrUnknownPolicy(name)
		}
	}

	accrualService := cfg.Accrual
	if accrualService == nil {
		var err error
		accrualService, err = accrual.New(&accrual.Config{Schedule: cfg.Schedule})
		if err != nil {
			return nil, fmt.Errorf("failed to create accrual service: %w", err)
		}
	}

	humanName := cfg.HumanName
	if humanName == "" {
		humanName = defaultHumanName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &service{
		rules:         rules,
		schedule:      cfg.Schedule,
		botPolicies:   botPolicies,
		policies:      policies,
		humanName:     humanName,
		accrual:       accrualService,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		recorder:      cfg.RoundRecorder,
		logger:        logger,
	}, nil
}

// acquire marks the service busy; a second caller while busy is re-entering
func (s *service) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: call made while another is in progress", models.ErrInvalidState)
	}
	return nil
}

func (s *service) release() {
	s.busy.Store(false)
}

// StartMatch creates a new match with one human and the configured bots
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	humanName := input.HumanName
	if humanName == "" {
		humanName = s.humanName
	}

	match := &models.Match{
		ID:           s.uuidGenerator.NewUUID(),
		Rules:        s.rules,
		Participants: make([]*models.Participant, 0, s.rules.BotCount+1),
		Round:        1,
		Phase:        models.MatchPhaseActive,
		StartedAt:    s.clock.Now(),
	}

	human := models.NewParticipant(s.uuidGenerator.NewUUID(), humanName, 0, true, s.rules.MaxHealth)
	match.Participants = append(match.Participants, human)

	for i := 0; i < s.rules.BotCount; i++ {
		policyName := s.botPolicies[i%len(s.botPolicies)]
		bot := models.NewParticipant(
			s.uuidGenerator.NewUUID(),
			fmt.Sprintf("Bot %d (%s)", i+1, policyName),
			i+1,
			false,
			s.rules.MaxHealth,
		)
		bot.Policy = policyName
		match.Participants = append(match.Participants, bot)
	}

	s.match = match
	s.logger.Printf("Started match %s with %d bots", match.ID, s.rules.BotCount)

	return &StartMatchOutput{
		MatchID:  match.ID,
		HumanID:  human.ID,
		Snapshot: match.Snapshot(),
	}, nil
}

// Advance accrues gold up to each round boundary it crosses, resolves that
// round, and carries the remaining time into the next one. It does nothing once
// the match is over.
func (s *service) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	match := s.match
	if match == nil {
		return nil, fmt.Errorf("%w: no match has been started", models.ErrInvalidState)
	}

	if input.Elapsed < 0 {
		return nil, models.ErrInvalidAmount
	}

	output := &AdvanceOutput{}
	remaining := input.Elapsed

	for match.Phase.IsActive() {
		step := remaining
		if left := match.Rules.RoundLength - match.RoundClock; step > left {
			step = left
		}

		for _, p := range match.Participants {
			if _, err := s.accrual.Accrue(p, step); err != nil {
				return nil, fmt.Errorf("failed to accrue gold for %s: %w", p.ID, err)
			}
		}

		match.RoundClock += step
		remaining -= step

		if !match.RoundElapsed() {
			break
		}

		result, err := s.endRound(ctx, match)
		if err != nil {
			return nil, err
		}
		output.Results = append(output.Results, result.Clone())

		if remaining == 0 {
			break
		}
	}

	output.Snapshot = match.Snapshot()

	return output, nil
}

// endRound lets every remaining bot commit, then resolves the round
func (s *service) endRound(ctx context.Context, match *models.Match) (*models.RoundResult, error) {
	match.Phase = models.MatchPhaseRoundTransition

	// Every bot decides from the same view of the round
	snapshot := match.Snapshot()
	env := &policy.Env{
		Schedule: s.schedule,
		Roller:   s.diceRoller,
	}

	for _, p := range match.Participants {
		if p.IsHuman || p.Eliminated {
			continue
		}
		s.runPolicy(p, snapshot, env)
	}

	loot := s.searchPets(match)

	round := match.Round
	result, err := resolver.Resolve(match, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve round %d: %w", round, err)
	}

	for id, found := range loot {
		if standing, ok := result.Standing(id); ok {
			standing.PetLoot = found
		}
	}

	if winner := result.Winner(); winner != nil {
		s.logger.Printf("Match %s round %d won by %s with %s gold", match.ID, round, winner.ParticipantName, winner.Donated.String())
	}
	if result.Outcome != nil {
		s.logger.Printf("Match %s over after %d rounds: %s", match.ID, result.Outcome.RoundsPlayed, result.Outcome.Reason)
	}

	s.record(ctx, result)

	return result, nil
}

// searchPets rolls for every searching pet and credits what it finds
func (s *service) searchPets(match *models.Match) map[string]decimal.Decimal {
	if s.schedule.PetLootSides < 1 {
		return nil
	}

	loot := make(map[string]decimal.Decimal)
	for _, p := range match.Participants {
		if p.Eliminated || !p.Pet.IsSearching() {
			continue
		}

		if s.diceRoller.Roll(s.schedule.PetLootSides) != s.schedule.PetLootSides {
			continue
		}

		if err := p.Credit(s.schedule.PetLootReward); err != nil {
			s.logger.Printf("WARNING: pet loot for %s failed: %v", p.ID, err)
			continue
		}
		loot[p.ID] = s.schedule.PetLootReward
		s.logger.Printf("Pet of %s found %s gold", p.ID, s.schedule.PetLootReward.String())
	}

	return loot
}

// runPolicy applies one bot's decision. A faulty policy only costs that bot its
// turn: bad amounts are clamped, unaffordable upgrades skipped, panics recovered.
func (s *service) runPolicy(bot *models.Participant, snapshot *models.MatchSnapshot, env *policy.Env) {
	fn, ok := s.policies[bot.Policy]
	if !ok {
		s.logger.Printf("WARNING: bot %s has unknown policy %q, skipping its turn", bot.ID, bot.Policy)
		return
	}

	decision, err := decide(fn, *bot, snapshot, env)
	if err != nil {
		s.logger.Printf("WARNING: policy %s failed for bot %s: %v", bot.Policy, bot.ID, err)
		return
	}

	for _, upgrade := range decision.Upgrades {
		if _, err := s.applyUpgrade(bot, upgrade); err != nil {
			s.logger.Printf("WARNING: policy %s chose %s upgrade for bot %s: %v", bot.Policy, upgrade, bot.ID, err)
		}
	}

	donation := decision.Donate
	if donation.IsNegative() {
		s.logger.Printf("WARNING: policy %s donated %s for bot %s, using 0", bot.Policy, donation.String(), bot.ID)
		donation = decimal.Zero
	}
	if donation.GreaterThan(bot.Gold) {
		s.logger.Printf("WARNING: policy %s donated %s for bot %s with %s available, clamping", bot.Policy, donation.String(), bot.ID, bot.Gold.String())
		donation = bot.Gold
	}

	if err := bot.Donate(donation); err != nil {
		s.logger.Printf("WARNING: donation for bot %s failed: %v", bot.ID, err)
	}
}

func decide(fn policy.Func, bot models.Participant, snapshot *models.MatchSnapshot, env *policy.Env) (decision policy.Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("policy panicked: %v", r)
		}
	}()

	return fn(bot, snapshot, env), nil
}

// applyUpgrade charges the scheduled price and raises the level
func (s *service) applyUpgrade(p *models.Participant, upgrade models.Upgrade) (decimal.Decimal, error) {
	cost, ok := s.schedule.NextCost(p, upgrade)
	if !ok {
		return decimal.Zero, models.ErrMaxLevel
	}

	switch upgrade {
	case models.UpgradePickaxe:
		return cost, p.UpgradePickaxe(cost)
	case models.UpgradeMine:
		return cost, p.UpgradeMine(cost)
	default:
		return decimal.Zero, fmt.Errorf("unknown upgrade %q", upgrade)
	}
}

func (s *service) record(ctx context.Context, result *models.RoundResult) {
	if s.recorder == nil {
		return
	}

	err := s.recorder.AddRoundResult(ctx, &roundResultRepo.AddRoundResultInput{
		Result: result,
	})
	if err != nil {
		s.logger.Printf("Failed to record round %d of match %s: %v", result.Round, result.MatchID, err)
	}
}

// participantForIntent finds a participant that may still act
func (s *service) participantForIntent(participantID string) (*models.Participant, error) {
	if s.match == nil {
		return nil, fmt.Errorf("%w: no match has been started", models.ErrInvalidState)
	}

	if !s.match.Phase.IsActive() {
		return nil, fmt.Errorf("%w: match is %s", models.ErrInvalidState, s.match.Phase)
	}

	p, err := s.match.Participant(participantID)
	if err != nil {
		return nil, err
	}

	if p.Eliminated {
		return nil, fmt.Errorf("%w: participant %s is eliminated", models.ErrInvalidState, participantID)
	}

	return p, nil
}

func (s *service) requestUpgrade(input *RequestUpgradeInput, upgrade models.Upgrade) (*RequestUpgradeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	p, err := s.participantForIntent(input.ParticipantID)
	if err != nil {
		return nil, err
	}

	cost, err := s.applyUpgrade(p, upgrade)
	if err != nil {
		return nil, err
	}

	return &RequestUpgradeOutput{
		Participant: p.Clone(),
		Cost:        cost,
		Level:       p.Level(upgrade),
	}, nil
}

// RequestUpgradePickaxe buys the participant's next pickaxe level
func (s *service) RequestUpgradePickaxe(ctx context.Context, input *RequestUpgradeInput) (*RequestUpgradeOutput, error) {
	return s.requestUpgrade(input, models.UpgradePickaxe)
}

// RequestUpgradeMine buys the participant's next mine level
func (s *service) RequestUpgradeMine(ctx context.Context, input *RequestUpgradeInput) (*RequestUpgradeOutput, error) {
	return s.requestUpgrade(input, models.UpgradeMine)
}

// RequestDonate donates gold towards the current round
func (s *service) RequestDonate(ctx context.Context, input *RequestDonateInput) (*RequestDonateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	p, err := s.participantForIntent(input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if err := p.Donate(input.Amount); err != nil {
		return nil, err
	}

	return &RequestDonateOutput{
		Participant: p.Clone(),
	}, nil
}

func (s *service) requestPet(input *RequestPetInput, apply func(p *models.Participant) (decimal.Decimal, error)) (*RequestPetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	p, err := s.participantForIntent(input.ParticipantID)
	if err != nil {
		return nil, err
	}

	cost, err := apply(p)
	if err != nil {
		return nil, err
	}

	return &RequestPetOutput{
		Participant: p.Clone(),
		Cost:        cost,
	}, nil
}

// RequestUnlockPet buys the participant's pet
func (s *service) RequestUnlockPet(ctx context.Context, input *RequestPetInput) (*RequestPetOutput, error) {
	return s.requestPet(input, func(p *models.Participant) (decimal.Decimal, error) {
		cost := s.schedule.PetCost
		if err := p.UnlockPet(cost); err != nil {
			return decimal.Zero, err
		}
		s.logger.Printf("%s unlocked a pet for %s gold", p.ID, cost.String())
		return cost, nil
	})
}

// RequestTogglePetMining switches the pet between mining and idle
func (s *service) RequestTogglePetMining(ctx context.Context, input *RequestPetInput) (*RequestPetOutput, error) {
	return s.requestPet(input, func(p *models.Participant) (decimal.Decimal, error) {
		return decimal.Zero, p.Pet.ToggleMining()
	})
}

// RequestTogglePetSearching switches the pet between searching and idle
func (s *service) RequestTogglePetSearching(ctx context.Context, input *RequestPetInput) (*RequestPetOutput, error) {
	return s.requestPet(input, func(p *models.Participant) (decimal.Decimal, error) {
		return decimal.Zero, p.Pet.ToggleSearching()
	})
}

// GrantGold credits gold directly to a participant
func (s *service) GrantGold(ctx context.Context, input *GrantGoldInput) (*GrantGoldOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	p, err := s.participantForIntent(input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if err := p.Credit(input.Amount); err != nil {
		return nil, err
	}

	return &GrantGoldOutput{
		Participant: p.Clone(),
	}, nil
}

// GetSnapshot returns a copy of the current match state
func (s *service) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if s.match == nil {
		return nil, fmt.Errorf("%w: no match has been started", models.ErrInvalidState)
	}

	return &GetSnapshotOutput{
		Snapshot: s.match.Snapshot(),
	}, nil
}

// GetRoundHistory returns the current match's rounds, or a previous match's
// rounds from the round recorder
func (s *service) GetRoundHistory(ctx context.Context, input *GetRoundHistoryInput) (*GetRoundHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.MatchID == "" || (s.match != nil && input.MatchID == s.match.ID) {
		if s.match == nil {
			return nil, fmt.Errorf("%w: no match has been started", models.ErrInvalidState)
		}

		results := make([]*models.RoundResult, len(s.match.History))
		for i, result := range s.match.History {
			results[i] = result.Clone()
		}

		return &GetRoundHistoryOutput{
			MatchID: s.match.ID,
			Results: results,
		}, nil
	}

	if s.recorder == nil {
		return nil, ErrMatchNotFound
	}

	output, err := s.recorder.GetRoundResultsForMatch(ctx, &roundResultRepo.GetRoundResultsForMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get round history: %w", err)
	}

	if len(output.Results) == 0 {
		return nil, ErrMatchNotFound
	}

	return &GetRoundHistoryOutput{
		MatchID: input.MatchID,
		Results: output.Results,
	}, nil
}
