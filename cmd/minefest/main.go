package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/minefest/internal/common/clock"
	"github.com/KirkDiggler/minefest/internal/common/uuid"
	"github.com/KirkDiggler/minefest/internal/dice"
	"github.com/KirkDiggler/minefest/internal/economy"
	"github.com/KirkDiggler/minefest/internal/repositories/round_result"
	"github.com/KirkDiggler/minefest/internal/services/accrual"
	matchService "github.com/KirkDiggler/minefest/internal/services/match"
	"github.com/KirkDiggler/minefest/internal/services/messaging"
	"github.com/KirkDiggler/minefest/internal/services/policy"
)

func main() {
	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional round history in Redis
	var recorder round_result.Repository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		recorder, err = round_result.NewRedis(&round_result.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create round result repository: %v", err)
		}
	}

	diceRoller := dice.New(&dice.Config{Seed: cfg.Seed})
	log.Printf("Dice seed: %d", diceRoller.Seed())

	realClock := &clock.DefaultClock{}
	schedule := economy.Default()

	accrualSvc, err := accrual.New(&accrual.Config{
		Schedule: schedule,
	})
	if err != nil {
		log.Fatalf("Failed to create accrual service: %v", err)
	}

	matchSvc, err := matchService.New(&matchService.Config{
		Rules:         cfg.Rules,
		Schedule:      schedule,
		BotPolicies:   cfg.BotPolicies,
		HumanName:     cfg.HumanName,
		Accrual:       accrualSvc,
		DiceRoller:    diceRoller,
		Clock:         realClock,
		UUIDGenerator: uuid.New(),
		RoundRecorder: recorder,
	})
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	started, err := matchSvc.StartMatch(ctx, &matchService.StartMatchInput{})
	if err != nil {
		log.Fatalf("Failed to start match: %v", err)
	}

	for _, p := range started.Snapshot.Participants {
		log.Printf("Participant %d: %s", p.Index, p.Name)
	}

	r := &runner{
		match:     matchSvc,
		messaging: messagingSvc,
		accrual:   accrualSvc,
		recorder:  recorder,
		humanID:   started.HumanID,
		stopwatch: clock.NewStopwatch(realClock),
		tick:      cfg.Tick,
		speed:     cfg.Speed,
		logger:    log.Default(),

		clearHistory: cfg.ClearHistory,
	}

	if cfg.HumanPolicy != "" {
		humanPolicy, err := policy.Lookup(cfg.HumanPolicy)
		if err != nil {
			log.Fatalf("Failed to load human policy: %v", err)
		}
		r.autopilot = &autopilot{
			policy: humanPolicy,
			env: &policy.Env{
				Schedule: schedule,
				Roller:   diceRoller,
			},
			pet: cfg.HumanPet,
		}
		log.Printf("Autopilot playing the human with the %s policy", cfg.HumanPolicy)
	}

	if cfg.ClearHistory && recorder == nil {
		log.Printf("MINEFEST_CLEAR_HISTORY has no effect without REDIS_ADDR")
	}

	if err := r.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Match stopped: %v", err)
	}

	log.Println("Minefest has been shut down")
}
