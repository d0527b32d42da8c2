package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/minefest/internal/models"
	"github.com/KirkDiggler/minefest/internal/services/policy"
)

// maxSpeed keeps real elapsed time times speed well inside time.Duration
const maxSpeed = 1000

// runnerConfig is everything the headless runner reads from the environment
type runnerConfig struct {
	// Seed for the dice roller; zero picks one from the clock
	Seed int64

	Rules       models.Rules
	BotPolicies []string
	HumanName   string

	// Tick is how often the runner advances the match in real time
	Tick time.Duration

	// Speed multiplies real elapsed time into simulated time
	Speed int

	// HumanPolicy, when set, plays the human's end-of-round moves
	HumanPolicy string

	// HumanPet is what the autopilot puts the human's pet to once it can afford it
	HumanPet models.PetActivity

	// ClearHistory drops the match's round log once the final stats are printed
	ClearHistory bool

	RedisAddr     string
	RedisPassword string
}

func loadConfig() (*runnerConfig, error) {
	rules := models.DefaultRules()

	seed, err := strconv.ParseInt(getEnv("MINEFEST_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MINEFEST_SEED: %w", err)
	}

	rules.MaxRounds, err = strconv.Atoi(getEnv("MINEFEST_MAX_ROUNDS", strconv.Itoa(rules.MaxRounds)))
	if err != nil || rules.MaxRounds < 1 {
		return nil, fmt.Errorf("invalid MINEFEST_MAX_ROUNDS: %q", os.Getenv("MINEFEST_MAX_ROUNDS"))
	}

	roundSeconds, err := strconv.Atoi(getEnv("MINEFEST_ROUND_SECONDS", strconv.Itoa(int(rules.RoundLength/time.Second))))
	if err != nil || roundSeconds < 1 {
		return nil, fmt.Errorf("invalid MINEFEST_ROUND_SECONDS: %q", os.Getenv("MINEFEST_ROUND_SECONDS"))
	}
	rules.RoundLength = time.Duration(roundSeconds) * time.Second

	tickMS, err := strconv.Atoi(getEnv("MINEFEST_TICK_MS", "100"))
	if err != nil || tickMS < 1 {
		return nil, fmt.Errorf("invalid MINEFEST_TICK_MS: %q", os.Getenv("MINEFEST_TICK_MS"))
	}

	speed, err := strconv.Atoi(getEnv("MINEFEST_SPEED", "1"))
	if err != nil || speed < 1 || speed > maxSpeed {
		return nil, fmt.Errorf("invalid MINEFEST_SPEED: %q", os.Getenv("MINEFEST_SPEED"))
	}

	botPolicies := policy.DefaultLineup
	if raw := getEnv("MINEFEST_BOT_POLICIES", ""); raw != "" {
		botPolicies = nil
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, err := policy.Lookup(name); err != nil {
				return nil, fmt.Errorf("invalid MINEFEST_BOT_POLICIES (known: %s): %w", strings.Join(policy.Names(), ", "), err)
			}
			botPolicies = append(botPolicies, name)
		}
		if len(botPolicies) == 0 {
			return nil, fmt.Errorf("invalid MINEFEST_BOT_POLICIES: %q", raw)
		}
		rules.BotCount = len(botPolicies)
	}

	humanPolicy := getEnv("MINEFEST_HUMAN_POLICY", "")
	if humanPolicy != "" {
		if _, err := policy.Lookup(humanPolicy); err != nil {
			return nil, fmt.Errorf("invalid MINEFEST_HUMAN_POLICY (known: %s): %w", strings.Join(policy.Names(), ", "), err)
		}
	}

	humanPet := models.PetActivity(getEnv("MINEFEST_HUMAN_PET", ""))
	switch humanPet {
	case "", models.PetActivityMining, models.PetActivitySearching:
	default:
		return nil, fmt.Errorf("invalid MINEFEST_HUMAN_PET: %q", humanPet)
	}
	if humanPet != "" && humanPolicy == "" {
		return nil, fmt.Errorf("MINEFEST_HUMAN_PET requires MINEFEST_HUMAN_POLICY")
	}

	clearHistory, err := strconv.ParseBool(getEnv("MINEFEST_CLEAR_HISTORY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid MINEFEST_CLEAR_HISTORY: %w", err)
	}

	return &runnerConfig{
		Seed:          seed,
		Rules:         rules,
		BotPolicies:   botPolicies,
		HumanName:     getEnv("MINEFEST_HUMAN_NAME", ""),
		Tick:          time.Duration(tickMS) * time.Millisecond,
		Speed:         speed,
		HumanPolicy:   humanPolicy,
		HumanPet:      humanPet,
		ClearHistory:  clearHistory,
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
