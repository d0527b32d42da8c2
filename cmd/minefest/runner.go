package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/minefest/internal/common/clock"
	"github.com/KirkDiggler/minefest/internal/models"
	"github.com/KirkDiggler/minefest/internal/repositories/round_result"
	"github.com/KirkDiggler/minefest/internal/services/accrual"
	matchService "github.com/KirkDiggler/minefest/internal/services/match"
	"github.com/KirkDiggler/minefest/internal/services/messaging"
	"github.com/KirkDiggler/minefest/internal/services/policy"
)

// runner drives a match in real time and prints what happens
type runner struct {
	match     matchService.Service
	messaging messaging.Service
	accrual   accrual.Service
	recorder  round_result.Repository
	humanID   string
	stopwatch *clock.Stopwatch
	tick      time.Duration
	speed     int
	logger    *log.Logger

	// autopilot plays the human when set
	autopilot *autopilot

	// clearHistory drops the match's round log after the final stats
	clearHistory bool
}

// autopilot makes the human's end-of-round moves with a bot policy, through
// the same requests an interactive player would send
type autopilot struct {
	policy policy.Func
	env    *policy.Env
	pet    models.PetActivity
}

// run advances the match every tick until it is over or ctx is cancelled
func (r *runner) run(ctx context.Context) error {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := r.step(ctx, r.stopwatch.Lap()*time.Duration(r.speed))
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// step advances by elapsed and reports whether the match has ended
func (r *runner) step(ctx context.Context, elapsed time.Duration) (bool, error) {
	if r.autopilot != nil {
		if err := r.playHuman(ctx, elapsed); err != nil {
			return false, err
		}
	}

	output, err := r.match.Advance(ctx, &matchService.AdvanceInput{Elapsed: elapsed})
	if err != nil {
		return false, fmt.Errorf("failed to advance match: %w", err)
	}

	for _, result := range output.Results {
		r.announceRound(ctx, result)
	}

	if output.Snapshot.Outcome == nil {
		if len(output.Results) > 0 {
			r.announceStatus(output.Snapshot)
		}
		return false, nil
	}

	r.announceOutcome(ctx, output.Snapshot)

	return true, nil
}

// playHuman commits the human's moves when this step will end the round
func (r *runner) playHuman(ctx context.Context, elapsed time.Duration) error {
	snapshot, human, err := r.humanView(ctx)
	if err != nil {
		return err
	}

	if human == nil || human.Eliminated || !snapshot.Phase.IsActive() || elapsed < snapshot.TimeLeft() {
		return nil
	}

	if r.autopilot.pet != "" && !human.Pet.Unlocked && human.Gold.GreaterThanOrEqual(r.autopilot.env.Schedule.PetCost) {
		r.adoptPet(ctx)
		if snapshot, human, err = r.humanView(ctx); err != nil {
			return err
		}
	}

	decision := r.autopilot.policy(*human, snapshot, r.autopilot.env)

	for _, upgrade := range decision.Upgrades {
		request := r.match.RequestUpgradePickaxe
		if upgrade == models.UpgradeMine {
			request = r.match.RequestUpgradeMine
		}

		upgraded, err := request(ctx, &matchService.RequestUpgradeInput{ParticipantID: r.humanID})
		if err != nil {
			r.announceError(ctx, err)
			continue
		}

		msg, err := r.messaging.GetUpgradeMessage(ctx, &messaging.GetUpgradeMessageInput{
			Upgrade: upgrade,
			Level:   upgraded.Level,
			Cost:    upgraded.Cost,
		})
		if err != nil {
			r.logger.Printf("Failed to build upgrade message: %v", err)
			continue
		}
		r.logger.Printf("%s", msg.Message)
	}

	if !decision.Donate.IsPositive() {
		return nil
	}

	if _, err := r.match.RequestDonate(ctx, &matchService.RequestDonateInput{
		ParticipantID: r.humanID,
		Amount:        decision.Donate,
	}); err != nil {
		r.announceError(ctx, err)
		return nil
	}
	r.logger.Printf("You donated %s gold (%s)", decision.Donate.StringFixed(2), decision.Reason)

	return nil
}

// humanView returns the current snapshot and the human's copy in it
func (r *runner) humanView(ctx context.Context) (*models.MatchSnapshot, *models.Participant, error) {
	output, err := r.match.GetSnapshot(ctx, &matchService.GetSnapshotInput{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	for _, p := range output.Snapshot.Participants {
		if p.ID == r.humanID {
			return output.Snapshot, p, nil
		}
	}
	return output.Snapshot, nil, nil
}

// adoptPet buys the human's pet and sets it to the configured activity
func (r *runner) adoptPet(ctx context.Context) {
	input := &matchService.RequestPetInput{ParticipantID: r.humanID}

	unlocked, err := r.match.RequestUnlockPet(ctx, input)
	if err != nil {
		r.announceError(ctx, err)
		return
	}
	r.logger.Printf("You adopted a pet for %s gold", unlocked.Cost.StringFixed(2))

	toggle := r.match.RequestTogglePetMining
	if r.autopilot.pet == models.PetActivitySearching {
		toggle = r.match.RequestTogglePetSearching
	}
	if _, err := toggle(ctx, input); err != nil {
		r.announceError(ctx, err)
		return
	}
	r.logger.Printf("Your pet is %s", r.autopilot.pet)
}

// announceError prints player feedback for a rejected request
func (r *runner) announceError(ctx context.Context, requestErr error) {
	msg, err := r.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: requestErr})
	if err != nil {
		r.logger.Printf("Request failed: %v", requestErr)
		return
	}
	r.logger.Printf("%s", msg.Message)
}

func (r *runner) announceRound(ctx context.Context, result *models.RoundResult) {
	msg, err := r.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		Result:  result,
		HumanID: r.humanID,
	})
	if err != nil {
		r.logger.Printf("Failed to build round message: %v", err)
		return
	}

	r.logger.Printf("%s: %s", msg.Title, msg.Message)
	for _, line := range msg.Lines {
		r.logger.Printf("  %s", line)
	}
}

// announceStatus prints what the human can expect from the new round
func (r *runner) announceStatus(snapshot *models.MatchSnapshot) {
	for _, p := range snapshot.Participants {
		if p.ID != r.humanID {
			continue
		}
		forecast := r.accrual.Preview(p, snapshot.TimeLeft())
		r.logger.Printf("Round %d of %d: %d health, %s gold, mining %s more this round",
			snapshot.Round, snapshot.MaxRounds, p.Health, p.Gold.StringFixed(2), forecast.StringFixed(2))
	}
}

func (r *runner) announceOutcome(ctx context.Context, snapshot *models.MatchSnapshot) {
	var winnerName string
	for _, p := range snapshot.Participants {
		if p.ID == snapshot.Outcome.WinnerID {
			winnerName = p.Name
		}
	}

	msg, err := r.messaging.GetOutcomeMessage(ctx, &messaging.GetOutcomeMessageInput{
		Outcome:    snapshot.Outcome,
		WinnerName: winnerName,
	})
	if err != nil {
		r.logger.Printf("Failed to build outcome message: %v", err)
		return
	}

	r.logger.Printf("%s %s", msg.Title, msg.Message)

	if r.recorder == nil {
		return
	}

	for _, p := range snapshot.Participants {
		stats, err := r.recorder.GetParticipantStats(ctx, &round_result.GetParticipantStatsInput{
			ParticipantID: p.ID,
		})
		if err != nil {
			r.logger.Printf("Failed to get stats for %s: %v", p.Name, err)
			continue
		}
		r.logger.Printf("  %s: %d rounds, %d won, %d damage taken",
			p.Name, stats.Stats.RoundsPlayed, stats.Stats.RoundsWon, stats.Stats.DamageTaken)
	}

	if !r.clearHistory {
		return
	}

	if err := r.recorder.DeleteRoundResults(ctx, &round_result.DeleteRoundResultsInput{
		MatchID: snapshot.MatchID,
	}); err != nil {
		r.logger.Printf("Failed to clear round history: %v", err)
		return
	}
	r.logger.Printf("Cleared round history for match %s", snapshot.MatchID)
}
