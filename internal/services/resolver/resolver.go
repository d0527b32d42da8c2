// Package resolver settles a finished round: it ranks the remaining participants
// by donation, applies positional damage and decides whether the match goes on.
package resolver

import (
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/minefest/internal/models"
)

// Rank orders the non-eliminated participants by donation, highest first.
// Ties go to the lower participant index.
func Rank(participants []*models.Participant) []*models.Participant {
	ranked := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if !p.Eliminated {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if cmp := ranked[i].DonatedThisRound.Cmp(ranked[j].DonatedThisRound); cmp != 0 {
			return cmp > 0
		}
		return ranked[i].Index < ranked[j].Index
	})

	return ranked
}

// Resolve ranks the round, applies damage, resets donations and moves the match
// to its next phase. It must be called exactly once per round, once the round
// clock has reached the round length.
func Resolve(match *models.Match, now time.Time) (*models.RoundResult, error) {
	if match == nil {
		return nil, models.ErrInvalidState
	}

	if match.Phase.IsGameOver() || !match.RoundElapsed() {
		return nil, models.ErrInvalidState
	}

	ranked := Rank(match.Participants)
	standings := make([]models.RoundStanding, 0, len(ranked))

	for rank, p := range ranked {
		damage := rank

		// A live pet takes the whole hit in place of its owner
		absorbed := damage > 0 && p.Pet.TakeHit()
		if !absorbed {
			if err := p.ApplyDamage(damage); err != nil {
				return nil, fmt.Errorf("failed to damage %s: %w", p.ID, err)
			}
		}

		if rank == 0 {
			p.RoundsWon++
		}

		standings = append(standings, models.RoundStanding{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
			Index:           p.Index,
			Rank:            rank,
			Donated:         p.DonatedThisRound,
			Damage:          damage,
			HealthAfter:     p.Health,
			Eliminated:      p.Eliminated,
			PetAbsorbed:     absorbed,
		})
	}

	for _, p := range match.Participants {
		p.ResetRound()
	}

	result := &models.RoundResult{
		MatchID:    match.ID,
		Round:      match.Round,
		Standings:  standings,
		ResolvedAt: now,
	}

	match.Round++
	match.RoundClock = 0

	if outcome := checkOutcome(match); outcome != nil {
		match.Phase = models.MatchPhaseGameOver
		match.Outcome = outcome
	} else {
		match.Phase = models.MatchPhaseActive
	}

	result.Phase = match.Phase
	result.Outcome = match.Outcome.Clone()
	match.History = append(match.History, result)

	return result, nil
}

// checkOutcome returns nil while the match should continue
func checkOutcome(match *models.Match) *models.MatchOutcome {
	active := match.Active()
	played := match.Round - 1

	var reason models.OutcomeReason
	human := match.Human()

	switch {
	case match.Round > match.Rules.MaxRounds:
		reason = models.OutcomeReasonRoundLimit
	case human != nil && human.Eliminated:
		reason = models.OutcomeReasonHumanEliminated
	case len(active) < 2:
		reason = models.OutcomeReasonLastStanding
	default:
		return nil
	}

	outcome := &models.MatchOutcome{
		Reason:       reason,
		RoundsPlayed: played,
	}

	if leader := healthiest(active); leader != nil {
		outcome.WinnerID = leader.ID
		outcome.HumanWon = leader.IsHuman
	}

	return outcome
}

// healthiest returns the participant with the most health, lower index on ties
func healthiest(participants []*models.Participant) *models.Participant {
	var leader *models.Participant
	for _, p := range participants {
		if leader == nil || p.Health > leader.Health {
			leader = p
		}
	}
	return leader
}
