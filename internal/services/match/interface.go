package match

import "context"

// Service drives a single match: it owns the match state and is the only way
// the UI changes it
type Service interface {
	// StartMatch creates a new match, discarding any previous one
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// Advance moves simulated time forward, resolving every round that ends
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// RequestUpgradePickaxe buys the participant's next pickaxe level
	RequestUpgradePickaxe(ctx context.Context, input *RequestUpgradeInput) (*RequestUpgradeOutput, error)

	// RequestUpgradeMine buys the participant's next mine level
	RequestUpgradeMine(ctx context.Context, input *RequestUpgradeInput) (*RequestUpgradeOutput, error)

	// RequestDonate donates gold towards the current round
	RequestDonate(ctx context.Context, input *RequestDonateInput) (*RequestDonateOutput, error)

	// RequestUnlockPet buys the participant's pet
	RequestUnlockPet(ctx context.Context, input *RequestPetInput) (*RequestPetOutput, error)

	// RequestTogglePetMining switches the pet between mining and idle
	RequestTogglePetMining(ctx context.Context, input *RequestPetInput) (*RequestPetOutput, error)

	// RequestTogglePetSearching switches the pet between searching and idle
	RequestTogglePetSearching(ctx context.Context, input *RequestPetInput) (*RequestPetOutput, error)

	// GrantGold credits gold directly to a participant
	GrantGold(ctx context.Context, input *GrantGoldInput) (*GrantGoldOutput, error)

	// GetSnapshot returns a copy of the current match state
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// GetRoundHistory returns the resolved rounds of a match
	GetRoundHistory(ctx context.Context, input *GetRoundHistoryInput) (*GetRoundHistoryOutput, error)
}
