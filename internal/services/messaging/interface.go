package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRoundResultMessage returns an announcement for a resolved round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetOutcomeMessage returns an announcement for the end of a match
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)

	// GetUpgradeMessage returns a confirmation for a bought upgrade
	GetUpgradeMessage(ctx context.Context, input *GetUpgradeMessageInput) (*GetUpgradeMessageOutput, error)

	// GetErrorMessage returns player feedback for a rejected request
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
