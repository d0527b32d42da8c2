package match

// MatchServiceError is a custom error type for match service setup and lookups
type MatchServiceError string

// Error implements the error interface
func (e MatchServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        MatchServiceError = "config cannot be nil"
	ErrNilSchedule      MatchServiceError = "economy schedule cannot be nil"
	ErrNilDiceRoller    MatchServiceError = "dice roller cannot be nil"
	ErrNilClock         MatchServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchServiceError = "UUID generator cannot be nil"
	ErrNilInput         MatchServiceError = "input cannot be nil"
	ErrInvalidRules     MatchServiceError = "invalid match rules"
	ErrMatchNotFound    MatchServiceError = "match not found"
)
