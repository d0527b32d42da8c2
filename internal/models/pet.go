package models

// PetActivity is what an unlocked pet is doing
type PetActivity string

const (
	// PetActivityIdle means the pet only waits to take a hit
	PetActivityIdle PetActivity = "idle"

	// PetActivityMining means the pet adds to its owner's income
	PetActivityMining PetActivity = "mining"

	// PetActivitySearching means the pet looks for loot at the end of each round
	PetActivitySearching PetActivity = "searching"
)

// Pet is a companion bought once per match. A live pet takes its owner's next
// damage and dies doing so.
type Pet struct {
	// Unlocked is set once the pet has been bought
	Unlocked bool

	// Alive is cleared when the pet takes a hit
	Alive bool

	// Activity is what the pet is doing
	Activity PetActivity
}

// NewPet returns a locked, living pet
func NewPet() Pet {
	return Pet{
		Alive:    true,
		Activity: PetActivityIdle,
	}
}

// Active reports whether the pet is unlocked and alive
func (p *Pet) Active() bool {
	return p.Unlocked && p.Alive
}

// IsMining reports whether the pet is active and mining
func (p *Pet) IsMining() bool {
	return p.Active() && p.Activity == PetActivityMining
}

// IsSearching reports whether the pet is active and searching
func (p *Pet) IsSearching() bool {
	return p.Active() && p.Activity == PetActivitySearching
}

// ToggleMining switches mining on or off; mining and searching exclude each other
func (p *Pet) ToggleMining() error {
	return p.toggle(PetActivityMining)
}

// ToggleSearching switches searching on or off
func (p *Pet) ToggleSearching() error {
	return p.toggle(PetActivitySearching)
}

func (p *Pet) toggle(activity PetActivity) error {
	if !p.Active() {
		return ErrInvalidState
	}

	if p.Activity == activity {
		p.Activity = PetActivityIdle
	} else {
		p.Activity = activity
	}

	return nil
}

// TakeHit kills a live pet and reports whether it absorbed the hit
func (p *Pet) TakeHit() bool {
	if !p.Active() {
		return false
	}

	p.Alive = false
	p.Activity = PetActivityIdle

	return true
}
