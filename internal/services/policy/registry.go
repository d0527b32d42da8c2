package policy

import (
	"fmt"
	"sort"
)

// ErrUnknownPolicy is returned when a policy name is not registered
type ErrUnknownPolicy string

// Error implements the error interface
func (e ErrUnknownPolicy) Error() string {
	return fmt.Sprintf("unknown policy %q", string(e))
}

// Policy names
const (
	NameEconomist  = "economist"
	NameAggressive = "aggressive"
	NameBalanced   = "balanced"
	NameRandom     = "random"
	NameOutbid     = "outbid"
)

// Registry maps policy names to their decision functions
var Registry = map[string]Func{
	NameEconomist:  Economist,
	NameAggressive: Aggressive,
	NameBalanced:   Balanced,
	NameRandom:     Random,
	NameOutbid:     Outbid,
}

// DefaultLineup is the bot order used when none is configured
var DefaultLineup = []string{NameEconomist, NameAggressive, NameBalanced}

// Lookup returns the policy registered under name
func Lookup(name string) (Func, error) {
	fn, ok := Registry[name]
	if !ok {
		return nil, ErrUnknownPolicy(name)
	}
	return fn, nil
}

// Names returns the registered policy names in sorted order
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
