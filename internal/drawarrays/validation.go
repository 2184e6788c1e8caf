package drawarrays

import (
	"fmt"
	"strings"
)

// Validation selects how much of the contract is checked at runtime.
type Validation int

const (
	// Strict checks every precondition, including attribute counts and
	// topology/vertex-count compatibility.
	Strict Validation = iota
	// Elided skips the count and topology checks. Session state and
	// handle liveness are still enforced.
	Elided
)

// DefaultValidation is Strict unless built with the release tag.
const DefaultValidation = defaultValidation

func (v Validation) String() string {
	switch v {
	case Strict:
		return "strict"
	case Elided:
		return "elided"
	}
	return fmt.Sprintf("Validation(%d)", int(v))
}

// ParseValidation accepts "strict" or "elided" (case-insensitive).
func ParseValidation(s string) (Validation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "debug":
		return Strict, nil
	case "elided", "release":
		return Elided, nil
	}
	return Strict, fmt.Errorf("unknown validation mode %q", s)
}
