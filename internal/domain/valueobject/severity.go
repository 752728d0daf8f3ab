package valueobject

import "fmt"

// Severity is an immutable value object for the tier attached to a risk factor.
// Tiers are ordered: moderate < high < critical.
type Severity struct {
	value string
	rank  int
}

var (
	SeverityModerate = Severity{value: "moderate", rank: 1}
	SeverityHigh     = Severity{value: "high", rank: 2}
	SeverityCritical = Severity{value: "critical", rank: 3}
)

// SeverityFromString reconstructs a Severity from its string representation.
func SeverityFromString(s string) (Severity, error) {
	switch s {
	case "moderate":
		return SeverityModerate, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return Severity{}, fmt.Errorf("invalid severity: %q", s)
	}
}

// String returns the string representation.
func (s Severity) String() string {
	return s.value
}

// IsZero returns true if the Severity has not been set.
func (s Severity) IsZero() bool {
	return s.value == ""
}

// Equal checks equality with another Severity.
func (s Severity) Equal(other Severity) bool {
	return s.value == other.value
}

// AtLeast reports whether s ranks at or above other.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank >= other.rank
}

// IsCritical returns true for the critical tier.
func (s Severity) IsCritical() bool {
	return s.Equal(SeverityCritical)
}
