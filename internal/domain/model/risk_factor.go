package model

import "github.com/iggi84/patients-health-tracker/internal/domain/valueobject"

// RiskFactor is one clinically interpretable flag raised by a threshold rule.
type RiskFactor struct {
	Factor      string
	Value       string
	Severity    valueobject.Severity
	Explanation string
}

// IsCritical reports whether the factor carries the critical tier.
func (f RiskFactor) IsCritical() bool {
	return f.Severity.IsCritical()
}
