package service

import "github.com/shopspring/decimal"

// formatReading renders an observed value as its shortest exact decimal,
// e.g. 105 or 38.5.
func formatReading(v float64) string {
	return decimal.NewFromFloat(v).String()
}
