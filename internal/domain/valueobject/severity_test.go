package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/valueobject"
)

func TestSeverity_FromString(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.Severity
		wantErr  bool
	}{
		{"moderate", valueobject.SeverityModerate, false},
		{"high", valueobject.SeverityHigh, false},
		{"critical", valueobject.SeverityCritical, false},
		{"HIGH", valueobject.Severity{}, true},
		{"low", valueobject.Severity{}, true},
		{"", valueobject.Severity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.SeverityFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
			assert.Equal(t, tt.input, result.String())
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	assert.True(t, valueobject.SeverityCritical.AtLeast(valueobject.SeverityHigh))
	assert.True(t, valueobject.SeverityHigh.AtLeast(valueobject.SeverityModerate))
	assert.True(t, valueobject.SeverityHigh.AtLeast(valueobject.SeverityHigh))
	assert.False(t, valueobject.SeverityModerate.AtLeast(valueobject.SeverityHigh))
	assert.False(t, valueobject.SeverityHigh.AtLeast(valueobject.SeverityCritical))
}

func TestSeverity_IsCritical(t *testing.T) {
	assert.True(t, valueobject.SeverityCritical.IsCritical())
	assert.False(t, valueobject.SeverityHigh.IsCritical())
}

func TestSeverity_IsZero(t *testing.T) {
	var zero valueobject.Severity
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.SeverityModerate.IsZero())
}
