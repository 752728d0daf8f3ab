package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/event"
	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/valueobject"
)

func stablePrediction() model.Prediction {
	return model.Prediction{
		RiskLevel:  "Low Risk",
		Confidence: 0.9,
		Probabilities: model.Probabilities{
			{Label: "Low Risk", Probability: 0.9},
			{Label: "High Risk", Probability: 0.1},
		},
	}
}

func TestNewRiskAssessment(t *testing.T) {
	patientID := uuid.New()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	a, err := model.NewRiskAssessment(patientID, stablePrediction(), at)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, patientID, a.PatientID())
	assert.Equal(t, at, a.AssessedAt())
	assert.Equal(t, "Low Risk", a.Prediction().RiskLevel)
	assert.False(t, a.HasCriticalFactor())

	evts := a.DomainEvents()
	require.Len(t, evts, 1)
	completed, ok := evts[0].(event.AssessmentCompleted)
	require.True(t, ok)
	assert.Equal(t, a.ID(), completed.AggregateID())
	assert.Equal(t, patientID.String(), completed.PatientID)
	assert.Empty(t, completed.Factors)

	assert.Empty(t, a.DomainEvents(), "events are cleared once read")
}

func TestNewRiskAssessment_CriticalFactor(t *testing.T) {
	p := stablePrediction()
	p.RiskLevel = "High Risk"
	p.RiskFactors = []model.RiskFactor{
		{Factor: "Tachycardia", Value: "105 bpm", Severity: valueobject.SeverityModerate},
		{Factor: "Hypoxemia", Value: "88%", Severity: valueobject.SeverityCritical},
	}

	a, err := model.NewRiskAssessment(uuid.Nil, p, time.Now())
	require.NoError(t, err)
	assert.True(t, a.HasCriticalFactor())

	evts := a.DomainEvents()
	require.Len(t, evts, 2)
	assert.Equal(t, event.EventTypeAssessmentCompleted, evts[0].EventType())
	assert.Equal(t, event.EventTypeCriticalFactorDetected, evts[1].EventType())

	critical, ok := evts[1].(event.CriticalFactorDetected)
	require.True(t, ok)
	assert.Empty(t, critical.PatientID)
	require.Len(t, critical.Factors, 1)
	assert.Equal(t, event.FactorSummary{Factor: "Hypoxemia", Value: "88%", Severity: "critical"}, critical.Factors[0])
}

func TestNewRiskAssessment_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Prediction)
		errMsg string
	}{
		{"missing risk level", func(p *model.Prediction) { p.RiskLevel = "" }, "risk level is required"},
		{"confidence above one", func(p *model.Prediction) { p.Confidence = 1.2 }, "confidence must be between 0 and 1"},
		{"negative confidence", func(p *model.Prediction) { p.Confidence = -0.1 }, "confidence must be between 0 and 1"},
		{"NaN confidence", func(p *model.Prediction) { p.Confidence = math.NaN() }, "confidence must be between 0 and 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := stablePrediction()
			tt.mutate(&p)

			_, err := model.NewRiskAssessment(uuid.New(), p, time.Now())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
