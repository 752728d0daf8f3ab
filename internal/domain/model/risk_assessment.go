package model

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/iggi84/patients-health-tracker/internal/domain/event"
	"github.com/iggi84/patients-health-tracker/pkg/events"
)

// RiskAssessment is the aggregate root recording one scored prediction. It is
// never persisted; its purpose is to emit domain events.
type RiskAssessment struct {
	events.EventCollector
	assessedAt time.Time
	prediction Prediction
	patientID  uuid.UUID
	id         uuid.UUID
}

// NewRiskAssessment wraps a prediction. patientID may be uuid.Nil for records
// that were submitted without a patient reference.
func NewRiskAssessment(patientID uuid.UUID, prediction Prediction, assessedAt time.Time) (*RiskAssessment, error) {
	if prediction.RiskLevel == "" {
		return nil, errors.New("risk level is required")
	}
	if math.IsNaN(prediction.Confidence) || prediction.Confidence < 0 || prediction.Confidence > 1 {
		return nil, fmt.Errorf("confidence must be between 0 and 1, got %v", prediction.Confidence)
	}

	a := &RiskAssessment{
		id:         uuid.New(),
		patientID:  patientID,
		prediction: prediction,
		assessedAt: assessedAt.UTC(),
	}

	a.Record(event.NewAssessmentCompleted(
		a.id, a.patientID,
		prediction.RiskLevel, prediction.Confidence,
		summarize(prediction.RiskFactors), a.assessedAt,
	))

	if critical := prediction.CriticalFactors(); len(critical) > 0 {
		a.Record(event.NewCriticalFactorDetected(
			a.id, a.patientID,
			prediction.RiskLevel, summarize(critical), a.assessedAt,
		))
	}

	return a, nil
}

func summarize(factors []RiskFactor) []event.FactorSummary {
	out := make([]event.FactorSummary, 0, len(factors))
	for _, f := range factors {
		out = append(out, event.FactorSummary{
			Factor:   f.Factor,
			Value:    f.Value,
			Severity: f.Severity.String(),
		})
	}
	return out
}

// --- Accessors ---

func (a *RiskAssessment) ID() uuid.UUID          { return a.id }
func (a *RiskAssessment) PatientID() uuid.UUID   { return a.patientID }
func (a *RiskAssessment) Prediction() Prediction { return a.prediction }
func (a *RiskAssessment) AssessedAt() time.Time  { return a.assessedAt }

// HasCriticalFactor reports whether any factor carries the critical tier.
func (a *RiskAssessment) HasCriticalFactor() bool {
	return len(a.prediction.CriticalFactors()) > 0
}

// DomainEvents returns the pending events and clears them.
func (a *RiskAssessment) DomainEvents() []events.DomainEvent {
	return a.ClearEvents()
}
