package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/iggi84/patients-health-tracker/pkg/events"
)

const (
	// AggregateTypeRiskAssessment names the aggregate every vitals event belongs to.
	AggregateTypeRiskAssessment = "risk_assessment"

	// EventTypeAssessmentCompleted is emitted for every scored record.
	EventTypeAssessmentCompleted = "vitals.assessment.completed"

	// EventTypeCriticalFactorDetected is emitted when at least one risk factor
	// is critical.
	EventTypeCriticalFactorDetected = "vitals.critical_factor.detected"
)

// FactorSummary is the wire form of a risk factor inside an event payload.
type FactorSummary struct {
	Factor   string `json:"factor"`
	Value    string `json:"value"`
	Severity string `json:"severity"`
}

// AssessmentCompleted is published once a patient record has been scored.
type AssessmentCompleted struct {
	events.BaseEvent
	PatientID  string          `json:"patient_id,omitempty"`
	RiskLevel  string          `json:"risk_level"`
	Confidence float64         `json:"confidence"`
	Factors    []FactorSummary `json:"factors"`
}

// NewAssessmentCompleted builds the event. A nil patientID is left out of the payload.
func NewAssessmentCompleted(
	assessmentID, patientID uuid.UUID,
	riskLevel string,
	confidence float64,
	factors []FactorSummary,
	assessedAt time.Time,
) AssessmentCompleted {
	if factors == nil {
		factors = []FactorSummary{}
	}
	return AssessmentCompleted{
		BaseEvent:  events.NewBaseEvent(EventTypeAssessmentCompleted, assessmentID, AggregateTypeRiskAssessment, assessedAt),
		PatientID:  patientIDString(patientID),
		RiskLevel:  riskLevel,
		Confidence: confidence,
		Factors:    factors,
	}
}

// CriticalFactorDetected is published when an assessment carries a critical
// factor, so that alerting can page the care team.
type CriticalFactorDetected struct {
	events.BaseEvent
	PatientID string          `json:"patient_id,omitempty"`
	RiskLevel string          `json:"risk_level"`
	Factors   []FactorSummary `json:"factors"`
}

// NewCriticalFactorDetected builds the event from the critical factors only.
func NewCriticalFactorDetected(
	assessmentID, patientID uuid.UUID,
	riskLevel string,
	factors []FactorSummary,
	detectedAt time.Time,
) CriticalFactorDetected {
	return CriticalFactorDetected{
		BaseEvent: events.NewBaseEvent(EventTypeCriticalFactorDetected, assessmentID, AggregateTypeRiskAssessment, detectedAt),
		PatientID: patientIDString(patientID),
		RiskLevel: riskLevel,
		Factors:   factors,
	}
}

func patientIDString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
