package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/event"
	"github.com/iggi84/patients-health-tracker/pkg/events"
)

var (
	_ events.DomainEvent = event.AssessmentCompleted{}
	_ events.DomainEvent = event.CriticalFactorDetected{}
)

func TestAssessmentCompleted_Envelope(t *testing.T) {
	assessmentID := uuid.New()
	patientID := uuid.New()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	evt := event.NewAssessmentCompleted(assessmentID, patientID, "High Risk", 0.8, nil, at)

	assert.Equal(t, event.EventTypeAssessmentCompleted, evt.EventType())
	assert.Equal(t, assessmentID, evt.AggregateID())
	assert.Equal(t, event.AggregateTypeRiskAssessment, evt.AggregateType())
	assert.Equal(t, at, evt.OccurredAt())
	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, patientID.String(), evt.PatientID)
	assert.NotNil(t, evt.Factors)
}

func TestAssessmentCompleted_JSONOmitsNilPatient(t *testing.T) {
	evt := event.NewAssessmentCompleted(uuid.New(), uuid.Nil, "Low Risk", 0.9, nil, time.Now())

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.NotContains(t, payload, "patient_id")
	assert.Equal(t, event.EventTypeAssessmentCompleted, payload["event_type"])
	assert.Equal(t, "Low Risk", payload["risk_level"])
	assert.Equal(t, []any{}, payload["factors"])
}

func TestCriticalFactorDetected_Payload(t *testing.T) {
	factors := []event.FactorSummary{{Factor: "Hypoxemia", Value: "88%", Severity: "critical"}}
	evt := event.NewCriticalFactorDetected(uuid.New(), uuid.New(), "High Risk", factors, time.Now())

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded struct {
		EventType string                `json:"event_type"`
		Factors   []event.FactorSummary `json:"factors"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, event.EventTypeCriticalFactorDetected, decoded.EventType)
	assert.Equal(t, factors, decoded.Factors)
}
