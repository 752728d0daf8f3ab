package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/event"
	pkgkafka "github.com/iggi84/patients-health-tracker/pkg/kafka"
	"github.com/iggi84/patients-health-tracker/pkg/observability"
)

// mockProducer records published batches.
type mockProducer struct {
	err     error
	topic   string
	batches [][]pkgkafka.Message
}

func (m *mockProducer) Publish(_ context.Context, topic string, messages ...pkgkafka.Message) error {
	m.topic = topic
	m.batches = append(m.batches, messages)
	return m.err
}

func TestPublisher_Publish(t *testing.T) {
	prod := &mockProducer{}
	pub := newPublisher(prod, "vitals.risk.events", observability.Discard())

	assessmentID := uuid.New()
	completed := event.NewAssessmentCompleted(assessmentID, uuid.Nil, "High Risk", 0.9, nil, time.Now())
	critical := event.NewCriticalFactorDetected(assessmentID, uuid.Nil, "High Risk",
		[]event.FactorSummary{{Factor: "Hypoxemia", Value: "88%", Severity: "critical"}}, time.Now())

	require.NoError(t, pub.Publish(context.Background(), completed, critical))

	assert.Equal(t, "vitals.risk.events", prod.topic)
	require.Len(t, prod.batches, 1)
	msgs := prod.batches[0]
	require.Len(t, msgs, 2)

	assert.Equal(t, []byte(assessmentID.String()), msgs[0].Key)
	assert.Equal(t, event.EventTypeAssessmentCompleted, msgs[0].Headers["event_type"])
	assert.Equal(t, completed.EventID().String(), msgs[0].Headers["event_id"])
	assert.Equal(t, event.EventTypeCriticalFactorDetected, msgs[1].Headers["event_type"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msgs[1].Value, &payload))
	assert.Equal(t, "High Risk", payload["risk_level"])
	assert.Equal(t, assessmentID.String(), payload["aggregate_id"])
}

func TestPublisher_NoEvents(t *testing.T) {
	prod := &mockProducer{}
	pub := newPublisher(prod, "vitals.risk.events", observability.Discard())

	require.NoError(t, pub.Publish(context.Background()))
	assert.Empty(t, prod.batches)
}

func TestPublisher_ProducerError(t *testing.T) {
	prod := &mockProducer{err: errors.New("broker unavailable")}
	pub := newPublisher(prod, "vitals.risk.events", observability.Discard())

	err := pub.Publish(context.Background(),
		event.NewAssessmentCompleted(uuid.New(), uuid.Nil, "Low Risk", 0.7, nil, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vitals.risk.events")
	assert.Contains(t, err.Error(), "broker unavailable")
}
