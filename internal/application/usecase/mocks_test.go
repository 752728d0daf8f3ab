package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
	"github.com/iggi84/patients-health-tracker/pkg/events"
)

// --- Mock implementations ---

type mockClassifier struct {
	predictFn func(x []float64) (int, error)
	proba     []float64
}

func (m *mockClassifier) Predict(x []float64) (int, error) {
	if m.predictFn != nil {
		return m.predictFn(x)
	}
	best := 0
	for i, p := range m.proba {
		if p > m.proba[best] {
			best = i
		}
	}
	return best, nil
}

func (m *mockClassifier) PredictProba([]float64) ([]float64, error) {
	return m.proba, nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishedEvents []events.DomainEvent
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockMetricsRecorder struct {
	predictions []model.Prediction
	failures    []string
}

func (m *mockMetricsRecorder) RecordPrediction(_ context.Context, p model.Prediction, _ time.Duration) {
	m.predictions = append(m.predictions, p)
}

func (m *mockMetricsRecorder) RecordFailure(_ context.Context, reason string) {
	m.failures = append(m.failures, reason)
}

type mockSnapshotRepository struct {
	latestFunc func(ctx context.Context, patientID uuid.UUID) (*model.VitalsSnapshot, error)
}

func (m *mockSnapshotRepository) LatestSnapshot(ctx context.Context, patientID uuid.UUID) (*model.VitalsSnapshot, error) {
	return m.latestFunc(ctx, patientID)
}

// --- Fixtures ---

var features = []string{
	model.SignalHeartRate,
	model.SignalRespiratoryRate,
	model.SignalBodyTemperature,
	model.SignalOxygenSaturation,
	model.SignalSystolicBloodPressure,
	model.SignalDiastolicBloodPressure,
	model.SignalAge,
	model.SignalBMI,
	model.SignalHRV,
	model.SignalPulsePressure,
	model.SignalMAP,
}

func newPredictor(t *testing.T, c *mockClassifier) *service.Predictor {
	t.Helper()
	categories, err := model.NewCategoryMapping(map[string]int{"Low Risk": 0, "High Risk": 1})
	require.NoError(t, err)
	p, err := service.NewPredictor(service.Artifacts{
		Classifier: c,
		Features:   features,
		Categories: categories,
	})
	require.NoError(t, err)
	return p
}
