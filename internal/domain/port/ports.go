package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/pkg/events"
)

// ErrSnapshotNotFound is returned when a patient has no recorded vital signs.
var ErrSnapshotNotFound = errors.New("vital sign snapshot not found")

// Classifier is a trained model that maps a fixed-order feature vector to a
// class index and per-class probabilities. Implementations are read-only after
// load and safe for concurrent use.
type Classifier interface {
	Predict(x []float64) (int, error)
	PredictProba(x []float64) ([]float64, error)
}

// SnapshotRepository reads the most recent vital-sign snapshot for a patient.
type SnapshotRepository interface {
	LatestSnapshot(ctx context.Context, patientID uuid.UUID) (*model.VitalsSnapshot, error)
}

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// MetricsRecorder records prediction outcomes.
type MetricsRecorder interface {
	RecordPrediction(ctx context.Context, prediction model.Prediction, elapsed time.Duration)
	RecordFailure(ctx context.Context, reason string)
}
