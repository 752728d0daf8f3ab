package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
)

// Compile-time assertion that Recorder implements port.MetricsRecorder.
var _ port.MetricsRecorder = (*Recorder)(nil)

// Recorder implements port.MetricsRecorder with OpenTelemetry instruments.
// The Prometheus exporter appends the _total and unit suffixes.
type Recorder struct {
	predictions metric.Int64Counter
	factors     metric.Int64Counter
	failures    metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewRecorder registers the prediction instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	predictions, err := meter.Int64Counter("vitals_predictions",
		metric.WithDescription("Completed risk predictions by risk level."))
	if err != nil {
		return nil, fmt.Errorf("metrics: predictions counter: %w", err)
	}

	factors, err := meter.Int64Counter("vitals_risk_factors",
		metric.WithDescription("Risk factors raised by threshold rules."))
	if err != nil {
		return nil, fmt.Errorf("metrics: risk factor counter: %w", err)
	}

	failures, err := meter.Int64Counter("vitals_prediction_failures",
		metric.WithDescription("Predictions that ended in an error, by reason."))
	if err != nil {
		return nil, fmt.Errorf("metrics: failures counter: %w", err)
	}

	duration, err := meter.Float64Histogram("vitals_prediction_duration",
		metric.WithDescription("Time spent scoring one patient record."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25),
	)
	if err != nil {
		return nil, fmt.Errorf("metrics: duration histogram: %w", err)
	}

	return &Recorder{
		predictions: predictions,
		factors:     factors,
		failures:    failures,
		duration:    duration,
	}, nil
}

// RecordPrediction counts a successful prediction and every factor it raised.
func (r *Recorder) RecordPrediction(ctx context.Context, prediction model.Prediction, elapsed time.Duration) {
	r.predictions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("risk_level", prediction.RiskLevel),
	))
	for _, f := range prediction.RiskFactors {
		r.factors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("factor", f.Factor),
			attribute.String("severity", f.Severity.String()),
		))
	}
	r.duration.Record(ctx, elapsed.Seconds())
}

// RecordFailure counts a failed prediction.
func (r *Recorder) RecordFailure(ctx context.Context, reason string) {
	r.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
