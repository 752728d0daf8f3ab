package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iggi84/patients-health-tracker/internal/application/dto"
	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
)

const tracerName = "github.com/iggi84/patients-health-tracker/internal/application/usecase"

// Failure reasons reported to the metrics recorder.
const (
	ReasonMissingFeature = "missing_feature"
	ReasonClassifier     = "classifier"
	ReasonInternal       = "internal"
)

// PredictRisk is the use case for scoring a single patient record.
type PredictRisk struct {
	predictor *service.Predictor
	publisher port.EventPublisher
	metrics   port.MetricsRecorder
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewPredictRisk creates a new PredictRisk use case. publisher and metrics may
// be nil, which disables event publication and metrics respectively.
func NewPredictRisk(
	predictor *service.Predictor,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	logger *slog.Logger,
) *PredictRisk {
	return &PredictRisk{
		predictor: predictor,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}

// Execute scores the record, wraps the result in an assessment and publishes
// its events. A failed publication is logged; the prediction is still returned.
func (uc *PredictRisk) Execute(ctx context.Context, req dto.PredictRiskRequest) (dto.AssessmentResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "PredictRisk.Execute",
		trace.WithAttributes(attribute.Int("record.size", len(req.Record))))
	defer span.End()

	start := uc.now()

	// 1. Score the record.
	prediction, err := uc.predictor.Predict(model.PatientRecord(req.Record))
	if err != nil {
		reason := FailureReason(err)
		if uc.metrics != nil {
			uc.metrics.RecordFailure(ctx, reason)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		return dto.AssessmentResponse{}, fmt.Errorf("failed to predict risk: %w", err)
	}
	elapsed := uc.now().Sub(start)

	// 2. Wrap the prediction in the assessment aggregate.
	assessment, err := model.NewRiskAssessment(req.PatientID, prediction, uc.now())
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordFailure(ctx, ReasonInternal)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, ReasonInternal)
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	span.SetAttributes(
		attribute.String("risk.level", prediction.RiskLevel),
		attribute.Float64("risk.confidence", prediction.Confidence),
		attribute.Int("risk.factors", len(prediction.RiskFactors)),
	)

	// 3. Record metrics.
	if uc.metrics != nil {
		uc.metrics.RecordPrediction(ctx, prediction, elapsed)
	}

	// 4. Publish domain events.
	events := assessment.DomainEvents()
	if uc.publisher != nil && len(events) > 0 {
		if err := uc.publisher.Publish(ctx, events...); err != nil {
			uc.logger.WarnContext(ctx, "failed to publish assessment events",
				slog.String("assessment_id", assessment.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	uc.logger.DebugContext(ctx, "risk predicted",
		slog.String("assessment_id", assessment.ID().String()),
		slog.String("risk_level", prediction.RiskLevel),
		slog.Float64("confidence", prediction.Confidence),
		slog.Int("risk_factors", len(prediction.RiskFactors)),
		slog.Duration("elapsed", elapsed),
	)

	return dto.FromAssessment(assessment), nil
}

// FailureReason classifies a prediction error for metrics and error mapping.
func FailureReason(err error) string {
	var missing *service.MissingFeatureError
	switch {
	case errors.As(err, &missing):
		return ReasonMissingFeature
	case errors.Is(err, service.ErrClassifier):
		return ReasonClassifier
	default:
		return ReasonInternal
	}
}
