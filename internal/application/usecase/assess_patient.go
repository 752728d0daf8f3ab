package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/iggi84/patients-health-tracker/internal/application/dto"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
)

// AssessPatient is the use case for scoring a patient's latest stored reading.
type AssessPatient struct {
	snapshots   port.SnapshotRepository
	predictRisk *PredictRisk
	logger      *slog.Logger
	tracer      trace.Tracer
	now         func() time.Time
}

// NewAssessPatient creates a new AssessPatient use case.
func NewAssessPatient(
	snapshots port.SnapshotRepository,
	predictRisk *PredictRisk,
	logger *slog.Logger,
) *AssessPatient {
	return &AssessPatient{
		snapshots:   snapshots,
		predictRisk: predictRisk,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
	}
}

// Execute loads the snapshot, derives the feature record and scores it.
func (uc *AssessPatient) Execute(ctx context.Context, req dto.AssessPatientRequest) (dto.AssessmentResponse, error) {
	if req.PatientID == uuid.Nil {
		return dto.AssessmentResponse{}, errors.New("patient ID is required")
	}

	ctx, span := uc.tracer.Start(ctx, "AssessPatient.Execute",
		trace.WithAttributes(attribute.String("patient.id", req.PatientID.String())))
	defer span.End()

	// 1. Load the most recent reading.
	snapshot, err := uc.snapshots.LatestSnapshot(ctx, req.PatientID)
	if err != nil {
		span.RecordError(err)
		return dto.AssessmentResponse{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	// 2. Derive the flat feature record.
	record := service.BuildPatientRecord(snapshot.Profile, snapshot.Vitals, uc.now())

	uc.logger.DebugContext(ctx, "assessing patient",
		slog.String("patient_id", req.PatientID.String()),
		slog.Time("recorded_at", snapshot.RecordedAt),
	)

	// 3. Score it.
	resp, err := uc.predictRisk.Execute(ctx, dto.PredictRiskRequest{
		Record:    record,
		PatientID: snapshot.PatientID,
	})
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	recordedAt := snapshot.RecordedAt
	resp.RecordedAt = &recordedAt
	return resp, nil
}
