package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	pgutil "github.com/iggi84/patients-health-tracker/pkg/postgres"
)

// Compile-time assertion that SnapshotRepository implements port.SnapshotRepository.
var _ port.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository reads vital-sign snapshots from PostgreSQL. It never writes.
type SnapshotRepository struct {
	db pgutil.Querier
}

// NewSnapshotRepository creates a new PostgreSQL-backed snapshot repository.
func NewSnapshotRepository(db pgutil.Querier) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

const latestSnapshotQuery = `
	SELECT p.id, p.date_of_birth, p.weight_kg, p.height_cm,
		v.heart_rate, v.respiratory_rate, v.body_temperature,
		v.oxygen_saturation, v.systolic_bp, v.diastolic_bp,
		v.recorded_at
	FROM patients p
	JOIN vital_sign_readings v ON v.patient_id = p.id
	WHERE p.id = $1
	ORDER BY v.recorded_at DESC
	LIMIT 1
`

// LatestSnapshot returns the patient's profile together with their most
// recent reading. NULL columns map to zero, i.e. "not measured".
func (r *SnapshotRepository) LatestSnapshot(ctx context.Context, patientID uuid.UUID) (*model.VitalsSnapshot, error) {
	var (
		id          uuid.UUID
		dateOfBirth *time.Time
		weight      decimal.NullDecimal
		height      decimal.NullDecimal
		heartRate   decimal.NullDecimal
		respRate    decimal.NullDecimal
		temperature decimal.NullDecimal
		saturation  decimal.NullDecimal
		systolic    decimal.NullDecimal
		diastolic   decimal.NullDecimal
		recordedAt  time.Time
	)

	err := r.db.QueryRow(ctx, latestSnapshotQuery, patientID).Scan(
		&id, &dateOfBirth, &weight, &height,
		&heartRate, &respRate, &temperature,
		&saturation, &systolic, &diastolic,
		&recordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("patient %s: %w", patientID, port.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("failed to load vital sign snapshot: %w", err)
	}

	snapshot := &model.VitalsSnapshot{
		PatientID: id,
		Profile: model.PatientProfile{
			WeightKg: toFloat(weight),
			HeightCm: toFloat(height),
		},
		Vitals: model.VitalSigns{
			HeartRate:              toFloat(heartRate),
			RespiratoryRate:        toFloat(respRate),
			BodyTemperature:        toFloat(temperature),
			OxygenSaturation:       toFloat(saturation),
			SystolicBloodPressure:  toFloat(systolic),
			DiastolicBloodPressure: toFloat(diastolic),
		},
		RecordedAt: recordedAt.UTC(),
	}
	if dateOfBirth != nil {
		snapshot.Profile.DateOfBirth = dateOfBirth.UTC()
	}

	return snapshot, nil
}

func toFloat(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
