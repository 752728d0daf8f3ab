//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/port"
	"github.com/iggi84/patients-health-tracker/pkg/testutil"
)

func TestSnapshotRepository_Integration(t *testing.T) {
	ctx := context.Background()

	pg := testutil.StartPostgres(ctx, t, "../../../migrations")

	_, err := pg.Pool.Exec(ctx, `
		INSERT INTO patients (id, first_name, last_name, date_of_birth, weight_kg, height_cm)
		VALUES ($1, 'Ada', 'Byron', '1957-06-02', 92.16, 160.0),
		       ($2, 'Mary', 'Shelley', NULL, NULL, NULL)`,
		testutil.TestPatientID1, testutil.TestPatientID2)
	require.NoError(t, err)

	older := testutil.TestNow.Add(-2 * time.Hour)
	_, err = pg.Pool.Exec(ctx, `
		INSERT INTO vital_sign_readings (id, patient_id, heart_rate, respiratory_rate, body_temperature,
			oxygen_saturation, systolic_bp, diastolic_bp, recorded_at)
		VALUES ($1, $3, 72, 16, 36.8, 98, 120, 80, $4),
		       ($2, $3, 105, 24, 38.5, 92, 160, 95, $5)`,
		uuid.New(), uuid.New(), testutil.TestPatientID1, older, testutil.TestNow)
	require.NoError(t, err)

	repo := NewSnapshotRepository(pg.Pool)

	t.Run("returns the most recent reading", func(t *testing.T) {
		snapshot, err := repo.LatestSnapshot(ctx, testutil.TestPatientID1)
		require.NoError(t, err)

		assert.Equal(t, testutil.TestPatientID1, snapshot.PatientID)
		assert.Equal(t, 105.0, snapshot.Vitals.HeartRate)
		assert.Equal(t, 95.0, snapshot.Vitals.DiastolicBloodPressure)
		assert.Equal(t, 92.16, snapshot.Profile.WeightKg)
		assert.Equal(t, 1957, snapshot.Profile.DateOfBirth.Year())
		assert.True(t, testutil.TestNow.Equal(snapshot.RecordedAt))
	})

	t.Run("patient without readings", func(t *testing.T) {
		_, err := repo.LatestSnapshot(ctx, testutil.TestPatientID2)
		assert.ErrorIs(t, err, port.ErrSnapshotNotFound)
	})

	t.Run("unknown patient", func(t *testing.T) {
		_, err := repo.LatestSnapshot(ctx, testutil.TestUnknownID)
		assert.ErrorIs(t, err, port.ErrSnapshotNotFound)
	})
}
