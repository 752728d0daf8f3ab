package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
)

func TestBuildPatientRecord(t *testing.T) {
	now := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	profile := model.PatientProfile{
		DateOfBirth: time.Date(1957, time.June, 2, 0, 0, 0, 0, time.UTC),
		WeightKg:    92.16,
		HeightCm:    160,
	}
	vitals := model.VitalSigns{
		HeartRate:              105,
		RespiratoryRate:        24,
		BodyTemperature:        38.5,
		OxygenSaturation:       92,
		SystolicBloodPressure:  160,
		DiastolicBloodPressure: 95,
	}

	record := service.BuildPatientRecord(profile, vitals, now)

	assert.Equal(t, 105.0, record[model.SignalHeartRate])
	assert.Equal(t, 24.0, record[model.SignalRespiratoryRate])
	assert.Equal(t, 38.5, record[model.SignalBodyTemperature])
	assert.Equal(t, 92.0, record[model.SignalOxygenSaturation])
	assert.Equal(t, 160.0, record[model.SignalSystolicBloodPressure])
	assert.Equal(t, 95.0, record[model.SignalDiastolicBloodPressure])
	assert.Equal(t, 67.0, record[model.SignalAge], "birthday later in the year not yet reached")
	assert.InDelta(t, 36.0, record[model.SignalBMI], 1e-9)
	assert.Equal(t, 50.0, record[model.SignalHRV])
	assert.Equal(t, 65.0, record[model.SignalPulsePressure])
	assert.InDelta(t, 95+65.0/3, record[model.SignalMAP], 1e-9)
	assert.Len(t, record, 11)
}

func TestBuildPatientRecord_Defaults(t *testing.T) {
	record := service.BuildPatientRecord(model.PatientProfile{WeightKg: 80}, model.VitalSigns{}, time.Now())

	assert.Equal(t, float64(service.DefaultAge), record[model.SignalAge])
	assert.Equal(t, float64(service.DefaultBMI), record[model.SignalBMI])
	assert.Zero(t, record[model.SignalHeartRate])
	assert.Zero(t, record[model.SignalMAP])
}

func TestBuildPatientRecord_BirthdayToday(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	profile := model.PatientProfile{DateOfBirth: time.Date(1980, time.March, 14, 0, 0, 0, 0, time.UTC)}

	record := service.BuildPatientRecord(profile, model.VitalSigns{}, now)
	assert.Equal(t, 45.0, record[model.SignalAge])
}
