package service

import (
	"time"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
)

// Defaults used when the profile lacks the data to derive a feature.
const (
	DefaultAge = 50
	DefaultBMI = 25
	// No beat-to-beat data is recorded, so HRV is a fixed resting value.
	DefaultHRV = 50
)

// BuildPatientRecord derives the flat feature record from a stored profile
// and vital-sign reading. Age is measured in whole years at now.
func BuildPatientRecord(profile model.PatientProfile, vitals model.VitalSigns, now time.Time) model.PatientRecord {
	sbp := vitals.SystolicBloodPressure
	dbp := vitals.DiastolicBloodPressure
	pulsePressure := sbp - dbp

	return model.PatientRecord{
		model.SignalHeartRate:              vitals.HeartRate,
		model.SignalRespiratoryRate:        vitals.RespiratoryRate,
		model.SignalBodyTemperature:        vitals.BodyTemperature,
		model.SignalOxygenSaturation:       vitals.OxygenSaturation,
		model.SignalSystolicBloodPressure:  sbp,
		model.SignalDiastolicBloodPressure: dbp,
		model.SignalAge:                    float64(ageAt(profile.DateOfBirth, now)),
		model.SignalBMI:                    bodyMassIndex(profile.WeightKg, profile.HeightCm),
		model.SignalHRV:                    DefaultHRV,
		model.SignalPulsePressure:          pulsePressure,
		model.SignalMAP:                    dbp + pulsePressure/3,
	}
}

func ageAt(dob, now time.Time) int {
	if dob.IsZero() {
		return DefaultAge
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

func bodyMassIndex(weightKg, heightCm float64) float64 {
	if weightKg == 0 || heightCm == 0 {
		return DefaultBMI
	}
	meters := heightCm / 100
	return weightKg / (meters * meters)
}
