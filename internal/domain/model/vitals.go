package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds the demographic fields that feed derived features.
// Zero values mean "unknown".
type PatientProfile struct {
	DateOfBirth time.Time
	WeightKg    float64
	HeightCm    float64
}

// VitalSigns is one bedside reading. Zero values mean "not measured".
type VitalSigns struct {
	HeartRate              float64
	RespiratoryRate        float64
	BodyTemperature        float64
	OxygenSaturation       float64
	SystolicBloodPressure  float64
	DiastolicBloodPressure float64
}

// VitalsSnapshot is the latest reading for a patient together with their profile.
type VitalsSnapshot struct {
	PatientID  uuid.UUID
	Profile    PatientProfile
	Vitals     VitalSigns
	RecordedAt time.Time
}
