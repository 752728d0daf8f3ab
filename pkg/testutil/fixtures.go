package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed identifiers and timestamps for deterministic testing.
var (
	TestPatientID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestPatientID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestUnknownID  = uuid.MustParse("00000000-0000-0000-0000-0000000000ff")

	TestNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
)

// SampleRecord returns the flat record of a deteriorating patient. Every
// threshold rule except Hypothermia, Hypotension, Bradycardia and Low MAP fires.
func SampleRecord() map[string]float64 {
	return map[string]float64{
		"Heart Rate":               105,
		"Respiratory Rate":         24,
		"Body Temperature":         38.5,
		"Oxygen Saturation":        92,
		"Systolic Blood Pressure":  160,
		"Diastolic Blood Pressure": 95,
		"Age":                      68,
		"Derived_BMI":              32,
		"Derived_HRV":              25,
		"Derived_Pulse_Pressure":   65,
		"Derived_MAP":              116,
	}
}

// StableRecord returns a flat record in which no threshold rule fires.
func StableRecord() map[string]float64 {
	return map[string]float64{
		"Heart Rate":               72,
		"Respiratory Rate":         16,
		"Body Temperature":         36.8,
		"Oxygen Saturation":        98,
		"Systolic Blood Pressure":  120,
		"Diastolic Blood Pressure": 80,
		"Age":                      45,
		"Derived_BMI":              24,
		"Derived_HRV":              60,
		"Derived_Pulse_Pressure":   40,
		"Derived_MAP":              93.33,
	}
}
