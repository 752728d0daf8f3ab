package model

// Names of the measurements a PatientRecord carries. The classifier's feature
// list decides which of them are required; the threshold rules read a subset.
const (
	SignalHeartRate              = "Heart Rate"
	SignalRespiratoryRate        = "Respiratory Rate"
	SignalBodyTemperature        = "Body Temperature"
	SignalOxygenSaturation       = "Oxygen Saturation"
	SignalSystolicBloodPressure  = "Systolic Blood Pressure"
	SignalDiastolicBloodPressure = "Diastolic Blood Pressure"
	SignalAge                    = "Age"
	SignalBMI                    = "Derived_BMI"
	SignalHRV                    = "Derived_HRV"
	SignalPulsePressure          = "Derived_Pulse_Pressure"
	SignalMAP                    = "Derived_MAP"
)

// PatientRecord is one patient's measurements keyed by name. It lives for a
// single request.
type PatientRecord map[string]float64

// Lookup returns the value stored under name and whether it was present.
func (r PatientRecord) Lookup(name string) (float64, bool) {
	v, ok := r[name]
	return v, ok
}

// Value returns the value stored under name, or 0 when it is absent.
// Zero doubles as "not measured" for the threshold rules.
func (r PatientRecord) Value(name string) float64 {
	return r[name]
}
