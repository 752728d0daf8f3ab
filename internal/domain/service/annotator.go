package service

import (
	"fmt"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/valueobject"
)

// Direction is the side of a threshold a reading must fall on.
type Direction int

const (
	Above Direction = iota
	Below
)

func (d Direction) beyond(v, threshold float64) bool {
	if d == Below {
		return v < threshold
	}
	return v > threshold
}

// Rule flags a single vital sign that crosses a threshold. Readings that are
// zero or absent are treated as not measured and never fire a rule.
type Rule struct {
	Factor string
	Signal string
	// Companion is rendered after Signal as "signal/companion" when set.
	Companion string

	Direction Direction
	Threshold float64
	Severity  valueobject.Severity

	// Escalated replaces Severity once the reading is beyond EscalateAt.
	// Rules without escalation leave it zero.
	Escalated  valueobject.Severity
	EscalateAt float64

	// ValueFormat and Explanation each take the rendered reading once.
	ValueFormat string
	Explanation string
}

// Evaluate applies the rule to a record.
func (r Rule) Evaluate(record model.PatientRecord) (model.RiskFactor, bool) {
	v := record.Value(r.Signal)
	if v <= 0 || !r.Direction.beyond(v, r.Threshold) {
		return model.RiskFactor{}, false
	}

	severity := r.Severity
	if !r.Escalated.IsZero() && r.Direction.beyond(v, r.EscalateAt) {
		severity = r.Escalated
	}

	reading := formatReading(v)
	if r.Companion != "" {
		reading += "/" + formatReading(record.Value(r.Companion))
	}

	return model.RiskFactor{
		Factor:      r.Factor,
		Value:       fmt.Sprintf(r.ValueFormat, reading),
		Severity:    severity,
		Explanation: fmt.Sprintf(r.Explanation, reading),
	}, true
}

// Rules is the threshold table, in evaluation order.
var Rules = []Rule{
	{
		Factor: "Tachycardia", Signal: model.SignalHeartRate,
		Direction: Above, Threshold: 100, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 120,
		ValueFormat: "%s bpm",
		Explanation: "Elevated heart rate (%s bpm) indicates cardiac stress",
	},
	{
		Factor: "Bradycardia", Signal: model.SignalHeartRate,
		Direction: Below, Threshold: 60, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 50,
		ValueFormat: "%s bpm",
		Explanation: "Low heart rate (%s bpm) may indicate heart block",
	},
	{
		Factor: "Tachypnea", Signal: model.SignalRespiratoryRate,
		Direction: Above, Threshold: 20, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 25,
		ValueFormat: "%s breaths/min",
		Explanation: "Elevated respiratory rate (%s) indicates respiratory distress",
	},
	{
		Factor: "Fever", Signal: model.SignalBodyTemperature,
		Direction: Above, Threshold: 37.5, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 39,
		ValueFormat: "%s C",
		Explanation: "Elevated temperature (%sC) suggests infection",
	},
	{
		Factor: "Hypothermia", Signal: model.SignalBodyTemperature,
		Direction: Below, Threshold: 36.5, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 35,
		ValueFormat: "%s C",
		Explanation: "Low temperature (%sC) indicates poor perfusion",
	},
	{
		Factor: "Hypoxemia", Signal: model.SignalOxygenSaturation,
		Direction: Below, Threshold: 95, Severity: valueobject.SeverityHigh,
		Escalated: valueobject.SeverityCritical, EscalateAt: 90,
		ValueFormat: "%s%%",
		Explanation: "Low oxygen saturation (%s%%) requires immediate attention",
	},
	{
		Factor: "Hypertension", Signal: model.SignalSystolicBloodPressure, Companion: model.SignalDiastolicBloodPressure,
		Direction: Above, Threshold: 140, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityCritical, EscalateAt: 180,
		ValueFormat: "%s mmHg",
		Explanation: "Elevated blood pressure (%s) increases cardiovascular risk",
	},
	{
		Factor: "Hypotension", Signal: model.SignalSystolicBloodPressure, Companion: model.SignalDiastolicBloodPressure,
		Direction: Below, Threshold: 90, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 80,
		ValueFormat: "%s mmHg",
		Explanation: "Low blood pressure (%s) suggests shock or dehydration",
	},
	{
		Factor: "Obesity", Signal: model.SignalBMI,
		Direction: Above, Threshold: 30, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 40,
		ValueFormat: "BMI %s",
		Explanation: "Obesity (BMI %s) increases risk for multiple conditions",
	},
	{
		Factor: "Low Heart Rate Variability", Signal: model.SignalHRV,
		Direction: Below, Threshold: 50, Severity: valueobject.SeverityModerate,
		Escalated: valueobject.SeverityHigh, EscalateAt: 20,
		ValueFormat: "%s ms",
		Explanation: "Low HRV (%s ms) indicates poor autonomic function",
	},
	{
		Factor: "Elevated Mean Arterial Pressure", Signal: model.SignalMAP,
		Direction: Above, Threshold: 110, Severity: valueobject.SeverityModerate,
		ValueFormat: "%s mmHg",
		Explanation: "High MAP (%s) indicates hypertensive state",
	},
	{
		Factor: "Low Mean Arterial Pressure", Signal: model.SignalMAP,
		Direction: Below, Threshold: 70, Severity: valueobject.SeverityHigh,
		ValueFormat: "%s mmHg",
		Explanation: "Low MAP (%s) suggests inadequate organ perfusion",
	},
}

// Annotate evaluates every rule against the record and returns the factors
// that fired, in table order. It never fails and has no side effects.
func Annotate(record model.PatientRecord) []model.RiskFactor {
	factors := make([]model.RiskFactor, 0)
	for _, rule := range Rules {
		if f, ok := rule.Evaluate(record); ok {
			factors = append(factors, f)
		}
	}
	return factors
}
