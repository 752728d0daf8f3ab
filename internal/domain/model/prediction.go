package model

import (
	"bytes"
	"encoding/json"
)

// ClassProbability is the probability the classifier assigned to one class.
type ClassProbability struct {
	Label       string
	Probability float64
}

// Probabilities is an ordered label → probability list. It serialises as a
// JSON object whose keys keep class-index order.
type Probabilities []ClassProbability

// Get returns the probability stored under label.
func (p Probabilities) Get(label string) (float64, bool) {
	for _, cp := range p {
		if cp.Label == label {
			return cp.Probability, true
		}
	}
	return 0, false
}

// Sum adds up every probability.
func (p Probabilities) Sum() float64 {
	var total float64
	for _, cp := range p {
		total += cp.Probability
	}
	return total
}

// MarshalJSON encodes the list as an object, preserving order.
func (p Probabilities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cp := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cp.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(cp.Probability)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Prediction is the merged result of the classifier and the threshold rules
// for a single patient record.
type Prediction struct {
	RiskLevel     string
	Confidence    float64
	RiskFactors   []RiskFactor
	Probabilities Probabilities
}

// CriticalFactors returns the factors carrying the critical tier, in rule order.
func (p Prediction) CriticalFactors() []RiskFactor {
	var out []RiskFactor
	for _, f := range p.RiskFactors {
		if f.IsCritical() {
			out = append(out, f)
		}
	}
	return out
}
