package service

import (
	"errors"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
)

// Artifacts bundles the static inputs a Predictor needs. They are loaded once
// and shared read-only.
type Artifacts struct {
	Classifier port.Classifier
	Features   []string
	Categories model.CategoryMapping
}

// Predictor scores patient records against loaded artifacts.
type Predictor struct {
	artifacts Artifacts
}

// NewPredictor creates a Predictor. The classifier is required.
func NewPredictor(artifacts Artifacts) (*Predictor, error) {
	if artifacts.Classifier == nil {
		return nil, errors.New("classifier is required")
	}
	return &Predictor{artifacts: artifacts}, nil
}

// Features returns the ordered feature names the classifier expects.
func (p *Predictor) Features() []string {
	return append([]string(nil), p.artifacts.Features...)
}

// Predict vectorizes the record, classifies it and attaches the threshold
// rule factors. Either the full prediction or an error is returned.
func (p *Predictor) Predict(record model.PatientRecord) (model.Prediction, error) {
	vector, err := Vectorize(record, p.artifacts.Features)
	if err != nil {
		return model.Prediction{}, err
	}

	classification, err := Classify(vector, p.artifacts.Classifier, p.artifacts.Categories)
	if err != nil {
		return model.Prediction{}, err
	}

	return model.Prediction{
		RiskLevel:     classification.Label,
		Confidence:    classification.Confidence,
		RiskFactors:   Annotate(record),
		Probabilities: classification.Probabilities,
	}, nil
}
