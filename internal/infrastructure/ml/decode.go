// Package ml holds the classifiers that can be restored from a risk model
// artifact. Models are immutable after decoding and safe for concurrent use.
package ml

import (
	"encoding/json"
	"fmt"

	"github.com/iggi84/patients-health-tracker/internal/domain/port"
)

// Model kinds accepted in the artifact's "type" field.
const (
	TypeRandomForest       = "random_forest"
	TypeDecisionTree       = "decision_tree"
	TypeLogisticRegression = "logistic_regression"
)

// Decode restores a classifier from its JSON artifact.
func Decode(data []byte) (port.Classifier, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("decode model header: %w", err)
	}

	switch header.Type {
	case TypeRandomForest, TypeDecisionTree:
		var f Forest
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", header.Type, err)
		}
		if header.Type == TypeDecisionTree && len(f.Trees) != 1 {
			return nil, fmt.Errorf("decision_tree must hold exactly one tree, got %d", len(f.Trees))
		}
		if err := f.validate(); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", header.Type, err)
		}
		return &f, nil

	case TypeLogisticRegression:
		var l Logistic
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decode %s: %w", header.Type, err)
		}
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", header.Type, err)
		}
		return &l, nil

	case "":
		return nil, fmt.Errorf("model type is missing")
	default:
		return nil, fmt.Errorf("unsupported model type %q", header.Type)
	}
}

func checkWidth(x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("X has %d features, but model is expecting %d features as input", len(x), want)
	}
	return nil
}

// argmax returns the first index holding the largest value.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
