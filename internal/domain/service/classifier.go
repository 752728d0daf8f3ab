package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/port"
)

// ErrClassifier marks failures raised while invoking the trained model.
var ErrClassifier = errors.New("classifier invocation failed")

// probabilityTolerance absorbs floating point drift in model output.
const probabilityTolerance = 1e-9

// Classification is the labelled classifier output for one vector.
type Classification struct {
	Index         int
	Label         string
	Confidence    float64
	Probabilities model.Probabilities
}

// Classify runs the classifier and labels its output. Confidence is the
// largest class probability. Probabilities are labelled by column position and
// left empty when the mapping knows no labels.
func Classify(vector []float64, classifier port.Classifier, categories model.CategoryMapping) (Classification, error) {
	if classifier == nil {
		return Classification{}, fmt.Errorf("%w: no classifier loaded", ErrClassifier)
	}

	index, err := classifier.Predict(vector)
	if err != nil {
		return Classification{}, fmt.Errorf("%w: predict: %w", ErrClassifier, err)
	}

	proba, err := classifier.PredictProba(vector)
	if err != nil {
		return Classification{}, fmt.Errorf("%w: predict probabilities: %w", ErrClassifier, err)
	}
	if len(proba) == 0 {
		return Classification{}, fmt.Errorf("%w: no class probabilities returned", ErrClassifier)
	}

	confidence := math.Inf(-1)
	for i, p := range proba {
		if math.IsNaN(p) || p < -probabilityTolerance || p > 1+probabilityTolerance {
			return Classification{}, fmt.Errorf("%w: probability %v for class %d out of range", ErrClassifier, p, i)
		}
		confidence = math.Max(confidence, p)
	}
	confidence = math.Min(math.Max(confidence, 0), 1)

	var probabilities model.Probabilities
	if !categories.IsEmpty() {
		probabilities = make(model.Probabilities, 0, len(proba))
		for i, p := range proba {
			probabilities = append(probabilities, model.ClassProbability{
				Label:       categories.Label(i),
				Probability: p,
			})
		}
	}

	return Classification{
		Index:         index,
		Label:         categories.Label(index),
		Confidence:    confidence,
		Probabilities: probabilities,
	}, nil
}
