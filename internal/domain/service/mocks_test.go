package service_test

import (
	"github.com/google/go-cmp/cmp"

	"github.com/iggi84/patients-health-tracker/internal/domain/valueobject"
)

// mockClassifier implements port.Classifier for testing.
type mockClassifier struct {
	predictFn      func(x []float64) (int, error)
	predictProbaFn func(x []float64) ([]float64, error)
	seen           [][]float64
}

func (m *mockClassifier) Predict(x []float64) (int, error) {
	m.seen = append(m.seen, append([]float64(nil), x...))
	if m.predictFn != nil {
		return m.predictFn(x)
	}
	return 0, nil
}

func (m *mockClassifier) PredictProba(x []float64) ([]float64, error) {
	if m.predictProbaFn != nil {
		return m.predictProbaFn(x)
	}
	return []float64{1}, nil
}

// fixedClassifier always predicts index with the given probabilities.
func fixedClassifier(index int, proba ...float64) *mockClassifier {
	return &mockClassifier{
		predictFn:      func([]float64) (int, error) { return index, nil },
		predictProbaFn: func([]float64) ([]float64, error) { return proba, nil },
	}
}

var severityComparer = cmp.Comparer(func(a, b valueobject.Severity) bool { return a.Equal(b) })
