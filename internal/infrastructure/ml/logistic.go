package ml

import (
	"errors"
	"fmt"
	"math"
)

// Logistic is a fitted linear classifier. A single coefficient row encodes a
// binary model; k rows encode a k-class multinomial model.
type Logistic struct {
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

func (l *Logistic) validate() error {
	if len(l.Classes) < 2 {
		return errors.New("logistic model needs at least two classes")
	}
	if len(l.Coef) == 0 {
		return errors.New("logistic model has no coefficients")
	}
	if len(l.Coef) == 1 && len(l.Classes) != 2 {
		return fmt.Errorf("one coefficient row requires two classes, got %d", len(l.Classes))
	}
	if len(l.Coef) > 1 && len(l.Coef) != len(l.Classes) {
		return fmt.Errorf("%d coefficient rows for %d classes", len(l.Coef), len(l.Classes))
	}
	if len(l.Intercept) != len(l.Coef) {
		return fmt.Errorf("%d intercepts for %d coefficient rows", len(l.Intercept), len(l.Coef))
	}
	width := len(l.Coef[0])
	if width == 0 {
		return errors.New("coefficient rows are empty")
	}
	for i, row := range l.Coef {
		if len(row) != width {
			return fmt.Errorf("coefficient row %d has %d entries, want %d", i, len(row), width)
		}
	}
	return nil
}

func (l *Logistic) nFeatures() int {
	return len(l.Coef[0])
}

// PredictProba returns one probability per class.
func (l *Logistic) PredictProba(x []float64) ([]float64, error) {
	if err := checkWidth(x, l.nFeatures()); err != nil {
		return nil, err
	}

	scores := make([]float64, len(l.Coef))
	for i, row := range l.Coef {
		s := l.Intercept[i]
		for j, w := range row {
			s += w * x[j]
		}
		scores[i] = s
	}

	if len(scores) == 1 {
		p := 1 / (1 + math.Exp(-scores[0]))
		return []float64{1 - p, p}, nil
	}
	return softmax(scores), nil
}

// Predict returns the most probable class.
func (l *Logistic) Predict(x []float64) (int, error) {
	proba, err := l.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return l.Classes[argmax(proba)], nil
}

func softmax(scores []float64) []float64 {
	peak := scores[argmax(scores)]
	out := make([]float64, len(scores))
	var total float64
	for i, s := range scores {
		out[i] = math.Exp(s - peak)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}
