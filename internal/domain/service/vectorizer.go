package service

import (
	"fmt"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
)

// MissingFeatureError reports the first feature the classifier needs that the
// patient record does not carry.
type MissingFeatureError struct {
	Name string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing required feature: %s", e.Name)
}

// Vectorize lays the record out in featureNames order. Values are copied as
// given; there is no coercion, clamping or imputation.
func Vectorize(record model.PatientRecord, featureNames []string) ([]float64, error) {
	vector := make([]float64, len(featureNames))
	for i, name := range featureNames {
		v, ok := record.Lookup(name)
		if !ok {
			return nil, &MissingFeatureError{Name: name}
		}
		vector[i] = v
	}
	return vector, nil
}
