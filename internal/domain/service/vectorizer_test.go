package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
)

func TestVectorize_FollowsFeatureOrder(t *testing.T) {
	record := model.PatientRecord{"a": 1, "b": 2, "c": 3, "unused": 99}

	vector, err := service.Vectorize(record, []string{"c", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, vector)
}

func TestVectorize_CopiesValuesAsGiven(t *testing.T) {
	record := model.PatientRecord{"a": -4.25, "b": 0, "c": 1e6}

	vector, err := service.Vectorize(record, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []float64{-4.25, 0, 1e6}, vector)
}

func TestVectorize_MissingFeature(t *testing.T) {
	record := model.PatientRecord{"a": 1, "c": 3}

	vector, err := service.Vectorize(record, []string{"a", "b", "c", "d"})
	require.Error(t, err)
	assert.Nil(t, vector)

	var missing *service.MissingFeatureError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "b", missing.Name, "the first absent name in feature order is reported")
	assert.Equal(t, "missing required feature: b", err.Error())
}

func TestVectorize_EmptyFeatureList(t *testing.T) {
	vector, err := service.Vectorize(model.PatientRecord{"a": 1}, nil)
	require.NoError(t, err)
	assert.Empty(t, vector)
}
