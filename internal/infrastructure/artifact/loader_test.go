package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iggi84/patients-health-tracker/internal/infrastructure/artifact"
)

const stumpModel = `{
  "type": "decision_tree",
  "classes": [0, 1],
  "n_features": 2,
  "trees": [{"nodes": [
    {"feature": 0, "threshold": 100, "left": 1, "right": 2},
    {"feature": -1, "left": -1, "right": -1, "value": [3, 1]},
    {"feature": -1, "left": -1, "right": -1, "value": [1, 3]}
  ]}]
}`

func writeArtifacts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func validFiles() map[string]string {
	return map[string]string{
		artifact.ModelFile:    stumpModel,
		artifact.FeaturesFile: `{"features": ["Heart Rate", "Oxygen Saturation"]}`,
		artifact.MetadataFile: `{"risk_mapping": {"Low Risk": 0, "High Risk": 1}}`,
	}
}

func TestLoad(t *testing.T) {
	a, err := artifact.Load(writeArtifacts(t, validFiles()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Heart Rate", "Oxygen Saturation"}, a.Features)
	assert.Equal(t, "High Risk", a.Categories.Label(1))

	class, err := a.Classifier.Predict([]float64{120, 90})
	require.NoError(t, err)
	assert.Equal(t, 1, class)
}

func TestLoad_MetadataWithoutMapping(t *testing.T) {
	files := validFiles()
	files[artifact.MetadataFile] = `{"trained_at": "2024-11-02"}`

	a, err := artifact.Load(writeArtifacts(t, files))
	require.NoError(t, err)
	assert.True(t, a.Categories.IsEmpty())
}

func TestLoad_RepositoryArtifacts(t *testing.T) {
	a, err := artifact.Load(filepath.Join("..", "..", "..", "ml"))
	require.NoError(t, err)

	assert.Len(t, a.Features, 11)
	assert.Equal(t, 2, a.Categories.Len())

	proba, err := a.Classifier.PredictProba(make([]float64, len(a.Features)))
	require.NoError(t, err)
	assert.Len(t, proba, 2)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
		errMsg string
	}{
		{"missing model", func(f map[string]string) { delete(f, artifact.ModelFile) }, "load risk_model.json: file not found"},
		{"missing features", func(f map[string]string) { delete(f, artifact.FeaturesFile) }, "load features.json: file not found"},
		{"missing metadata", func(f map[string]string) { delete(f, artifact.MetadataFile) }, "load model_metadata.json: file not found"},
		{"corrupt model", func(f map[string]string) { f[artifact.ModelFile] = `not json` }, "load risk_model.json"},
		{"corrupt features", func(f map[string]string) { f[artifact.FeaturesFile] = `[` }, "load features.json"},
		{"features key absent", func(f map[string]string) { f[artifact.FeaturesFile] = `{}` }, `"features" list is missing`},
		{"duplicate feature", func(f map[string]string) {
			f[artifact.FeaturesFile] = `{"features": ["Heart Rate", "Heart Rate"]}`
		}, `feature "Heart Rate" listed twice`},
		{"mapping not an object", func(f map[string]string) {
			f[artifact.MetadataFile] = `{"risk_mapping": ["Low Risk"]}`
		}, "load model_metadata.json"},
		{"duplicate mapping index", func(f map[string]string) {
			f[artifact.MetadataFile] = `{"risk_mapping": {"Low Risk": 0, "Normal": 0}}`
		}, "share index 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := validFiles()
			tt.mutate(files)

			a, err := artifact.Load(writeArtifacts(t, files))
			require.Error(t, err)
			assert.Nil(t, a)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
