// Package artifact loads the static files a Predictor needs from an artifact
// directory.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iggi84/patients-health-tracker/internal/domain/model"
	"github.com/iggi84/patients-health-tracker/internal/domain/service"
	"github.com/iggi84/patients-health-tracker/internal/infrastructure/ml"
)

// File names inside the artifact directory.
const (
	ModelFile    = "risk_model.json"
	FeaturesFile = "features.json"
	MetadataFile = "model_metadata.json"
)

type featuresDoc struct {
	Features []string `json:"features"`
}

type metadataDoc struct {
	RiskMapping map[string]int `json:"risk_mapping"`
}

// Load reads the classifier, feature list and category metadata from dir.
// Every failure names the file that caused it.
func Load(dir string) (*service.Artifacts, error) {
	raw, err := readFile(dir, ModelFile)
	if err != nil {
		return nil, err
	}
	classifier, err := ml.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ModelFile, err)
	}

	var features featuresDoc
	if err := decodeFile(dir, FeaturesFile, &features); err != nil {
		return nil, err
	}
	if features.Features == nil {
		return nil, fmt.Errorf("load %s: \"features\" list is missing", FeaturesFile)
	}
	seen := make(map[string]struct{}, len(features.Features))
	for _, name := range features.Features {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("load %s: feature %q listed twice", FeaturesFile, name)
		}
		seen[name] = struct{}{}
	}

	var metadata metadataDoc
	if err := decodeFile(dir, MetadataFile, &metadata); err != nil {
		return nil, err
	}
	categories, err := model.NewCategoryMapping(metadata.RiskMapping)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", MetadataFile, err)
	}

	return &service.Artifacts{
		Classifier: classifier,
		Features:   features.Features,
		Categories: categories,
	}, nil
}

func readFile(dir, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: file not found in %s", name, dir)
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return data, nil
}

func decodeFile(dir, name string, v any) error {
	data, err := readFile(dir, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
