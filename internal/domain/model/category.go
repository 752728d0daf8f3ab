package model

import (
	"fmt"
	"sort"
)

// CategoryMapping relates classifier output indices to human-readable risk
// labels. It is built once when artifacts are loaded and never mutated.
type CategoryMapping struct {
	byIndex map[int]string
}

// NewCategoryMapping builds the inverse index → label table from a
// label → index mapping. Two labels sharing an index make the table
// ambiguous and are rejected. A nil or empty mapping is valid.
func NewCategoryMapping(labels map[string]int) (CategoryMapping, error) {
	byIndex := make(map[int]string, len(labels))

	// Iterate in label order so the reported conflict is deterministic.
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx := labels[name]
		if idx < 0 {
			return CategoryMapping{}, fmt.Errorf("category %q has negative index %d", name, idx)
		}
		if prev, dup := byIndex[idx]; dup {
			return CategoryMapping{}, fmt.Errorf("categories %q and %q share index %d", prev, name, idx)
		}
		byIndex[idx] = name
	}

	return CategoryMapping{byIndex: byIndex}, nil
}

// IsEmpty returns true when no labels are known.
func (m CategoryMapping) IsEmpty() bool {
	return len(m.byIndex) == 0
}

// Len returns the number of known labels.
func (m CategoryMapping) Len() int {
	return len(m.byIndex)
}

// Label returns the label for index, or "Category {index}" when the index is
// unmapped.
func (m CategoryMapping) Label(index int) string {
	if name, ok := m.byIndex[index]; ok {
		return name
	}
	return fmt.Sprintf("Category %d", index)
}
