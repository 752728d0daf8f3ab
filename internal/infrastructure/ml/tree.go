package ml

import (
	"errors"
	"fmt"
)

// leafChild marks the absence of a child node.
const leafChild = -1

// Node is one CART node. Internal nodes route on Feature/Threshold; leaves
// carry per-class weights in Value.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

func (n Node) isLeaf() bool {
	return n.Left == leafChild && n.Right == leafChild
}

// Tree is a fitted decision tree stored as a flat node array rooted at 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// validate checks that every path from the root terminates at a leaf of the
// right width. Children must sit after their parent so traversal cannot loop.
func (t Tree) validate(nFeatures, nClasses int) error {
	if len(t.Nodes) == 0 {
		return errors.New("tree has no nodes")
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			if len(n.Value) != nClasses {
				return fmt.Errorf("leaf %d has %d class weights, want %d", i, len(n.Value), nClasses)
			}
			var total float64
			for _, w := range n.Value {
				if w < 0 {
					return fmt.Errorf("leaf %d has negative weight", i)
				}
				total += w
			}
			if total == 0 {
				return fmt.Errorf("leaf %d has no weight", i)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= nFeatures {
			return fmt.Errorf("node %d splits on feature %d, model has %d", i, n.Feature, nFeatures)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d has invalid child %d", i, child)
			}
		}
	}
	return nil
}

// proba walks x down to a leaf and returns its normalised class weights.
func (t Tree) proba(x []float64) []float64 {
	n := t.Nodes[0]
	for !n.isLeaf() {
		if x[n.Feature] <= n.Threshold {
			n = t.Nodes[n.Left]
		} else {
			n = t.Nodes[n.Right]
		}
	}

	var total float64
	for _, w := range n.Value {
		total += w
	}
	out := make([]float64, len(n.Value))
	for i, w := range n.Value {
		out[i] = w / total
	}
	return out
}

// Forest averages the class probabilities of its trees. A single decision
// tree is a forest of one.
type Forest struct {
	Classes   []int  `json:"classes"`
	NFeatures int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}

func (f *Forest) validate() error {
	if len(f.Classes) == 0 {
		return errors.New("model has no classes")
	}
	if f.NFeatures <= 0 {
		return errors.New("n_features must be positive")
	}
	if len(f.Trees) == 0 {
		return errors.New("forest has no trees")
	}
	for i, t := range f.Trees {
		if err := t.validate(f.NFeatures, len(f.Classes)); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

// PredictProba returns the mean of every tree's leaf distribution, one column
// per entry of Classes.
func (f *Forest) PredictProba(x []float64) ([]float64, error) {
	if err := checkWidth(x, f.NFeatures); err != nil {
		return nil, err
	}

	out := make([]float64, len(f.Classes))
	for _, t := range f.Trees {
		for i, p := range t.proba(x) {
			out[i] += p
		}
	}
	for i := range out {
		out[i] /= float64(len(f.Trees))
	}
	return out, nil
}

// Predict returns the class with the highest mean probability.
func (f *Forest) Predict(x []float64) (int, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return f.Classes[argmax(proba)], nil
}
