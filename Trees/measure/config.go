package main

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/go-bst/Trees"
	"gopkg.in/yaml.v3"
)

// Workload describes one measurement: Size distinct values are added, then
// at step i of Steps, i/Steps*RemoveRatio of them are removed and looked up
// again.
type Workload struct {
	Kind        string  `yaml:"kind"`
	Size        int     `yaml:"size"`
	Steps       int     `yaml:"steps"`
	Seed        int64   `yaml:"seed"`
	RemoveRatio float64 `yaml:"remove_ratio"`
}

var defaultWorkload = Workload{
	Kind:        "avl",
	Size:        100000,
	Steps:       10,
	Seed:        1,
	RemoveRatio: 0.5,
}

// LoadWorkload reads path, keeping the defaults for absent fields. An empty
// path gives the defaults.
func LoadWorkload(path string) (*Workload, error) {
	w := defaultWorkload
	if path == "" {
		return &w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload: %w", err)
	}
	if err = yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse workload %s: %w", path, err)
	}
	if err = w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (w *Workload) Validate() error {
	if _, err := newTree(w.Kind); err != nil {
		return err
	}
	if w.Size < 1 {
		return &Trees.ArgumentError{Name: "size", Reason: "must be positive"}
	}
	if w.Steps < 1 {
		return &Trees.ArgumentError{Name: "steps", Reason: "must be positive"}
	}
	if w.RemoveRatio < 0 || w.RemoveRatio > 1 {
		return &Trees.ArgumentError{Name: "remove_ratio", Reason: "must be in [0, 1]"}
	}
	return nil
}

// Removals at step i, 1<=i<=Steps.
func (w *Workload) Removals(i int) int {
	return int(float64(w.Size) * w.RemoveRatio * float64(i) / float64(w.Steps))
}

func (w *Workload) Marshal() ([]byte, error) {
	return yaml.Marshal(w)
}

func newTree(kind string) (Trees.Tree[int], error) {
	switch kind {
	case "avl":
		return Trees.NewAVL[int](), nil
	case "bst":
		return Trees.NewBST[int](), nil
	}
	return nil, &Trees.ArgumentError{Name: "kind", Reason: fmt.Sprintf("unknown tree %q, want avl or bst", kind)}
}
