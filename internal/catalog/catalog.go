// Package catalog loads preset search and bracket inputs together with
// their expected results, and verifies every implementation against them.
//
// The default catalog is embedded from presets.yaml; a different file can
// be supplied with LoadFile.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presets []byte

var (
	// ErrEmptyName is returned when a case has no name.
	ErrEmptyName = errors.New("catalog: case name is empty")

	// ErrDuplicateName is returned when two cases of one kind share a name.
	ErrDuplicateName = errors.New("catalog: duplicate case name")

	// ErrUnsorted is returned when a search case lists unsorted items.
	ErrUnsorted = errors.New("catalog: search items are not sorted")

	// ErrBadIndex is returned when an expected index is inconsistent
	// with the items or the expected presence.
	ErrBadIndex = errors.New("catalog: expected index is invalid")

	// ErrBadReason is returned when a balanced case names an unknown reason.
	ErrBadReason = errors.New("catalog: unknown reason")
)

// SearchCase is one binary search preset.
type SearchCase struct {
	Name   string  `yaml:"name"`
	Target int32   `yaml:"target"`
	Items  []int32 `yaml:"items"`
	Found  bool    `yaml:"found"`

	// Index, when set, is the exact index expected. When nil any index
	// holding Target is accepted.
	Index *int `yaml:"index,omitempty"`
}

// BalanceCase is one bracket preset.
type BalanceCase struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Balanced bool   `yaml:"balanced"`

	// Reason, when set, must match brackets.Reason.String() of Check.
	Reason string `yaml:"reason,omitempty"`
}

// Catalog groups the presets of both algorithms.
type Catalog struct {
	Search   []SearchCase  `yaml:"search"`
	Balanced []BalanceCase `yaml:"balanced"`
}

// Len returns the total number of cases.
func (c *Catalog) Len() int {
	return len(c.Search) + len(c.Balanced)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(presets)
}

// LoadFile reads and validates a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data and validates the result.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks names, sortedness and expected indexes.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Search))
	for _, sc := range c.Search {
		if err := checkName(seen, sc.Name); err != nil {
			return err
		}
		if !slices.IsSorted(sc.Items) {
			return fmt.Errorf("%w: %q", ErrUnsorted, sc.Name)
		}
		if sc.Index == nil {
			continue
		}
		i := *sc.Index
		if !sc.Found || i < 0 || i >= len(sc.Items) || sc.Items[i] != sc.Target {
			return fmt.Errorf("%w: %q index %d", ErrBadIndex, sc.Name, i)
		}
	}

	seen = make(map[string]bool, len(c.Balanced))
	for _, bc := range c.Balanced {
		if err := checkName(seen, bc.Name); err != nil {
			return err
		}
		if bc.Reason != "" && !knownReason(bc.Reason) {
			return fmt.Errorf("%w: %q reason %q", ErrBadReason, bc.Name, bc.Reason)
		}
	}

	return nil
}

func checkName(seen map[string]bool, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if seen[name] {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	seen[name] = true

	return nil
}
