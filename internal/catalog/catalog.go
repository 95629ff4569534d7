package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/packaging-selector/internal/packaging"
)

// Source provides the packaging catalog used by the selector.
type Source interface {
	Options() []packaging.Option
}

// Static is an immutable catalog fixed at construction time.
type Static struct {
	options []packaging.Option
}

// NewStatic validates the given entries and keeps a private copy of them.
func NewStatic(options []packaging.Option) (*Static, error) {
	if err := packaging.ValidateCatalog(options); err != nil {
		return nil, err
	}
	return &Static{options: clone(options)}, nil
}

// Default returns the built-in catalog.
func Default() *Static {
	return &Static{options: packaging.DefaultCatalog()}
}

// file mirrors the YAML catalog layout.
type file struct {
	Packaging []packaging.Option `yaml:"packaging"`
}

// LoadFile reads a catalog from a YAML file of the form:
//
//	packaging:
//	  - name: "100×150"
//	    kind: bag
//	    length: 150
//	    width: 100
//	    tare_weight: 10
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	static, err := NewStatic(f.Packaging)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return static, nil
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Static, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Options returns a copy of the catalog entries.
func (s *Static) Options() []packaging.Option {
	return clone(s.options)
}

func clone(src []packaging.Option) []packaging.Option {
	out := make([]packaging.Option, len(src))
	copy(out, src)
	return out
}
