// Package catalog serves the freight type catalogue (display names and
// descriptions) from a YAML document.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"logistics/internal/core/domain/model/freight"
	"logistics/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed freight_types.yaml
var defaultDocument []byte

// DefaultDocument returns the catalogue shipped with the binary.
func DefaultDocument() []byte {
	return slices.Clone(defaultDocument)
}

type document struct {
	FreightTypes []entry `yaml:"freight_types"`
}

type entry struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// YAMLCatalog is an immutable, in-memory catalogue loaded once at startup.
type YAMLCatalog struct {
	types []freight.Descriptor
}

// NewYAMLCatalog parses data and checks that it describes exactly the codes in
// known, in any order. Entries are listed in the order known gives them.
func NewYAMLCatalog(data []byte, known []freight.Type) (*YAMLCatalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("freight catalog", err)
	}

	byCode := make(map[freight.Type]freight.Descriptor, len(doc.FreightTypes))
	for i, e := range doc.FreightTypes {
		code, err := freight.ParseType(e.Code)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("freight catalog entry %d", i), err)
		}
		if e.Name == "" {
			return nil, errs.NewValueIsRequiredError(fmt.Sprintf("freight catalog entry %s name", code))
		}
		if _, dup := byCode[code]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"freight catalog",
				fmt.Errorf("duplicate entry for %s", code),
			)
		}
		byCode[code] = freight.Descriptor{Code: code, Name: e.Name, Description: e.Description}
	}

	types := make([]freight.Descriptor, 0, len(known))
	for _, code := range known {
		d, ok := byCode[code]
		if !ok {
			return nil, errs.NewObjectNotFoundError("freight_type", code)
		}
		types = append(types, d)
		delete(byCode, code)
	}

	for code := range byCode {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"freight catalog",
			fmt.Errorf("%s has no freight calculator", code),
		)
	}

	return &YAMLCatalog{types: types}, nil
}

// List returns a copy of the catalogue.
func (c *YAMLCatalog) List(_ context.Context) ([]freight.Descriptor, error) {
	return slices.Clone(c.types), nil
}
