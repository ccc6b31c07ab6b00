package calculator

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	apperrors "investreports/internal/errors"
	"investreports/internal/validation"
	"investreports/pkg/contracts/domain"
)

// PropertyFile is the YAML document read by LoadProperties
type PropertyFile struct {
	Properties []domain.Property `yaml:"properties"`
}

// LoadProperties reads and validates a property file. An empty path returns
// DefaultProperties. Unknown keys are rejected and an empty list is allowed.
func LoadProperties(path string, v *validation.StructValidator) ([]domain.Property, error) {
	if path == "" {
		return DefaultProperties(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("property file %s", path), err)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to read property file %s", path), err)
	}

	return ParseProperties(data, v)
}

// ParseProperties decodes a property document and validates every record
func ParseProperties(data []byte, v *validation.StructValidator) ([]domain.Property, error) {
	var doc PropertyFile
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, apperrors.NewParsingError("invalid property file", err)
	}

	if v == nil {
		v = validation.NewStructValidator()
	}
	for i := range doc.Properties {
		if err := v.Struct(doc.Properties[i]); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				appErr.Message = fmt.Sprintf("property %d: %s", i+1, appErr.Message)
				appErr.WithContext("index", i)
			}
			return nil, err
		}
	}

	if doc.Properties == nil {
		return []domain.Property{}, nil
	}
	return doc.Properties, nil
}
