package configuration

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrExporterUnsupported preserves the upstream behaviour of exporter
// auto-bind detection: deliberately unimplemented, never silently ignored.
var ErrExporterUnsupported = errors.New("exporter auto-bind detection is not implemented; please configure bind manually")

// ErrNoBinding is returned when neither bind nor exporter is configured.
var ErrNoBinding = errors.New("neither bind nor exporter configured")

func (c LogAggregateConfiguration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Bind == "" {
		if c.Exporter == "" {
			return ErrNoBinding
		}
		return ErrExporterUnsupported
	}
	return nil
}
