package app

import (
	"context"
	"errors"

	"go.trai.ch/wcw/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger

	tracer  ports.Tracer
	closers []func() error
}

// NewComponents creates a new Components struct from dependencies.
// closers release process-lifetime resources such as scratch directories.
func NewComponents(app *App, log ports.Logger, tracer ports.Tracer, closers ...func() error) *Components {
	return &Components{
		App:     app,
		Logger:  log,
		tracer:  tracer,
		closers: closers,
	}
}

// Close flushes the tracer and releases every resource.
func (c *Components) Close(ctx context.Context) error {
	var errs []error
	if c.tracer != nil {
		errs = append(errs, c.tracer.Shutdown(ctx))
	}
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
