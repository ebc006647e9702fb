// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wcw/internal/core/domain"
)

// CommandRunner runs external processes such as the stager and git.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its standard output.
	//
	// A non-zero exit returns an error wrapping domain.ErrCommandFailed that
	// carries the exit code and the tail of standard error as metadata.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
