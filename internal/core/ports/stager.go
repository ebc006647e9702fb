package ports

import (
	"context"

	"go.trai.ch/wcw/internal/core/domain"
)

// PackageStager stages a package and its direct dependencies into a scratch
// area and reports where each staged component comes from.
//
//go:generate go run go.uber.org/mock/mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type PackageStager interface {
	// Stage resolves the descriptor in a fresh scratch area. Results are never
	// memoized across calls.
	Stage(ctx context.Context, descriptor string) ([]domain.StagedComponent, error)
}

// ManifestReader reads the package manifest of a workspace checkout.
type ManifestReader interface {
	// Read parses the manifest found in dir.
	Read(ctx context.Context, dir string) (*domain.Manifest, error)
}
