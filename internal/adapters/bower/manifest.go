// Package bower stages packages with the bower CLI and reads bower manifests.
package bower

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

// ManifestReader implements ports.ManifestReader for bower.json files.
type ManifestReader struct{}

var _ ports.ManifestReader = ManifestReader{}

// Read parses dir/bower.json, falling back to the .bower.json bower writes
// next to installed packages.
func (ManifestReader) Read(_ context.Context, dir string) (*domain.Manifest, error) {
	return readManifest(dir)
}

func readManifest(dir string) (*domain.Manifest, error) {
	var firstErr error
	for _, name := range []string{domain.ManifestFileName, domain.StagedManifestFileName} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path) //nolint:gosec // path is built from workspace folders
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			return nil, zerr.With(domain.Categorize(domain.ErrManifestRead, err), "path", path)
		}

		m, err := domain.ParseManifest(data)
		if err != nil {
			return nil, zerr.With(domain.Categorize(domain.ErrManifestRead, err), "path", path)
		}
		return m, nil
	}

	return nil, zerr.With(domain.Categorize(domain.ErrManifestRead, firstErr), "path", filepath.Join(dir, domain.ManifestFileName))
}

// mergeManifests fills gaps in primary from the staged metadata manifest.
func mergeManifests(primary, staged *domain.Manifest) *domain.Manifest {
	switch {
	case primary == nil:
		return staged
	case staged == nil:
		return primary
	}
	merged := *primary
	if merged.Name == "" {
		merged.Name = staged.Name
	}
	if _, ok := merged.GitURL(); !ok {
		merged.Repository = staged.Repository
	}
	return &merged
}
