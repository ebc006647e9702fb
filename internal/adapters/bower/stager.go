package bower

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stager implements ports.PackageStager by running "bower install" in a
// fresh directory below a process-lifetime scratch root.
type Stager struct {
	runner  ports.CommandRunner
	command string
	args    []string

	once       sync.Once
	scratch    string
	scratchErr error
}

var _ ports.PackageStager = (*Stager)(nil)

// NewStager creates a Stager invoking command with the extra args.
func NewStager(runner ports.CommandRunner, command string, args []string) *Stager {
	return &Stager{
		runner:  runner,
		command: command,
		args:    slices.Clone(args),
	}
}

// Stage installs descriptor into a new staging area and returns one
// component per installed package, ordered by folder.
func (s *Stager) Stage(ctx context.Context, descriptor string) ([]domain.StagedComponent, error) {
	root, err := s.scratchRoot()
	if err != nil {
		return nil, stageError(err, descriptor)
	}

	dir, err := os.MkdirTemp(root, "stage-")
	if err != nil {
		return nil, stageError(err, descriptor)
	}

	args := append([]string{"install", descriptor}, s.args...)
	if _, err := s.runner.Run(ctx, domain.Command{Name: s.command, Args: args, Dir: dir}); err != nil {
		return nil, stageError(err, descriptor)
	}

	componentsDir := filepath.Join(dir, domain.ComponentsDirName)
	entries, err := os.ReadDir(componentsDir)
	if err != nil {
		return nil, stageError(err, descriptor)
	}

	components := make([]domain.StagedComponent, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		components = append(components, stagedComponent(filepath.Join(componentsDir, e.Name()), e.Name()))
	}
	slices.SortFunc(components, func(a, b domain.StagedComponent) int {
		return strings.Compare(a.Folder, b.Folder)
	})

	return components, nil
}

// Close removes the scratch root and every staging area below it.
func (s *Stager) Close() error {
	if s.scratch == "" {
		return nil
	}
	return os.RemoveAll(s.scratch)
}

func (s *Stager) scratchRoot() (string, error) {
	s.once.Do(func() {
		s.scratch, s.scratchErr = os.MkdirTemp("", domain.ScratchDirPrefix)
	})
	return s.scratch, s.scratchErr
}

// stagedComponent derives the origin of one staged package. Packages whose
// manifests declare no git repository become static components.
func stagedComponent(dir, folder string) domain.StagedComponent {
	primary, _ := readOne(filepath.Join(dir, domain.ManifestFileName))
	staged, _ := readOne(filepath.Join(dir, domain.StagedManifestFileName))
	m := mergeManifests(primary, staged)

	c := domain.StagedComponent{Folder: folder, Name: folder}
	if m != nil && m.Name != "" {
		c.Name = m.Name
	}
	if m != nil {
		if url, ok := m.GitURL(); ok {
			c.Origin = domain.GitOrigin{URL: url}
			return c
		}
	}
	c.Origin = domain.StaticOrigin{SourcePath: dir}
	return c
}

func readOne(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside the scratch area
	if err != nil {
		return nil, err
	}
	return domain.ParseManifest(data)
}

func stageError(err error, descriptor string) error {
	return zerr.With(domain.Categorize(domain.ErrStageFailed, err), "descriptor", descriptor)
}
