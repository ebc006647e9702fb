// Package installer materializes a package and its transitive dependencies
// into the workspace, cloning git components and copying static ones.
package installer

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Installer installs packages into the workspace rooted at root.
type Installer struct {
	root      string
	stager    ports.PackageStager
	store     ports.WorkspaceStore
	vcs       ports.VCSProvider
	fs        ports.FileSystem
	manifests ports.ManifestReader
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new Installer.
func New(
	root string,
	stager ports.PackageStager,
	store ports.WorkspaceStore,
	vcs ports.VCSProvider,
	fs ports.FileSystem,
	manifests ports.ManifestReader,
	logger ports.Logger,
	tracer ports.Tracer,
) *Installer {
	return &Installer{
		root:      root,
		stager:    stager,
		store:     store,
		vcs:       vcs,
		fs:        fs,
		manifests: manifests,
		logger:    logger,
		tracer:    tracer,
	}
}

// Install installs descriptor and everything it depends on in a new session.
// Every branch settles before Install returns; failures are in the report.
func (i *Installer) Install(ctx context.Context, descriptor string) *domain.InstallReport {
	s := NewSession()
	_ = i.InstallInto(ctx, s, descriptor)
	return s.Report()
}

// InstallInto installs descriptor within an existing session. It returns the
// joined failures of this descriptor's subtree, which are also recorded in
// the session report.
func (i *Installer) InstallInto(ctx context.Context, s *Session, descriptor string) error {
	ctx, span := i.tracer.Start(ctx, "install", ports.WithAttribute("descriptor", descriptor))
	defer span.End()

	components, err := i.stager.Stage(ctx, descriptor)
	if err != nil {
		err = zerr.With(domain.Categorize(domain.ErrStageFailed, err), "descriptor", descriptor)
		s.report.AddFailure(domain.Failure{Descriptor: descriptor, Err: err})
		span.RecordError(err)
		return err
	}
	span.SetAttribute("components", len(components))

	err = fanOut(components, func(c domain.StagedComponent) error {
		return i.installComponent(ctx, s, descriptor, c)
	})
	span.RecordError(err)
	return err
}

// InstallDeps installs every dependency declared by the manifest of the
// workspace folder. A folder is walked at most once per session.
func (i *Installer) InstallDeps(ctx context.Context, s *Session, folder string) error {
	if !s.claimWalk(folder) {
		return nil
	}

	ctx, span := i.tracer.Start(ctx, "deps", ports.WithAttribute("folder", folder))
	defer span.End()

	manifest, err := i.manifests.Read(ctx, filepath.Join(i.root, folder))
	if err != nil {
		err = zerr.With(domain.Categorize(domain.ErrManifestRead, err), "folder", folder)
		s.report.AddFailure(domain.Failure{Folder: folder, Err: err})
		span.RecordError(err)
		return err
	}

	descriptors := manifest.Descriptors()
	span.SetAttribute("dependencies", len(descriptors))
	if len(descriptors) > 0 {
		i.logger.Debug("installing " + folder + " dependencies")
	}

	err = fanOut(descriptors, func(d string) error {
		return i.InstallInto(ctx, s, d)
	})
	span.RecordError(err)
	return err
}

func (i *Installer) installComponent(ctx context.Context, s *Session, descriptor string, c domain.StagedComponent) error {
	switch origin := c.Origin.(type) {
	case domain.GitOrigin:
		return i.loadGit(ctx, s, descriptor, c, origin)
	case domain.StaticOrigin:
		return i.loadStatic(ctx, s, descriptor, c, origin)
	default:
		return i.fail(s, descriptor, c, zerr.New("unknown component origin"))
	}
}

func (i *Installer) loadGit(ctx context.Context, s *Session, descriptor string, c domain.StagedComponent, origin domain.GitOrigin) error {
	co, owner := s.acquireCheckout(c.Folder)
	if !owner {
		// Another branch of this session installs the folder; its manifest
		// is only on disk once that clone has finished.
		ready, err := co.wait(ctx)
		if err != nil {
			return i.fail(s, descriptor, c, err)
		}
		if !ready {
			return nil
		}
		return i.InstallDeps(ctx, s, c.Folder)
	}

	result, err := i.store.Add(domain.WorkspaceEntry{Folder: c.Folder, Repo: origin.Repo()})
	if err != nil {
		co.settle(false)
		return i.fail(s, descriptor, c, err)
	}

	if result == domain.AddAlreadyExists {
		co.settle(true)
		i.logger.Debug(c.Folder + " already installed")
		s.report.AddSkipped(c.Folder)
		return i.InstallDeps(ctx, s, c.Folder)
	}

	i.logger.Info("cloning " + c.Folder)
	if err := i.clone(ctx, origin.URL, c.Folder); err != nil {
		if rmErr := i.store.Remove(c.Folder); rmErr != nil {
			i.logger.Error(zerr.With(rmErr, "folder", c.Folder))
		}
		co.settle(false)
		return i.fail(s, descriptor, c, domain.Categorize(domain.ErrCloneFailed, err))
	}
	co.settle(true)

	s.report.AddCloned(c.Folder)
	return i.InstallDeps(ctx, s, c.Folder)
}

func (i *Installer) clone(ctx context.Context, url, folder string) error {
	ctx, span := i.tracer.Start(ctx, "clone",
		ports.WithAttribute("folder", folder),
		ports.WithAttribute("url", url),
	)
	defer span.End()

	err := i.vcs.Clone(ctx, url, filepath.Join(i.root, folder))
	span.RecordError(err)
	return err
}

func (i *Installer) loadStatic(ctx context.Context, s *Session, descriptor string, c domain.StagedComponent, origin domain.StaticOrigin) error {
	target := filepath.Join(i.root, c.Folder)

	checkout, err := i.fs.IsCheckout(target)
	if err != nil {
		return i.fail(s, descriptor, c, domain.Categorize(domain.ErrCopyFailed, err))
	}
	if checkout {
		i.logger.Debug(c.Folder + " is a checkout, not copying")
		s.report.AddSkipped(c.Folder)
		return i.InstallDeps(ctx, s, c.Folder)
	}

	if !s.claimWarning(c.Name) {
		return nil
	}
	i.logger.Warn("Repository must be specified for " + c.Name + ". Falling back to static mode.")

	if err := i.fs.CopyTree(origin.SourcePath, target); err != nil {
		return i.fail(s, descriptor, c, domain.Categorize(domain.ErrCopyFailed, err))
	}

	s.report.AddCopied(c.Folder)
	return i.InstallDeps(ctx, s, c.Folder)
}

func (i *Installer) fail(s *Session, descriptor string, c domain.StagedComponent, err error) error {
	origin := ""
	if c.Origin != nil {
		origin = c.Origin.String()
	}

	err = zerr.With(err, "folder", c.Folder)
	err = zerr.With(err, "descriptor", descriptor)
	if origin != "" {
		err = zerr.With(err, "origin", origin)
	}

	s.report.AddFailure(domain.Failure{
		Folder:     c.Folder,
		Descriptor: descriptor,
		Origin:     origin,
		Err:        err,
	})
	return err
}

// fanOut runs fn for every item concurrently and joins every error.
// A failing branch never cancels its siblings.
func fanOut[T any](items []T, fn func(T) error) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, item := range items {
		g.Go(func() error {
			if err := fn(item); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
