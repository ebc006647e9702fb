// Package synchronizer brings every tracked checkout up to date with its
// upstream branch and reinstalls its dependencies.
package synchronizer

import (
	"context"
	"path/filepath"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/wcw/internal/engine/installer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DepsInstaller installs the dependencies of a workspace folder.
type DepsInstaller interface {
	InstallDeps(ctx context.Context, s *installer.Session, folder string) error
}

// Options controls the branches and stash label used by an update.
type Options struct {
	Branch     string
	Upstream   string
	StashLabel string
}

// Synchronizer updates tracked repositories.
type Synchronizer struct {
	root      string
	opts      Options
	store     ports.WorkspaceStore
	vcs       ports.VCSProvider
	installer DepsInstaller
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new Synchronizer.
func New(
	root string,
	opts Options,
	store ports.WorkspaceStore,
	vcs ports.VCSProvider,
	deps DepsInstaller,
	logger ports.Logger,
	tracer ports.Tracer,
) *Synchronizer {
	return &Synchronizer{
		root:      root,
		opts:      opts,
		store:     store,
		vcs:       vcs,
		installer: deps,
		logger:    logger,
		tracer:    tracer,
	}
}

// Update runs the update pipeline for every tracked repository concurrently.
// A repository failing never affects the others. The returned error is
// non-nil only when the tracked repositories cannot be listed.
//
// Dependencies are installed only after every merge has settled, so a walk
// that reaches another tracked folder reads its merged manifest.
func (s *Synchronizer) Update(ctx context.Context) (*domain.UpdateReport, error) {
	entries, err := s.store.List()
	if err != nil {
		return nil, err
	}

	session := installer.NewSession()
	report := domain.NewUpdateReport(session.Report())
	outcomes := make([]domain.RepoOutcome, len(entries))

	var merges errgroup.Group
	for i, entry := range entries {
		merges.Go(func() error {
			outcomes[i] = s.updateOne(ctx, entry)
			return nil
		})
	}
	_ = merges.Wait()

	var deps errgroup.Group
	for i := range outcomes {
		if outcomes[i].State != domain.StateMerged {
			continue
		}
		deps.Go(func() error {
			s.syncDeps(ctx, session, &outcomes[i])
			return nil
		})
	}
	_ = deps.Wait()

	for _, o := range outcomes {
		report.AddOutcome(o)
	}
	return report, nil
}

func (s *Synchronizer) updateOne(ctx context.Context, entry domain.WorkspaceEntry) domain.RepoOutcome {
	ctx, span := s.tracer.Start(ctx, "update",
		ports.WithAttribute("folder", entry.Folder),
		ports.WithAttribute("url", entry.Repo.URL),
	)
	defer span.End()

	outcome := domain.RepoOutcome{Folder: entry.Folder, URL: entry.Repo.URL}
	state, err := s.run(ctx, &outcome)
	outcome.State = state
	if err != nil {
		outcome.Err = zerr.With(err, "folder", entry.Folder)
		span.RecordError(outcome.Err)
	}
	span.SetAttribute("state", string(state))
	return outcome
}

// syncDeps moves a merged repository to DEPS_SYNCED or DEPS_SYNC_FAILED.
func (s *Synchronizer) syncDeps(ctx context.Context, session *installer.Session, outcome *domain.RepoOutcome) {
	if err := s.installer.InstallDeps(ctx, session, outcome.Folder); err != nil {
		outcome.State = domain.StateDepsSyncFailed
		outcome.Err = zerr.With(domain.Categorize(domain.ErrDepsSyncFailed, err), "folder", outcome.Folder)
		return
	}
	outcome.State = domain.StateDepsSynced
}

// run drives one repository through OPEN -> CLEAN|STASHED -> FETCHED -> MERGED
// and returns the state reached.
func (s *Synchronizer) run(ctx context.Context, outcome *domain.RepoOutcome) (domain.RepoState, error) {
	folder := outcome.Folder

	repo, err := s.vcs.Open(ctx, filepath.Join(s.root, folder))
	if err != nil {
		return domain.StateFailed, domain.Categorize(domain.ErrRepoOpenFailed, err)
	}
	s.logger.Debug(folder + " " + string(domain.StateOpen))

	status, err := repo.Status(ctx)
	if err != nil {
		return domain.StateFailed, domain.Categorize(domain.ErrStatusFailed, err)
	}

	state := domain.StateClean
	if status.HasLocalModifications() {
		stashed, err := repo.StashSave(ctx, s.opts.StashLabel)
		if err != nil {
			return domain.StateFailed, domain.Categorize(domain.ErrStashFailed, err)
		}
		if stashed {
			outcome.Stashed = true
			state = domain.StateStashed
		}
	}
	s.logger.Debug(folder + " " + string(state))

	if err := repo.FetchAll(ctx); err != nil {
		return domain.StateFailed, domain.Categorize(domain.ErrFetchFailed, err)
	}
	s.logger.Debug(folder + " " + string(domain.StateFetched))

	if err := repo.MergeBranches(ctx, s.opts.Branch, s.opts.Upstream); err != nil {
		return domain.StateMergeFailed, domain.Categorize(domain.ErrMergeConflict, err)
	}
	s.logger.Debug(folder + " " + string(domain.StateMerged))

	return domain.StateMerged, nil
}
