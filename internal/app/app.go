// Package app implements the application layer for wcw.
package app

import (
	"context"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer installs a package and its dependencies into the workspace.
type Installer interface {
	Install(ctx context.Context, descriptor string) *domain.InstallReport
}

// Updater updates every tracked repository.
type Updater interface {
	Update(ctx context.Context) (*domain.UpdateReport, error)
}

// App represents the main application logic.
type App struct {
	installer Installer
	updater   Updater
	store     ports.WorkspaceStore
	reporter  ports.Reporter
	logger    ports.Logger
	policy    domain.FailurePolicy
}

// New creates a new App instance using the report failure policy.
func New(
	inst Installer,
	updater Updater,
	store ports.WorkspaceStore,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		installer: inst,
		updater:   updater,
		store:     store,
		reporter:  reporter,
		logger:    log,
		policy:    domain.PolicyReport,
	}
}

// WithPolicy sets the aggregate failure policy.
func (a *App) WithPolicy(policy domain.FailurePolicy) *App {
	a.SetPolicy(policy)
	return a
}

// SetPolicy overrides the aggregate failure policy.
func (a *App) SetPolicy(policy domain.FailurePolicy) {
	a.policy = policy
}

// Policy returns the aggregate failure policy.
func (a *App) Policy() domain.FailurePolicy {
	return a.policy
}

// Install installs descriptor with its transitive dependencies and prints
// the result. Branch failures only fail the call under the strict policy.
func (a *App) Install(ctx context.Context, descriptor string) error {
	if descriptor == "" {
		return domain.ErrMissingDescriptor
	}

	a.logger.Debug("installing " + descriptor)
	report := a.installer.Install(ctx, descriptor)
	a.reporter.Install(report)

	if a.policy == domain.PolicyStrict && report.HasFailures() {
		err := domain.Categorize(domain.ErrInstallFailed, nil)
		return zerr.With(err, "failures", len(report.Failures()))
	}
	return nil
}

// Update synchronizes every tracked repository and prints the result.
// Repository failures only fail the call under the strict policy.
func (a *App) Update(ctx context.Context) error {
	report, err := a.updater.Update(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to list tracked repositories")
	}
	a.reporter.Update(report)

	if a.policy == domain.PolicyStrict && report.HasFailures() {
		failed := 0
		for _, o := range report.Outcomes() {
			if o.State != domain.StateDepsSynced {
				failed++
			}
		}
		return zerr.With(domain.Categorize(domain.ErrUpdateFailed, nil), "repositories", failed)
	}
	return nil
}

// List prints every tracked workspace entry.
func (a *App) List(_ context.Context) error {
	entries, err := a.store.List()
	if err != nil {
		return zerr.Wrap(err, "failed to list tracked repositories")
	}
	a.reporter.Entries(entries)
	return nil
}
