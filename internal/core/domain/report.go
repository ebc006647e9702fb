package domain

import (
	"slices"
	"strings"
	"sync"
)

// Failure is one failed branch of an install or update run.
type Failure struct {
	// Folder is the workspace folder the failure is attributed to, if known.
	Folder string
	// Descriptor is the package descriptor being installed, if any.
	Descriptor string
	// Origin is the repository URL or static source path, if known.
	Origin string
	// Err is the cause, carrying a category sentinel such as ErrCloneFailed.
	Err error
}

// InstallReport aggregates the outcome of one top-level install session.
// It is safe for concurrent use.
type InstallReport struct {
	mu       sync.Mutex
	cloned   []string
	copied   []string
	skipped  []string
	failures []Failure
}

// NewInstallReport creates an empty InstallReport.
func NewInstallReport() *InstallReport {
	return &InstallReport{}
}

// AddCloned records a folder that was freshly cloned.
func (r *InstallReport) AddCloned(folder string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cloned = append(r.cloned, folder)
}

// AddCopied records a folder installed by static copy.
func (r *InstallReport) AddCopied(folder string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copied = append(r.copied, folder)
}

// AddSkipped records a folder that was already installed.
func (r *InstallReport) AddSkipped(folder string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = append(r.skipped, folder)
}

// AddFailure records a failed branch.
func (r *InstallReport) AddFailure(f Failure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, f)
}

// Cloned returns the cloned folders in sorted order.
func (r *InstallReport) Cloned() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedCopy(r.cloned)
}

// Copied returns the statically copied folders in sorted order.
func (r *InstallReport) Copied() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedCopy(r.copied)
}

// Skipped returns the folders found already installed, sorted and unique.
func (r *InstallReport) Skipped() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Compact(sortedCopy(r.skipped))
}

// Failures returns the recorded failures ordered by folder then descriptor.
func (r *InstallReport) Failures() []Failure {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := slices.Clone(r.failures)
	sortFailures(out)
	return out
}

// HasFailures reports whether any branch failed.
func (r *InstallReport) HasFailures() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failures) > 0
}

// RepoState is a state of the per-repository update pipeline.
type RepoState string

const (
	// StateOpen means the checkout was opened.
	StateOpen RepoState = "OPEN"
	// StateClean means no local modification was found.
	StateClean RepoState = "CLEAN"
	// StateStashed means local modifications were stashed.
	StateStashed RepoState = "STASHED"
	// StateFetched means every remote was fetched.
	StateFetched RepoState = "FETCHED"
	// StateMerged means the local branch now includes upstream.
	StateMerged RepoState = "MERGED"
	// StateMergeFailed is terminal and fatal: the merge needs manual resolution.
	StateMergeFailed RepoState = "MERGE_FAILED"
	// StateDepsSynced is terminal: the repository and its dependencies are up to date.
	StateDepsSynced RepoState = "DEPS_SYNCED"
	// StateDepsSyncFailed is terminal but degraded: content is current, dependencies may be stale.
	StateDepsSyncFailed RepoState = "DEPS_SYNC_FAILED"
	// StateFailed is terminal and fatal: the pipeline stopped before merging.
	StateFailed RepoState = "FAILED"
)

// Fatal reports whether the state is a fatal terminal state.
func (s RepoState) Fatal() bool {
	return s == StateMergeFailed || s == StateFailed
}

// RepoOutcome is the final result of updating one tracked repository.
type RepoOutcome struct {
	Folder  string
	URL     string
	State   RepoState
	Stashed bool
	Err     error
}

// UpdateReport aggregates per-repository outcomes of one update run.
// It is safe for concurrent use.
type UpdateReport struct {
	mu       sync.Mutex
	outcomes []RepoOutcome
	install  *InstallReport
}

// NewUpdateReport creates an UpdateReport whose dependency installs are
// recorded in install.
func NewUpdateReport(install *InstallReport) *UpdateReport {
	return &UpdateReport{install: install}
}

// AddOutcome records the outcome of one repository.
func (r *UpdateReport) AddOutcome(o RepoOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns every outcome ordered by folder.
func (r *UpdateReport) Outcomes() []RepoOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := slices.Clone(r.outcomes)
	slices.SortFunc(out, func(a, b RepoOutcome) int {
		return strings.Compare(a.Folder, b.Folder)
	})
	return out
}

// Install returns the report of dependency installs triggered by the update.
func (r *UpdateReport) Install() *InstallReport {
	return r.install
}

// Stashed returns the folders whose local modifications were stashed.
func (r *UpdateReport) Stashed() []string {
	var folders []string
	for _, o := range r.Outcomes() {
		if o.Stashed {
			folders = append(folders, o.Folder)
		}
	}
	return folders
}

// HasFailures reports whether any repository ended in a non-success state
// or any triggered dependency install failed.
func (r *UpdateReport) HasFailures() bool {
	for _, o := range r.Outcomes() {
		if o.State != StateDepsSynced {
			return true
		}
	}
	return r.install != nil && r.install.HasFailures()
}

func sortedCopy(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}

func sortFailures(fs []Failure) {
	slices.SortStableFunc(fs, func(a, b Failure) int {
		if c := strings.Compare(a.Folder, b.Folder); c != 0 {
			return c
		}
		return strings.Compare(a.Descriptor, b.Descriptor)
	})
}
