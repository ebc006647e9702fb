package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrStageFailed is returned when the package stager cannot resolve or fetch a descriptor.
	ErrStageFailed = zerr.New("failed to stage package")

	// ErrCloneFailed is returned when cloning a component repository fails.
	ErrCloneFailed = zerr.New("failed to clone repository")

	// ErrCopyFailed is returned when a static component cannot be copied into the workspace.
	ErrCopyFailed = zerr.New("failed to copy static component")

	// ErrManifestRead is returned when a checkout has no readable or valid manifest.
	ErrManifestRead = zerr.New("failed to read package manifest")

	// ErrMergeConflict is returned when a synchronization merge cannot complete automatically.
	ErrMergeConflict = zerr.New("merge could not be completed automatically")

	// ErrRepoOpenFailed is returned when a tracked checkout cannot be opened.
	ErrRepoOpenFailed = zerr.New("failed to open repository")

	// ErrStatusFailed is returned when the status of a checkout cannot be queried.
	ErrStatusFailed = zerr.New("failed to query repository status")

	// ErrStashFailed is returned when local modifications cannot be stashed.
	ErrStashFailed = zerr.New("failed to stash local modifications")

	// ErrFetchFailed is returned when fetching remotes fails.
	ErrFetchFailed = zerr.New("failed to fetch remotes")

	// ErrDepsSyncFailed is returned when dependency installation after a merge fails.
	ErrDepsSyncFailed = zerr.New("failed to synchronize dependencies")

	// ErrStoreReadFailed is returned when the workspace store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read workspace store")

	// ErrStoreWriteFailed is returned when the workspace store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write workspace store")

	// ErrStoreCorrupt is returned when a workspace store record cannot be decoded.
	ErrStoreCorrupt = zerr.New("corrupt workspace store record")

	// ErrInvalidEntry is returned when a workspace entry has no folder.
	ErrInvalidEntry = zerr.New("workspace entry requires a folder")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrMissingDescriptor is returned when install is invoked without a package descriptor.
	ErrMissingDescriptor = zerr.New("no package descriptor specified")

	// ErrInstallFailed is returned under the strict failure policy when any install branch failed.
	ErrInstallFailed = zerr.New("install finished with failures")

	// ErrUpdateFailed is returned under the strict failure policy when any repository failed to update.
	ErrUpdateFailed = zerr.New("update finished with failures")

	// ErrNotImplemented is returned by commands that are declared but not available yet.
	ErrNotImplemented = zerr.New("command not implemented")
)

// Categorize attaches a category sentinel to cause. errors.Is matches both
// the category and anything in the cause chain, and the result accepts
// zerr.With metadata without losing either.
func Categorize(category, cause error) error {
	if cause == nil {
		return zerr.Wrap(category, "")
	}
	if errors.Is(cause, category) {
		return cause
	}
	return errors.Join(category, cause)
}
