package ports

import (
	"context"

	"go.trai.ch/wcw/internal/core/domain"
)

// VCSProvider materializes and opens repository checkouts.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCSProvider interface {
	// Clone clones url into dir. dir must not exist yet.
	Clone(ctx context.Context, url, dir string) error

	// Open opens the checkout at dir.
	Open(ctx context.Context, dir string) (Repository, error)
}

// Repository is an opened checkout.
type Repository interface {
	// Dir returns the checkout's working directory.
	Dir() string

	// Status reports the working tree state.
	Status(ctx context.Context) (domain.RepoStatus, error)

	// StashSave stashes local modifications under label.
	// It returns false when there was nothing to stash.
	StashSave(ctx context.Context, label string) (bool, error)

	// FetchAll fetches every configured remote.
	FetchAll(ctx context.Context) error

	// MergeBranches merges upstream into local. A merge that cannot complete
	// without manual resolution returns an error wrapping domain.ErrMergeConflict
	// and leaves no merge in progress.
	MergeBranches(ctx context.Context, local, upstream string) error
}
