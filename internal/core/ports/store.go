package ports

import "go.trai.ch/wcw/internal/core/domain"

// WorkspaceStore is the durable index of installed workspace folders.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type WorkspaceStore interface {
	// Add inserts the entry unless its folder is already tracked.
	// Check and insert happen atomically, so of several concurrent Adds for
	// the same folder exactly one returns AddCreated.
	Add(entry domain.WorkspaceEntry) (domain.AddResult, error)

	// Has reports whether the folder is tracked.
	Has(folder string) (bool, error)

	// List returns every tracked entry.
	List() ([]domain.WorkspaceEntry, error)

	// Remove drops the entry for folder. Removing an untracked folder is not an error.
	Remove(folder string) error
}
