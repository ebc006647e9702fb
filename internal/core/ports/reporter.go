package ports

import "go.trai.ch/wcw/internal/core/domain"

// Reporter presents command results to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Install prints the summary of an install session.
	Install(report *domain.InstallReport)
	// Update prints per-repository outcomes and stash notices.
	Update(report *domain.UpdateReport)
	// Entries prints the tracked workspace entries.
	Entries(entries []domain.WorkspaceEntry)
}
