package domain

import "runtime"

// FailurePolicy decides whether branch failures fail the whole command.
type FailurePolicy string

const (
	// PolicyReport prints every failure but lets the command succeed.
	PolicyReport FailurePolicy = "report"
	// PolicyStrict fails the command when any branch failed.
	PolicyStrict FailurePolicy = "strict"
)

// Settings is the resolved workspace configuration.
type Settings struct {
	// Root is the workspace root; checkouts live directly under it.
	Root string
	// StorePath is the workspace index file.
	StorePath string
	// Concurrency bounds the number of concurrent external processes.
	Concurrency int
	// FailurePolicy is the aggregate policy for install and update.
	FailurePolicy FailurePolicy

	StagerCommand string
	StagerArgs    []string

	VCSCommand string
	Remote     string
	Branch     string
	StashLabel string

	LogLevel  string
	LogFormat string

	Telemetry bool
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root:          root,
		StorePath:     StoreFileName,
		Concurrency:   runtime.NumCPU() * 2,
		FailurePolicy: PolicyReport,
		StagerCommand: "bower",
		StagerArgs:    []string{"--config.interactive=false"},
		VCSCommand:    "git",
		Remote:        DefaultRemote,
		Branch:        DefaultBranch,
		StashLabel:    DefaultStashLabel,
		LogLevel:      "info",
		LogFormat:     "pretty",
	}
}

// Upstream returns the remote tracking branch merged into Branch.
func (s *Settings) Upstream() string {
	return s.Remote + "/" + s.Branch
}
