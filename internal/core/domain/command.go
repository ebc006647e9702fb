package domain

import "strings"

// Command is an external process invocation.
type Command struct {
	// Name is the executable, resolved through PATH.
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE entries layered over the process environment.
	Env []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RepoStatus is the working tree state of a checkout.
type RepoStatus struct {
	// Modified lists tracked paths with staged or unstaged changes.
	Modified []string
	// Untracked lists paths unknown to the repository.
	Untracked []string
}

// HasLocalModifications reports whether any tracked file is modified.
// Untracked files are not local modifications.
func (s RepoStatus) HasLocalModifications() bool {
	return len(s.Modified) > 0
}
