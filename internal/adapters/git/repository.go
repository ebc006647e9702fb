package git

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

const noLocalChanges = "No local changes to save"

// Repository is an open git checkout.
type Repository struct {
	runner  ports.CommandRunner
	command string
	dir     string
}

var _ ports.Repository = (*Repository)(nil)

// Dir returns the checkout root.
func (r *Repository) Dir() string {
	return r.dir
}

// Status lists modified and untracked paths from "git status --porcelain".
func (r *Repository) Status(ctx context.Context) (domain.RepoStatus, error) {
	out, err := r.git(ctx, "status", "--porcelain")
	if err != nil {
		return domain.RepoStatus{}, err
	}
	return parseStatus(out), nil
}

// StashSave stashes local modifications under label. It returns false when
// there was nothing to stash.
func (r *Repository) StashSave(ctx context.Context, label string) (bool, error) {
	out, err := r.git(ctx, "stash", "push", "-m", label)
	if err != nil {
		return false, err
	}
	return !strings.Contains(string(out), noLocalChanges), nil
}

// FetchAll fetches every configured remote.
func (r *Repository) FetchAll(ctx context.Context) error {
	_, err := r.git(ctx, "fetch", "--all")
	return err
}

// MergeBranches brings upstream into local. When local is checked out the
// merge runs in the work tree and is aborted on conflict; otherwise local
// is fast-forwarded in place.
func (r *Repository) MergeBranches(ctx context.Context, local, upstream string) error {
	head, err := r.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return err
	}

	if strings.TrimSpace(string(head)) == local {
		if _, err := r.git(ctx, "merge", "--no-edit", upstream); err != nil {
			_, _ = r.git(ctx, "merge", "--abort")
			return mergeError(err, local, upstream)
		}
		return nil
	}

	if _, err := r.git(ctx, "fetch", ".", upstream+":"+local); err != nil {
		return mergeError(err, local, upstream)
	}
	return nil
}

func (r *Repository) git(ctx context.Context, args ...string) ([]byte, error) {
	return r.runner.Run(ctx, domain.Command{Name: r.command, Args: args, Dir: r.dir})
}

func parseStatus(out []byte) domain.RepoStatus {
	var status domain.RepoStatus
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}
		code, path := line[:2], line[3:]
		switch code {
		case "??":
			status.Untracked = append(status.Untracked, path)
		case "!!":
		default:
			status.Modified = append(status.Modified, path)
		}
	}
	return status
}

func mergeError(err error, local, upstream string) error {
	wrapped := zerr.With(domain.Categorize(domain.ErrMergeConflict, err), "branch", local)
	return zerr.With(wrapped, "upstream", upstream)
}
