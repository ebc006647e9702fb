// Package git implements the VCS provider on top of the git CLI.
package git

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.VCSProvider by shelling out to git.
type Provider struct {
	runner  ports.CommandRunner
	command string
}

var _ ports.VCSProvider = (*Provider)(nil)

// NewProvider creates a Provider invoking command, usually "git".
func NewProvider(runner ports.CommandRunner, command string) *Provider {
	return &Provider{runner: runner, command: command}
}

// Clone clones url into dir. dir must not exist or be empty.
func (p *Provider) Clone(ctx context.Context, url, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "create parent directory"), "path", dir)
	}
	_, err := p.runner.Run(ctx, domain.Command{
		Name: p.command,
		Args: []string{"clone", url, dir},
	})
	return err
}

// Open opens the checkout rooted at dir.
func (p *Provider) Open(ctx context.Context, dir string) (ports.Repository, error) {
	meta := filepath.Join(dir, domain.VCSMetadataDirName)
	if _, err := os.Stat(meta); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = zerr.New("not a checkout")
		}
		return nil, zerr.With(domain.Categorize(domain.ErrRepoOpenFailed, err), "path", dir)
	}

	repo := &Repository{runner: p.runner, command: p.command, dir: dir}
	out, err := repo.git(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return nil, zerr.With(domain.Categorize(domain.ErrRepoOpenFailed, err), "path", dir)
	}
	if strings.TrimSpace(string(out)) != "true" {
		return nil, zerr.With(domain.Categorize(domain.ErrRepoOpenFailed, zerr.New("not a work tree")), "path", dir)
	}
	return repo, nil
}
