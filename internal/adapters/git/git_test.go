package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wcw/internal/adapters/git"
	"go.trai.ch/wcw/internal/adapters/shell"
	"go.trai.ch/wcw/internal/adapters/telemetry"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func gitCommand(dir string, args ...string) domain.Command {
	return domain.Command{Name: "git", Args: args, Dir: dir}
}

func openRepo(t *testing.T, runner *mocks.MockCommandRunner, dir string) *git.Repository {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o750))
	runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "rev-parse", "--is-inside-work-tree")).
		Return([]byte("true\n"), nil)

	repo, err := git.NewProvider(runner, "git").Open(context.Background(), dir)
	require.NoError(t, err)
	return repo.(*git.Repository)
}

func TestProvider_Open_NotACheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	_, err := git.NewProvider(runner, "git").Open(context.Background(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrRepoOpenFailed)
}

func TestProvider_Clone(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dir := filepath.Join(t.TempDir(), "nested", "a")

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name: "git",
		Args: []string{"clone", "https://example.com/a.git", dir},
	}).Return(nil, nil)

	require.NoError(t, git.NewProvider(runner, "git").Clone(context.Background(), "https://example.com/a.git", dir))
	assert.DirExists(t, filepath.Dir(dir))
}

func TestRepository_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dir := t.TempDir()
	repo := openRepo(t, runner, dir)

	runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "status", "--porcelain")).
		Return([]byte(" M index.html\nA  new.js\n?? scratch.txt\n"), nil)

	status, err := repo.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "new.js"}, status.Modified)
	assert.Equal(t, []string{"scratch.txt"}, status.Untracked)
	assert.True(t, status.HasLocalModifications())
}

func TestRepository_StashSave(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want bool
	}{
		{name: "stashed", out: "Saved working directory and index state On master: wcwstash\n", want: true},
		{name: "nothing to stash", out: "No local changes to save\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			dir := t.TempDir()
			repo := openRepo(t, runner, dir)

			runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "stash", "push", "-m", "wcwstash")).
				Return([]byte(tt.out), nil)

			got, err := repo.StashSave(context.Background(), "wcwstash")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_MergeBranches_OnBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dir := t.TempDir()
	repo := openRepo(t, runner, dir)

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "rev-parse", "--abbrev-ref", "HEAD")).
			Return([]byte("master\n"), nil),
		runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "merge", "--no-edit", "origin/master")).
			Return(nil, domain.ErrCommandFailed),
		runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "merge", "--abort")).
			Return(nil, nil),
	)

	err := repo.MergeBranches(context.Background(), "master", "origin/master")
	require.ErrorIs(t, err, domain.ErrMergeConflict)
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRepository_MergeBranches_OffBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dir := t.TempDir()
	repo := openRepo(t, runner, dir)

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "rev-parse", "--abbrev-ref", "HEAD")).
			Return([]byte("feature\n"), nil),
		runner.EXPECT().Run(gomock.Any(), gitCommand(dir, "fetch", ".", "origin/master:master")).
			Return(nil, nil),
	)

	require.NoError(t, repo.MergeBranches(context.Background(), "master", "origin/master"))
}

// TestRepository_Integration drives a real git binary through a clone,
// a stash of local edits and a merge of new upstream commits.
func TestRepository_Integration(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_AUTHOR_NAME", "wcw")
	t.Setenv("GIT_AUTHOR_EMAIL", "wcw@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "wcw")
	t.Setenv("GIT_COMMITTER_EMAIL", "wcw@example.com")
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(logger, telemetry.NewNoOpTracer(), 2)
	ctx := context.Background()
	root := t.TempDir()

	run := func(dir string, args ...string) {
		t.Helper()
		_, err := runner.Run(ctx, gitCommand(dir, args...))
		require.NoError(t, err)
	}

	upstream := filepath.Join(root, "upstream")
	require.NoError(t, os.MkdirAll(upstream, 0o750))
	run(upstream, "init", "-b", "master")
	require.NoError(t, os.WriteFile(filepath.Join(upstream, "index.html"), []byte("v1\n"), 0o600))
	run(upstream, "add", ".")
	run(upstream, "commit", "-m", "v1")

	provider := git.NewProvider(runner, "git")
	checkout := filepath.Join(root, "workspace", "a")
	require.NoError(t, provider.Clone(ctx, upstream, checkout))

	require.NoError(t, os.WriteFile(filepath.Join(upstream, "other.html"), []byte("new\n"), 0o600))
	run(upstream, "add", ".")
	run(upstream, "commit", "-m", "v2")

	require.NoError(t, os.WriteFile(filepath.Join(checkout, "index.html"), []byte("local\n"), 0o600))

	repo, err := provider.Open(ctx, checkout)
	require.NoError(t, err)

	status, err := repo.Status(ctx)
	require.NoError(t, err)
	require.True(t, status.HasLocalModifications())

	stashed, err := repo.StashSave(ctx, "wcwstash")
	require.NoError(t, err)
	assert.True(t, stashed)

	require.NoError(t, repo.FetchAll(ctx))
	require.NoError(t, repo.MergeBranches(ctx, "master", "origin/master"))

	assert.FileExists(t, filepath.Join(checkout, "other.html"))
	got, err := os.ReadFile(filepath.Join(checkout, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "v1\n", string(got))
}
