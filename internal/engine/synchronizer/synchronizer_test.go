package synchronizer_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wcw/internal/adapters/store"
	"go.trai.ch/wcw/internal/adapters/telemetry"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports/mocks"
	"go.trai.ch/wcw/internal/engine/installer"
	"go.trai.ch/wcw/internal/engine/synchronizer"
	"go.uber.org/mock/gomock"
)

const root = "/workspace"

var opts = synchronizer.Options{Branch: "master", Upstream: "origin/master", StashLabel: "wcwstash"}

// fakeDeps records InstallDeps calls and fails for the folders in fail.
type fakeDeps struct {
	mu       sync.Mutex
	folders  []string
	sessions map[*installer.Session]struct{}
	fail     map[string]error
	delay    time.Duration
}

func (f *fakeDeps) InstallDeps(_ context.Context, s *installer.Session, folder string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.folders = append(f.folders, folder)
	if f.sessions == nil {
		f.sessions = make(map[*installer.Session]struct{})
	}
	f.sessions[s] = struct{}{}
	return f.fail[folder]
}

func entries(folders ...string) []domain.WorkspaceEntry {
	out := make([]domain.WorkspaceEntry, 0, len(folders))
	for _, f := range folders {
		out = append(out, domain.WorkspaceEntry{
			Folder: f,
			Repo:   domain.Repo{Type: "git", URL: "https://example.com/" + f + ".git"},
		})
	}
	return out
}

type fixture struct {
	store  *mocks.MockWorkspaceStore
	vcs    *mocks.MockVCSProvider
	logger *mocks.MockLogger
	deps   *fakeDeps
	sync   *synchronizer.Synchronizer
}

func newFixture(t *testing.T, ctrl *gomock.Controller, folders ...string) *fixture {
	t.Helper()
	f := &fixture{
		store:  mocks.NewMockWorkspaceStore(ctrl),
		vcs:    mocks.NewMockVCSProvider(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		deps:   &fakeDeps{},
	}
	f.store.EXPECT().List().Return(entries(folders...), nil)
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.sync = synchronizer.New(root, opts, f.store, f.vcs, f.deps, f.logger, telemetry.NewNoOpTracer())
	return f
}

// cleanRepo expects a full, successful pipeline without local modifications.
func cleanRepo(ctrl *gomock.Controller, f *fixture, folder string) *mocks.MockRepository {
	repo := mocks.NewMockRepository(ctrl)
	f.vcs.EXPECT().Open(gomock.Any(), filepath.Join(root, folder)).Return(repo, nil)
	repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{}, nil)
	repo.EXPECT().FetchAll(gomock.Any()).Return(nil)
	return repo
}

func TestSynchronizer_Update_StashesBeforeFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, "a")
	repo := mocks.NewMockRepository(ctrl)

	gomock.InOrder(
		f.vcs.EXPECT().Open(gomock.Any(), filepath.Join(root, "a")).Return(repo, nil),
		repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{Modified: []string{"index.html"}}, nil),
		repo.EXPECT().StashSave(gomock.Any(), "wcwstash").Return(true, nil),
		repo.EXPECT().FetchAll(gomock.Any()).Return(nil),
		repo.EXPECT().MergeBranches(gomock.Any(), "master", "origin/master").Return(nil),
	)
	// The stash notice belongs to the report, not the log.
	f.logger.EXPECT().Info(gomock.Any()).Times(0)

	report, err := f.sync.Update(context.Background())
	require.NoError(t, err)

	outcomes := report.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StateDepsSynced, outcomes[0].State)
	assert.True(t, outcomes[0].Stashed)
	assert.Equal(t, []string{"a"}, report.Stashed())
	assert.Equal(t, []string{"a"}, f.deps.folders)
	assert.False(t, report.HasFailures())
}

func TestSynchronizer_Update_UntrackedFilesAreNotStashed(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, "a")
	repo := mocks.NewMockRepository(ctrl)

	f.vcs.EXPECT().Open(gomock.Any(), gomock.Any()).Return(repo, nil)
	repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{Untracked: []string{"notes.txt"}}, nil)
	repo.EXPECT().StashSave(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().FetchAll(gomock.Any()).Return(nil)
	repo.EXPECT().MergeBranches(gomock.Any(), "master", "origin/master").Return(nil)

	report, err := f.sync.Update(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Stashed())
	assert.Equal(t, domain.StateDepsSynced, report.Outcomes()[0].State)
}

func TestSynchronizer_Update_MergeFailureIsolated(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl, "a", "b", "c")
		f.deps.delay = time.Second

		cleanRepo(ctrl, f, "a").EXPECT().MergeBranches(gomock.Any(), "master", "origin/master").Return(nil)
		cleanRepo(ctrl, f, "b").EXPECT().MergeBranches(gomock.Any(), "master", "origin/master").
			Return(errors.New("not possible to fast-forward"))
		cleanRepo(ctrl, f, "c").EXPECT().MergeBranches(gomock.Any(), "master", "origin/master").Return(nil)

		start := time.Now()
		report, err := f.sync.Update(context.Background())
		require.NoError(t, err)

		// Repositories are updated concurrently.
		assert.Equal(t, time.Second, time.Since(start))

		outcomes := report.Outcomes()
		require.Len(t, outcomes, 3)
		assert.Equal(t, domain.StateDepsSynced, outcomes[0].State)
		assert.Equal(t, domain.StateMergeFailed, outcomes[1].State)
		assert.ErrorIs(t, outcomes[1].Err, domain.ErrMergeConflict)
		assert.Equal(t, domain.StateDepsSynced, outcomes[2].State)

		assert.ElementsMatch(t, []string{"a", "c"}, f.deps.folders)
		assert.True(t, report.HasFailures())
	})
}

func TestSynchronizer_Update_SharesOneSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, "a", "b")
	cleanRepo(ctrl, f, "a").EXPECT().MergeBranches(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	cleanRepo(ctrl, f, "b").EXPECT().MergeBranches(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.sync.Update(context.Background())
	require.NoError(t, err)
	assert.Len(t, f.deps.sessions, 1)
}

func TestSynchronizer_Update_FailureStates(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(ctrl *gomock.Controller, f *fixture)
		state   domain.RepoState
		wantErr error
		cause   error
	}{
		{
			name: "open",
			setup: func(_ *gomock.Controller, f *fixture) {
				f.vcs.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, boom)
			},
			state:   domain.StateFailed,
			wantErr: domain.ErrRepoOpenFailed,
			cause:   boom,
		},
		{
			name: "status",
			setup: func(ctrl *gomock.Controller, f *fixture) {
				repo := mocks.NewMockRepository(ctrl)
				f.vcs.EXPECT().Open(gomock.Any(), gomock.Any()).Return(repo, nil)
				repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{}, boom)
			},
			state:   domain.StateFailed,
			wantErr: domain.ErrStatusFailed,
			cause:   boom,
		},
		{
			name: "stash",
			setup: func(ctrl *gomock.Controller, f *fixture) {
				repo := mocks.NewMockRepository(ctrl)
				f.vcs.EXPECT().Open(gomock.Any(), gomock.Any()).Return(repo, nil)
				repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{Modified: []string{"x"}}, nil)
				repo.EXPECT().StashSave(gomock.Any(), "wcwstash").Return(false, boom)
			},
			state:   domain.StateFailed,
			wantErr: domain.ErrStashFailed,
			cause:   boom,
		},
		{
			name: "fetch",
			setup: func(ctrl *gomock.Controller, f *fixture) {
				repo := mocks.NewMockRepository(ctrl)
				f.vcs.EXPECT().Open(gomock.Any(), gomock.Any()).Return(repo, nil)
				repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{}, nil)
				repo.EXPECT().FetchAll(gomock.Any()).Return(boom)
			},
			state:   domain.StateFailed,
			wantErr: domain.ErrFetchFailed,
			cause:   boom,
		},
		{
			name: "deps",
			setup: func(ctrl *gomock.Controller, f *fixture) {
				cleanRepo(ctrl, f, "a").EXPECT().MergeBranches(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.deps.fail = map[string]error{"a": domain.ErrManifestRead}
			},
			state:   domain.StateDepsSyncFailed,
			wantErr: domain.ErrDepsSyncFailed,
			cause:   domain.ErrManifestRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newFixture(t, ctrl, "a")
			tt.setup(ctrl, f)

			report, err := f.sync.Update(context.Background())
			require.NoError(t, err)

			outcome := report.Outcomes()[0]
			assert.Equal(t, tt.state, outcome.State)
			assert.ErrorIs(t, outcome.Err, tt.wantErr)
			assert.ErrorIs(t, outcome.Err, tt.cause)
			assert.True(t, report.HasFailures())
		})
	}
}

func TestSynchronizer_Update_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockWorkspaceStore(ctrl)
	st.EXPECT().List().Return(nil, domain.ErrStoreReadFailed)

	s := synchronizer.New(root, opts, st, nil, &fakeDeps{}, mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())

	_, err := s.Update(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestSynchronizer_Update_InstallsDependenciesAddedByMerge(t *testing.T) {
	// y depends on x; x's merge lands after y's and adds a dependency on n.
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	st, err := store.NewStore(filepath.Join(dir, domain.StoreFileName))
	require.NoError(t, err)
	for _, e := range entries("x", "y") {
		_, err := st.Add(e)
		require.NoError(t, err)
	}

	var (
		mu     sync.Mutex
		merged bool
	)

	vcs := mocks.NewMockVCSProvider(ctrl)
	for _, folder := range []string{"x", "y"} {
		repo := mocks.NewMockRepository(ctrl)
		vcs.EXPECT().Open(gomock.Any(), filepath.Join(dir, folder)).Return(repo, nil)
		repo.EXPECT().Status(gomock.Any()).Return(domain.RepoStatus{}, nil)
		repo.EXPECT().FetchAll(gomock.Any()).Return(nil)
		repo.EXPECT().MergeBranches(gomock.Any(), "master", "origin/master").DoAndReturn(
			func(context.Context, string, string) error {
				if folder == "x" {
					time.Sleep(50 * time.Millisecond)
					mu.Lock()
					merged = true
					mu.Unlock()
				}
				return nil
			})
	}
	vcs.EXPECT().Clone(gomock.Any(), gomock.Any(), filepath.Join(dir, "n")).Return(nil)

	component := func(folder string) domain.StagedComponent {
		return domain.StagedComponent{
			Folder: folder,
			Name:   folder,
			Origin: domain.GitOrigin{URL: "https://example.com/" + folder + ".git"},
		}
	}
	stager := mocks.NewMockPackageStager(ctrl)
	stager.EXPECT().Stage(gomock.Any(), "X").Return([]domain.StagedComponent{component("x")}, nil)
	stager.EXPECT().Stage(gomock.Any(), "N").Return([]domain.StagedComponent{component("n")}, nil)

	manifests := mocks.NewMockManifestReader(ctrl)
	manifests.EXPECT().Read(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, path string) (*domain.Manifest, error) {
			switch filepath.Base(path) {
			case "y":
				return &domain.Manifest{Dependencies: map[string]string{"X": "X"}}, nil
			case "x":
				mu.Lock()
				defer mu.Unlock()
				if merged {
					return &domain.Manifest{Dependencies: map[string]string{"N": "N"}}, nil
				}
			}
			return &domain.Manifest{}, nil
		}).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info("cloning n").Times(1)

	tracer := telemetry.NewNoOpTracer()
	inst := installer.New(dir, stager, st, vcs, mocks.NewMockFileSystem(ctrl), manifests, logger, tracer)
	s := synchronizer.New(dir, opts, st, vcs, inst, logger, tracer)

	report, err := s.Update(context.Background())
	require.NoError(t, err)

	for _, o := range report.Outcomes() {
		assert.Equal(t, domain.StateDepsSynced, o.State, o.Folder)
	}
	assert.False(t, report.HasFailures())
	assert.Equal(t, []string{"n"}, report.Install().Cloned())

	has, err := st.Has("n")
	require.NoError(t, err)
	assert.True(t, has)
}
