package domain

// OriginKind discriminates the two ways a staged component can be installed.
type OriginKind string

const (
	// OriginGit installs the component as a git checkout.
	OriginGit OriginKind = "git"
	// OriginStatic installs the component by copying the staged files.
	OriginStatic OriginKind = "static"
)

// Origin is where a staged component comes from.
// It is implemented only by GitOrigin and StaticOrigin.
type Origin interface {
	Kind() OriginKind
	String() string
	sealed()
}

// GitOrigin is a component backed by a git repository.
type GitOrigin struct {
	URL string
}

// Kind returns OriginGit.
func (GitOrigin) Kind() OriginKind { return OriginGit }

func (o GitOrigin) String() string { return o.URL }

func (GitOrigin) sealed() {}

// Repo returns the persisted repository descriptor for the origin.
func (o GitOrigin) Repo() Repo {
	return Repo{Type: string(OriginGit), URL: o.URL}
}

// StaticOrigin is a component without a usable repository, installed by copy.
type StaticOrigin struct {
	SourcePath string
}

// Kind returns OriginStatic.
func (StaticOrigin) Kind() OriginKind { return OriginStatic }

func (o StaticOrigin) String() string { return o.SourcePath }

func (StaticOrigin) sealed() {}

// StagedComponent is one node of a staged dependency graph.
type StagedComponent struct {
	// Folder is the directory name the component occupies in the workspace.
	Folder string
	// Name is the package name declared by the component manifest.
	Name string
	// Origin is either a GitOrigin or a StaticOrigin, never nil.
	Origin Origin
}
