package domain

// Repo is the persisted repository descriptor of a workspace entry.
type Repo struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// WorkspaceEntry records a folder installed from a repository.
// Folder is the primary key of the workspace store.
type WorkspaceEntry struct {
	Folder string `json:"folder"`
	Repo   Repo   `json:"repo"`
}

// AddResult reports the outcome of adding an entry to the workspace store.
type AddResult int

const (
	// AddCreated means the entry was inserted.
	AddCreated AddResult = iota + 1
	// AddAlreadyExists means the folder is already tracked; nothing was written.
	AddAlreadyExists
)

func (r AddResult) String() string {
	switch r {
	case AddCreated:
		return "created"
	case AddAlreadyExists:
		return "already exists"
	default:
		return "unknown"
	}
}
