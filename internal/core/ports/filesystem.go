package ports

// FileSystem is the workspace file system used for static installs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// IsCheckout reports whether dir exists and carries VCS metadata.
	IsCheckout(dir string) (bool, error)

	// CopyTree copies src recursively into dst, overwriting existing files.
	CopyTree(src, dst string) error
}
