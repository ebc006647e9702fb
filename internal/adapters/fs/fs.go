// Package fs provides the workspace file system adapter used for static installs.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

var _ ports.FileSystem = (*FileSystem)(nil)

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// IsCheckout reports whether dir is an existing directory holding VCS metadata.
func (f *FileSystem) IsCheckout(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "stat failed"), "path", dir)
	}
	if !info.IsDir() {
		return false, nil
	}

	meta := filepath.Join(dir, domain.VCSMetadataDirName)
	if _, err := os.Stat(meta); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "stat failed"), "path", meta)
	}
	return true, nil
}

// CopyTree copies src into dst, creating directories as needed and
// overwriting files that already exist. VCS metadata is never copied.
func (f *FileSystem) CopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return copyError(err, path, dst)
		}

		if d.IsDir() && d.Name() == domain.VCSMetadataDirName {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return copyError(err, path, dst)
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			err = os.MkdirAll(target, domain.DirPerm)
		case d.Type()&iofs.ModeSymlink != 0:
			err = copySymlink(path, target)
		case d.Type().IsRegular():
			err = copyFile(path, target)
		default:
			return nil
		}
		if err != nil {
			return copyError(err, path, target)
		}
		return nil
	})
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // src comes from a staging area
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // dst is inside the workspace
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return os.Symlink(link, dst)
}

func copyError(err error, src, dst string) error {
	wrapped := zerr.With(zerr.Wrap(err, "copy failed"), "source", src)
	return zerr.With(wrapped, "destination", dst)
}
