// Package store implements the workspace index as an append-only JSON-lines file.
//
// Each line is either a record {"folder","repo","_id"} or a deletion marker
// {"$$deleted":true,"_id"}. Later lines win. The file is compacted when opened.
package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
)

type record struct {
	Folder  string       `json:"folder,omitempty"`
	Repo    *domain.Repo `json:"repo,omitempty"`
	ID      string       `json:"_id"`
	Deleted bool         `json:"$$deleted,omitempty"`
}

// Store implements ports.WorkspaceStore.
type Store struct {
	path    string
	mu      sync.RWMutex
	entries map[string]domain.WorkspaceEntry
}

var _ ports.WorkspaceStore = (*Store)(nil)

// NewStore opens the store at path, creating it on first write.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make(map[string]domain.WorkspaceEntry),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// RecordID returns the stable record id of a folder.
func RecordID(folder string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(folder))
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(domain.Categorize(domain.ErrStoreReadFailed, err), "path", s.path)
	}

	byID := make(map[string]domain.WorkspaceEntry)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			// A torn final line is what an interrupted append leaves behind.
			if line == lineCount(data) && !bytes.HasSuffix(data, []byte("\n")) {
				break
			}
			return zerr.With(zerr.With(domain.Categorize(domain.ErrStoreCorrupt, err), "path", s.path), "line", line)
		}

		switch {
		case rec.Deleted:
			delete(byID, rec.ID)
		case rec.Folder == "":
			return zerr.With(zerr.With(domain.Categorize(domain.ErrStoreCorrupt, domain.ErrInvalidEntry), "path", s.path), "line", line)
		default:
			entry := domain.WorkspaceEntry{Folder: rec.Folder}
			if rec.Repo != nil {
				entry.Repo = *rec.Repo
			}
			if rec.ID == "" {
				rec.ID = RecordID(rec.Folder)
			}
			byID[rec.ID] = entry
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreReadFailed, err), "path", s.path)
	}

	for _, entry := range byID {
		s.entries[entry.Folder] = entry
	}

	return s.compact()
}

func lineCount(data []byte) int {
	return bytes.Count(data, []byte("\n")) + 1
}

// compact rewrites the file with one line per live entry. Callers hold s.mu.
func (s *Store) compact() error {
	var buf bytes.Buffer
	for _, folder := range s.sortedFolders() {
		line, err := encode(recordFor(s.entries[folder]))
		if err != nil {
			return err
		}
		buf.Write(line)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}

	return nil
}

// appendRecord persists rec at the end of the file. Callers hold s.mu.
func (s *Store) appendRecord(rec record) error {
	line, err := encode(rec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(domain.Categorize(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	return nil
}

func encode(rec record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, domain.Categorize(domain.ErrStoreWriteFailed, err)
	}
	return append(data, '\n'), nil
}

func recordFor(entry domain.WorkspaceEntry) record {
	repo := entry.Repo
	return record{Folder: entry.Folder, Repo: &repo, ID: RecordID(entry.Folder)}
}

func (s *Store) sortedFolders() []string {
	folders := make([]string, 0, len(s.entries))
	for folder := range s.entries {
		folders = append(folders, folder)
	}
	slices.Sort(folders)
	return folders
}

// Add inserts entry unless its folder is already tracked.
// The check, the file append and the in-memory insert share one lock.
func (s *Store) Add(entry domain.WorkspaceEntry) (domain.AddResult, error) {
	if strings.TrimSpace(entry.Folder) == "" {
		return 0, domain.Categorize(domain.ErrInvalidEntry, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.Folder]; ok {
		return domain.AddAlreadyExists, nil
	}

	if err := s.appendRecord(recordFor(entry)); err != nil {
		return 0, zerr.With(err, "folder", entry.Folder)
	}
	s.entries[entry.Folder] = entry

	return domain.AddCreated, nil
}

// Has reports whether folder is tracked.
func (s *Store) Has(folder string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[folder]
	return ok, nil
}

// List returns every tracked entry ordered by folder.
func (s *Store) List() ([]domain.WorkspaceEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WorkspaceEntry, 0, len(s.entries))
	for _, folder := range s.sortedFolders() {
		out = append(out, s.entries[folder])
	}
	return out, nil
}

// Remove drops the entry for folder. Removing an untracked folder is a no-op.
func (s *Store) Remove(folder string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[folder]; !ok {
		return nil
	}

	if err := s.appendRecord(record{ID: RecordID(folder), Deleted: true}); err != nil {
		return zerr.With(err, "folder", folder)
	}
	delete(s.entries, folder)

	return nil
}
