package storage

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"trr/internal/domain"
	"trr/internal/logging"
	"trr/internal/ports"
)

// recordsDirName is the fixed sub-location for workspace records under
// the sync root
const recordsDirName = ".trr-sys"

// FileStore implements ports.WorkspaceStore with one JSON file per
// record under <syncRoot>/.trr-sys/<id>.json. Legacy records are plain
// text files containing only a branch name.
type FileStore struct {
	syncRoot string
}

// Compile-time interface verification
var _ ports.WorkspaceStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at syncRoot
func NewFileStore(syncRoot string) *FileStore {
	return &FileStore{syncRoot: syncRoot}
}

// recordsDir returns the directory holding record files
func (s *FileStore) recordsDir() string {
	return filepath.Join(s.syncRoot, recordsDirName)
}

// recordPath derives a record's file path solely from its id
func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.recordsDir(), id+".json")
}

// Allocate generates a fresh ULID: time-ordered, 128-bit, unique
func (s *FileStore) Allocate() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", fmt.Errorf("failed to allocate workspace id: %w", err)
	}
	return id.String(), nil
}

// Put writes the record under a path derived from id, creating the
// records directory if missing
func (s *FileStore) Put(id string, workspace domain.Workspace) error {
	if err := os.MkdirAll(s.recordsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create records directory: %w", err)
	}

	data, err := json.MarshalIndent(workspace, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize workspace record: %w", err)
	}

	if err := os.WriteFile(s.recordPath(id), data, 0644); err != nil {
		return fmt.Errorf("failed to write workspace record: %w", err)
	}

	logging.Logger.Debug("Workspace record written", "id", id, "branch", workspace.Branch)
	return nil
}

// ListAll enumerates every stored record, sorted by branch ascending.
// Unreadable entries are skipped with a warning; a corrupt record must
// not abort the whole listing.
func (s *FileStore) ListAll() ([]domain.Workspace, error) {
	entries, err := os.ReadDir(s.recordsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Workspace{}, nil
		}
		return nil, fmt.Errorf("failed to read records directory: %w", err)
	}

	workspaces := make([]domain.Workspace, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(s.recordsDir(), entry.Name())
		workspace, err := readRecord(path)
		if err != nil {
			logging.Logger.Warn("Skipping unreadable workspace record", "path", path, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable record %s: %v\n", entry.Name(), err)
			continue
		}

		workspace.ID = strings.TrimSuffix(entry.Name(), ".json")
		workspaces = append(workspaces, workspace)
	}

	sort.Slice(workspaces, func(i, j int) bool {
		return workspaces[i].Branch < workspaces[j].Branch
	})

	return workspaces, nil
}

// Remove deletes the record's backing file. Legacy records are stored
// without the .json suffix, so both candidate paths are tried. Removing
// a nonexistent id is not an error.
func (s *FileStore) Remove(id string) error {
	err := os.Remove(s.recordPath(id))
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove workspace record: %w", err)
	}

	err = os.Remove(filepath.Join(s.recordsDir(), id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove workspace record: %w", err)
	}
	return nil
}

// readRecord parses a record file. The parse path is a tagged
// two-variant one: structured JSON first, then the legacy format where
// the entire file content is a bare branch name. Legacy records get
// their directory derived from the branch and a freshly assigned
// creation time (best-effort reconstruction, not historically
// accurate).
func readRecord(path string) (domain.Workspace, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Workspace{}, err
	}

	var workspace domain.Workspace
	if err := json.Unmarshal(content, &workspace); err == nil && workspace.Branch != "" {
		if workspace.Directory == "" {
			workspace.Directory = domain.DirectoryName(workspace.Branch)
		}
		return workspace, nil
	}

	branch := strings.TrimSpace(string(content))
	return domain.Workspace{
		Branch:    branch,
		CreatedAt: time.Now().UTC(),
		Directory: domain.DirectoryName(branch),
	}, nil
}
