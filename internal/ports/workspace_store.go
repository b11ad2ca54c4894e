package ports

import "trr/internal/domain"

// WorkspaceStore persists workspace records. A record is the sole
// source of truth for whether a workspace exists: the filesystem copy
// and the record are created and destroyed together by the services
// layer.
type WorkspaceStore interface {
	// Allocate generates a fresh unique, time-sortable identifier
	Allocate() (string, error)

	// Put serializes the record under a path derived solely from id,
	// creating any missing parent directories
	Put(id string, workspace domain.Workspace) error

	// ListAll enumerates every stored record sorted by branch ascending.
	// Unreadable entries are skipped with a warning rather than aborting
	// the enumeration.
	ListAll() ([]domain.Workspace, error)

	// Remove deletes the record's backing file. Removing a nonexistent
	// id is not an error.
	Remove(id string) error
}
