package domain

import (
	"strings"
	"time"
)

// Workspace represents one branch-scoped repository copy (domain entity).
// ID is the record's storage key and is not part of the serialized
// payload; it is recovered from the file name on load.
type Workspace struct {
	ID        string    `json:"-"`
	Branch    string    `json:"branch"`
	CreatedAt time.Time `json:"created_at"`
	Directory string    `json:"directory,omitempty"`
}

// DirectoryName derives the on-disk folder name for a branch.
// The mapping is pure and deterministic so it can be recomputed from a
// record at any time. It is many-to-one: distinct branches may collide,
// and the pre-existing-directory check at creation rejects the second.
func DirectoryName(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}
