package ports

// RepoInspector queries repository information
type RepoInspector interface {
	// RemoteURL returns the origin remote URL, or "" when unavailable
	RemoteURL() string
}

// BranchCreator creates branches inside a working tree
type BranchCreator interface {
	// CreateBranch creates and checks out branch inside dir
	CreateBranch(dir, branch string) error
}

// GitRepository is the composite interface
type GitRepository interface {
	BranchCreator
	RepoInspector
}
