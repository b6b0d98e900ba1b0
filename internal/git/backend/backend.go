package backend

import "errors"

var (
	// ErrNoUpstream reports a branch without a configured (or resolvable)
	// upstream reference.
	ErrNoUpstream = errors.New("no upstream configured")
	// ErrNotRepository reports a path with no enclosing repository.
	ErrNotRepository = errors.New("not a git repository")
)

// Backend abstracts access to repository data.
//
// The default implementation uses go-git, but the interface allows the git
// executable to be used instead (see OpenCLI) without changing callers.
type Backend interface {
	RepoPath() string

	Head() (Head, error)
	Upstream(branch string) (hash string, err error)
	AheadBehind(localHash, upstreamHash string) (ahead, behind uint, err error)
	Status() ([]StatusEntry, error)
}
