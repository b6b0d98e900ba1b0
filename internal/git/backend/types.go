package backend

// Head describes what HEAD points at.
type Head struct {
	Hash   string
	Branch string // short name; empty when HEAD is detached
}

// Detached reports whether HEAD points directly at a commit.
func (h Head) Detached() bool {
	return h.Branch == ""
}

// Status codes follow the XY letters of git status.
const (
	StatusUnmodified byte = ' '
	StatusUntracked  byte = '?'
	StatusModified   byte = 'M'
	StatusAdded      byte = 'A'
	StatusDeleted    byte = 'D'
	StatusRenamed    byte = 'R'
	StatusCopied     byte = 'C'
	StatusUnmerged   byte = 'U'
)

type StatusEntry struct {
	Path     string
	Staging  byte
	Worktree byte
}
