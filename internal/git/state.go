package git

// State is the resolved summary of the repository enclosing a path.
type State struct {
	Commit  string // full 40-hex commit id HEAD resolves to
	Branch  *Branch
	Changes uint // status entries, untracked included
}

// Branch is present only when HEAD is a named branch.
type Branch struct {
	Name     string
	Tracking Tracking
}

type TrackingKind uint8

const (
	TrackingNoUpstream TrackingKind = iota
	TrackingDivergence
)

// Tracking tells "no upstream configured" apart from "in sync", which is
// Divergence(0, 0).
type Tracking struct {
	Kind   TrackingKind
	Ahead  uint
	Behind uint
}

func NoUpstream() Tracking {
	return Tracking{Kind: TrackingNoUpstream}
}

func Divergence(ahead, behind uint) Tracking {
	return Tracking{Kind: TrackingDivergence, Ahead: ahead, Behind: behind}
}

func (t Tracking) InSync() bool {
	return t.Kind == TrackingDivergence && t.Ahead == 0 && t.Behind == 0
}

// ShortCommit returns the abbreviated commit id shown for a detached HEAD.
func (s State) ShortCommit() string {
	if len(s.Commit) < 7 {
		return s.Commit
	}
	return s.Commit[:7]
}

func (s State) Dirty() bool {
	return s.Changes > 0
}
