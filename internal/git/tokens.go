package git

import (
	"fmt"
	"strings"
)

const (
	GlyphInSync     = "≣"
	GlyphNoUpstream = "≢"
	glyphAhead      = "↑"
	glyphBehind     = "↓"
	glyphChanges    = "±"
)

// Tokens returns the display tokens of s in order: identity, tracking
// (branches only) and change count (only when dirty).
func (s State) Tokens() []string {
	tokens := []string{s.Identity()}
	if s.Branch != nil {
		tokens = append(tokens, s.Branch.Tracking.Token())
	}
	if s.Dirty() {
		tokens = append(tokens, fmt.Sprintf("%s%d", glyphChanges, s.Changes))
	}
	return tokens
}

// Identity is the branch name, or the short commit id when detached.
func (s State) Identity() string {
	if s.Branch != nil {
		return s.Branch.Name
	}
	return s.ShortCommit()
}

func (t Tracking) Token() string {
	if t.Kind == TrackingNoUpstream {
		return GlyphNoUpstream
	}
	if t.InSync() {
		return GlyphInSync
	}
	parts := make([]string, 0, 2)
	if t.Ahead > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", t.Ahead, glyphAhead))
	}
	if t.Behind > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", t.Behind, glyphBehind))
	}
	return strings.Join(parts, " ")
}
