package git

import (
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/thiagokokada/powerprompt/internal/git/backend"
)

// Resolve summarizes the repository enclosing path. ok is false when there
// is no repository or its state cannot be fully resolved; failures are
// logged at debug level and never returned.
func Resolve(path string) (State, bool) {
	b, err := openBackend(path)
	if err != nil {
		slog.Debug("no repository", slog.String("path", path), slog.Any("error", err))
		return State{}, false
	}
	return resolve(b)
}

func resolve(b backend.Backend) (State, bool) {
	repoPath := slog.String("repo", b.RepoPath())

	head, err := b.Head()
	if err != nil {
		slog.Debug("resolve HEAD", repoPath, slog.Any("error", err))
		return State{}, false
	}
	commit := strings.ToLower(strings.TrimSpace(head.Hash))
	if !plumbing.IsHash(commit) {
		slog.Debug("malformed HEAD commit", repoPath, slog.String("hash", head.Hash))
		return State{}, false
	}

	state := State{Commit: commit}
	if !head.Detached() {
		state.Branch = &Branch{
			Name:     head.Branch,
			Tracking: tracking(b, head.Branch, commit),
		}
	}

	entries, err := b.Status()
	if err != nil {
		slog.Debug("worktree status", repoPath, slog.Any("error", err))
		return State{}, false
	}
	// Staged, unstaged and conflicted entries all count once.
	state.Changes = uint(len(entries))

	slog.Debug("resolved repository state",
		repoPath,
		slog.String("commit", state.Commit),
		slog.String("identity", state.Identity()),
		slog.Uint64("changes", uint64(state.Changes)),
	)
	return state, true
}

// tracking narrows to NoUpstream on any failure instead of discarding the
// whole state.
func tracking(b backend.Backend, branch, commit string) Tracking {
	upstream, err := b.Upstream(branch)
	if err != nil {
		slog.Debug("resolve upstream", slog.String("branch", branch), slog.Any("error", err))
		return NoUpstream()
	}
	ahead, behind, err := b.AheadBehind(commit, upstream)
	if err != nil {
		slog.Debug("ahead/behind",
			slog.String("branch", branch),
			slog.String("upstream", upstream),
			slog.Any("error", err),
		)
		return NoUpstream()
	}
	return Divergence(ahead, behind)
}
