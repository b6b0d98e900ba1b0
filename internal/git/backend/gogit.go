package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

type goGit struct {
	*gitlib.Repository
	path string
}

// OpenNative discovers the repository enclosing repoPath using go-git.
func OpenNative(repoPath string) (Backend, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gitlib.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("open repository %s: %w", abs, ErrNotRepository)
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &goGit{Repository: repo, path: abs}, nil
}

func (g *goGit) RepoPath() string {
	if g == nil {
		return ""
	}
	return g.path
}

func (g *goGit) Head() (Head, error) {
	ref, err := g.Repository.Head()
	if err != nil {
		return Head{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	head := Head{Hash: ref.Hash().String()}
	if ref.Name().IsBranch() {
		head.Branch = ref.Name().Short()
	}
	return head, nil
}

func (g *goGit) Upstream(branch string) (string, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return "", fmt.Errorf("branch not specified")
	}
	cfg, err := g.Config()
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}
	name, err := upstreamRefName(cfg, branch)
	if err != nil {
		return "", err
	}
	ref, err := g.Reference(name, true)
	if err != nil {
		return "", fmt.Errorf("resolve upstream %s: %w", name, err)
	}
	return ref.Hash().String(), nil
}

// upstreamRefName maps branch.<name>.remote/merge to the local reference
// holding the upstream tip, the way git does for @{upstream}.
func upstreamRefName(cfg *config.Config, branch string) (plumbing.ReferenceName, error) {
	bc, ok := cfg.Branches[branch]
	if !ok || bc == nil || bc.Merge == "" || bc.Remote == "" {
		return "", ErrNoUpstream
	}
	if bc.Remote == "." {
		return bc.Merge, nil
	}
	if rc, ok := cfg.Remotes[bc.Remote]; ok && rc != nil {
		for _, spec := range rc.Fetch {
			if spec.Match(bc.Merge) {
				return spec.Dst(bc.Merge), nil
			}
		}
	}
	return plumbing.NewRemoteReferenceName(bc.Remote, bc.Merge.Short()), nil
}

func (g *goGit) AheadBehind(localHash, upstreamHash string) (uint, uint, error) {
	if !plumbing.IsHash(localHash) || !plumbing.IsHash(upstreamHash) {
		return 0, 0, fmt.Errorf("invalid commit ids %q, %q", localHash, upstreamHash)
	}
	return countAheadBehind(g.Repository, plumbing.NewHash(localHash), plumbing.NewHash(upstreamHash))
}

func (g *goGit) Status() ([]StatusEntry, error) {
	wt, err := g.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	wt.Excludes = append(wt.Excludes, g.excludePatterns()...)
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}
	entries := make([]StatusEntry, 0, len(status))
	for path, st := range status {
		if st == nil {
			continue
		}
		if st.Staging == gitlib.Unmodified && st.Worktree == gitlib.Unmodified {
			continue
		}
		entries = append(entries, StatusEntry{
			Path:     path,
			Staging:  byte(st.Staging),
			Worktree: byte(st.Worktree),
		})
	}
	slices.SortFunc(entries, func(a, b StatusEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries, nil
}

// excludePatterns returns the ignore rules that live outside the worktree:
// the system excludes file, then core.excludesFile from the repository or
// global config, falling back to $XDG_CONFIG_HOME/git/ignore. Unreadable
// sources are skipped.
func (g *goGit) excludePatterns() []gitignore.Pattern {
	rootFS := osfs.New("/")
	var patterns []gitignore.Pattern
	if ps, err := gitignore.LoadSystemPatterns(rootFS); err == nil {
		patterns = append(patterns, ps...)
	}
	if cfg, err := g.Config(); err == nil && cfg.Raw != nil {
		if file := cfg.Raw.Section("core").Options.Get("excludesfile"); file != "" {
			return append(patterns, readExcludesFile(file)...)
		}
	}
	if ps, err := gitignore.LoadGlobalPatterns(rootFS); err == nil && len(ps) > 0 {
		return append(patterns, ps...)
	}
	return append(patterns, readExcludesFile(defaultExcludesFile())...)
}

func defaultExcludesFile() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

func readExcludesFile(name string) []gitignore.Pattern {
	if rest, ok := strings.CutPrefix(name, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		name = filepath.Join(home, rest)
	}
	if name == "" {
		return nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil
	}
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}
