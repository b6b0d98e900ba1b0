package backend

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// errNoMatch is returned by lookup when git exits 1 without diagnostics,
// which is how "rev-parse -q --verify" and "symbolic-ref -q" report a
// missing ref.
var errNoMatch = errors.New("no match")

type gitCLI struct {
	root string
}

// OpenCLI discovers the repository enclosing repoPath by asking the git
// executable for its top level.
func OpenCLI(repoPath string) (Backend, error) {
	if err := ensureMinGitVersion(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	out, err := (&gitCLI{root: abs}).git("rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w: %v", abs, ErrNotRepository, err)
	}
	root := strings.TrimSpace(out)
	if root == "" {
		// Inside a .git directory or a bare repository: no worktree to report on.
		return nil, fmt.Errorf("open repository %s: %w: no worktree", abs, ErrNotRepository)
	}
	return &gitCLI{root: filepath.Clean(root)}, nil
}

func (g *gitCLI) RepoPath() string {
	if g == nil {
		return ""
	}
	return g.root
}

// git runs a git subcommand in the worktree root; any non-zero exit is an
// error.
func (g *gitCLI) git(args ...string) (string, error) {
	return g.run(false, args)
}

// lookup is git for quiet ref queries: a silent exit 1 becomes errNoMatch.
func (g *gitCLI) lookup(args ...string) (string, error) {
	return g.run(true, args)
}

func (g *gitCLI) run(quiet bool, args []string) (string, error) {
	if g == nil || g.root == "" {
		return "", fmt.Errorf("repository root not set")
	}
	cmd := exec.Command("git", append([]string{"-C", g.root}, args...)...)
	// Status must not take index.lock while another git command runs.
	cmd.Env = append(cmd.Environ(), "GIT_OPTIONAL_LOCKS=0")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	var exitErr *exec.ExitError
	if quiet && errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && stderr.Len() == 0 {
		return "", errNoMatch
	}
	name := "git"
	if len(args) > 0 {
		name += " " + args[0]
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return "", fmt.Errorf("%s: %w: %s", name, err, msg)
	}
	return "", fmt.Errorf("%s: %w", name, err)
}
