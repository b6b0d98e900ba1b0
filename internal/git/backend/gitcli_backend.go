package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (g *gitCLI) Head() (Head, error) {
	out, err := g.lookup("rev-parse", "-q", "--verify", "HEAD^{commit}")
	if errors.Is(err, errNoMatch) {
		return Head{}, fmt.Errorf("resolve HEAD: no commits yet")
	}
	if err != nil {
		return Head{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	head := Head{Hash: strings.TrimSpace(out)}
	ref, err := g.lookup("symbolic-ref", "-q", "--short", "HEAD")
	switch {
	case errors.Is(err, errNoMatch):
		// detached
	case err != nil:
		return Head{}, fmt.Errorf("resolve HEAD: %w", err)
	default:
		head.Branch = strings.TrimSpace(ref)
	}
	return head, nil
}

// Upstream asks for-each-ref for the configured upstream of branch, which
// applies the remote's fetch refspecs, then resolves that ref.
func (g *gitCLI) Upstream(branch string) (string, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return "", fmt.Errorf("branch not specified")
	}
	out, err := g.git("for-each-ref", "--format=%(upstream)", "refs/heads/"+branch)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "", ErrNoUpstream
	}
	hash, err := g.lookup("rev-parse", "-q", "--verify", name+"^{commit}")
	if errors.Is(err, errNoMatch) {
		return "", fmt.Errorf("resolve upstream %s: reference not found", name)
	}
	if err != nil {
		return "", fmt.Errorf("resolve upstream %s: %w", name, err)
	}
	return strings.TrimSpace(hash), nil
}

func (g *gitCLI) AheadBehind(localHash, upstreamHash string) (uint, uint, error) {
	out, err := g.git("rev-list", "--left-right", "--count", localHash+"..."+upstreamHash)
	if err != nil {
		return 0, 0, err
	}
	return parseLeftRightCount(out)
}

func parseLeftRightCount(out string) (uint, uint, error) {
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	ahead, err := strconv.ParseUint(parts[0], 10, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("parse ahead count: %w", err)
	}
	behind, err := strconv.ParseUint(parts[1], 10, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("parse behind count: %w", err)
	}
	return uint(ahead), uint(behind), nil
}

func (g *gitCLI) Status() ([]StatusEntry, error) {
	out, err := g.git("status", "--porcelain=v2", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	entries, err := parseStatusPorcelainV2(strings.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("parse git status: %w", err)
	}
	return entries, nil
}

// parseStatusPorcelainV2 returns one entry per changed or untracked path.
// Ignored paths and header lines are skipped.
func parseStatusPorcelainV2(r io.Reader) ([]StatusEntry, error) {
	var entries []StatusEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 {
			continue
		}
		switch line[0] {
		case '1', '2', 'u':
			if len(line) < 4 {
				continue
			}
			entries = append(entries, StatusEntry{
				Path:     porcelainPath(line),
				Staging:  porcelainCode(line[2]),
				Worktree: porcelainCode(line[3]),
			})
		case '?':
			entries = append(entries, StatusEntry{
				Path:     line[2:],
				Staging:  StatusUntracked,
				Worktree: StatusUntracked,
			})
		default:
			// '#' headers, '!' ignored
		}
	}
	return entries, scanner.Err()
}

func porcelainCode(c byte) byte {
	if c == '.' {
		return StatusUnmodified
	}
	return c
}

// porcelainPath extracts the path from an ordinary ('1': 8 fields before
// the path), renamed ('2': 9 fields, then "path<TAB>orig") or unmerged ('u':
// 10 fields) entry.
func porcelainPath(line string) string {
	fields := 8
	switch line[0] {
	case '2':
		fields = 9
	case 'u':
		fields = 10
	}
	parts := strings.SplitN(line, " ", fields+1)
	if len(parts) <= fields {
		return ""
	}
	path, _, _ := strings.Cut(parts[fields], "\t")
	return path
}
