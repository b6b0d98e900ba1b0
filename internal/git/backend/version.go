package backend

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Minimum git supported by the CLI backend: "status --porcelain=v2" must be
// available.
var minGitVersion = gitVersion{major: 2, minor: 11, patch: 0}

type gitVersion struct {
	major int
	minor int
	patch int
}

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) less(other gitVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

// parseGitVersionOutput accepts "git version 2.44.0",
// "git version 2.39.3 (Apple Git-146)" and "git version 2.39.3.windows.1".
func parseGitVersionOutput(out string) (gitVersion, bool) {
	s := strings.TrimSpace(out)
	s = strings.TrimSpace(strings.TrimPrefix(s, "git version"))
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return gitVersion{}, false
	}
	s = s[start:]
	if end := strings.IndexFunc(s, func(r rune) bool { return r != '.' && !unicode.IsDigit(r) }); end >= 0 {
		s = s[:end]
	}
	parts := strings.Split(strings.Trim(s, "."), ".")
	if len(parts) < 2 {
		return gitVersion{}, false
	}
	var nums [3]int
	for i := 0; i < len(parts) && i < len(nums); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			if i < 2 {
				return gitVersion{}, false
			}
			break
		}
		nums[i] = n
	}
	return gitVersion{major: nums[0], minor: nums[1], patch: nums[2]}, true
}

func validateGitVersionOutput(out string) error {
	got, ok := parseGitVersionOutput(out)
	if !ok {
		return fmt.Errorf("unable to parse git version output: %q", strings.TrimSpace(out))
	}
	if got.less(minGitVersion) {
		return fmt.Errorf("git %s is too old; powerprompt requires git >= %s", got, minGitVersion)
	}
	return nil
}

var (
	minGitVersionOnce sync.Once
	minGitVersionErr  error
)

func ensureMinGitVersion() error {
	minGitVersionOnce.Do(func() {
		out, err := exec.Command("git", "--version").CombinedOutput()
		if err != nil {
			if msg := strings.TrimSpace(string(out)); msg != "" {
				minGitVersionErr = fmt.Errorf("git --version: %v: %s", err, msg)
				return
			}
			minGitVersionErr = fmt.Errorf("git --version: %w", err)
			return
		}
		minGitVersionErr = validateGitVersionOutput(string(out))
	})
	return minGitVersionErr
}
