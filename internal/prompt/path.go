package prompt

import (
	"path/filepath"
	"strings"
)

// FormatPath shortens cwd for display: a home directory prefix becomes "~",
// separators become "/" and one trailing separator is dropped unless the
// path is a root. An empty home disables the substitution.
func FormatPath(cwd, home string) string {
	path := filepath.ToSlash(cwd)
	if home != "" {
		home = strings.TrimSuffix(filepath.ToSlash(home), "/")
		if home != "" {
			if path == home {
				path = "~"
			} else if rest, ok := strings.CutPrefix(path, home+"/"); ok {
				path = "~/" + rest
			}
		}
	}
	if isRoot(path) {
		return path
	}
	return strings.TrimSuffix(path, "/")
}

// isRoot reports "/" and volume roots such as "C:/" or "//host/share/".
func isRoot(path string) bool {
	vol := filepath.ToSlash(filepath.VolumeName(filepath.FromSlash(path)))
	return path == vol+"/" || path == "/"
}
