package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version returns the module version or "dev" when unset.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return "dev"
	}
	version := info.Main.Version
	if version == "" || version == "(devel)" {
		return "dev"
	}
	return version
}

// Revision returns the abbreviated VCS revision the binary was built from,
// with a "-dirty" suffix for modified trees, or "" when not recorded.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return ""
	}
	var rev string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	return formatRevision(rev, modified)
}

func formatRevision(rev string, modified bool) string {
	if rev == "" {
		return ""
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}

// VersionWithRevision returns the version and the revision if present.
func VersionWithRevision() string {
	version := Version()
	rev := Revision()
	if rev == "" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, rev)
}
