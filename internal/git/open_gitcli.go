//go:build gitcli

package git

import "github.com/thiagokokada/powerprompt/internal/git/backend"

func openBackend(path string) (backend.Backend, error) {
	return backend.OpenCLI(path)
}
