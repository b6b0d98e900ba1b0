package git

import (
	"errors"

	gitbackend "github.com/thiagokokada/powerprompt/internal/git/backend"
)

type fakeBackend struct {
	repoPath string

	headFunc        func() (gitbackend.Head, error)
	upstreamFunc    func(branch string) (string, error)
	aheadBehindFunc func(local, upstream string) (uint, uint, error)
	statusFunc      func() ([]gitbackend.StatusEntry, error)

	lastUpstreamBranch string
	lastAheadBehind    [2]string
}

func (f *fakeBackend) RepoPath() string { return f.repoPath }

func (f *fakeBackend) Head() (gitbackend.Head, error) {
	if f.headFunc != nil {
		return f.headFunc()
	}
	return gitbackend.Head{}, errors.New("unexpected Head call")
}

func (f *fakeBackend) Upstream(branch string) (string, error) {
	f.lastUpstreamBranch = branch
	if f.upstreamFunc != nil {
		return f.upstreamFunc(branch)
	}
	return "", errors.New("unexpected Upstream call")
}

func (f *fakeBackend) AheadBehind(local, upstream string) (uint, uint, error) {
	f.lastAheadBehind = [2]string{local, upstream}
	if f.aheadBehindFunc != nil {
		return f.aheadBehindFunc(local, upstream)
	}
	return 0, 0, errors.New("unexpected AheadBehind call")
}

func (f *fakeBackend) Status() ([]gitbackend.StatusEntry, error) {
	if f.statusFunc != nil {
		return f.statusFunc()
	}
	return nil, errors.New("unexpected Status call")
}
