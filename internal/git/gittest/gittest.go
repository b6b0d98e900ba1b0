// Package gittest builds throwaway repositories for tests with go-git, so
// tests do not depend on a git executable being installed.
package gittest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type Repo struct {
	Dir  string
	Repo *gitlib.Repository

	t     testing.TB
	clock time.Time
}

// Init creates an empty, non-bare repository on branch main in a temporary
// directory.
func Init(t testing.TB) *Repo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gitlib.PlainInitWithOptions(dir, &gitlib.PlainInitOptions{
		InitOptions: gitlib.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	return &Repo{
		Dir:   dir,
		Repo:  repo,
		t:     t,
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WriteFile writes content to name, relative to the worktree root.
func (r *Repo) WriteFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("mkdir %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("write %s: %v", name, err)
	}
}

// Commit stages files (already written to the worktree) and commits them on
// the current branch.
func (r *Repo) Commit(msg string, files ...string) plumbing.Hash {
	r.t.Helper()
	wt, err := r.Repo.Worktree()
	if err != nil {
		r.t.Fatalf("worktree: %v", err)
	}
	for _, f := range files {
		if _, err := wt.Add(f); err != nil {
			r.t.Fatalf("add %s: %v", f, err)
		}
	}
	sig := r.nextSignature()
	hash, err := wt.Commit(msg, &gitlib.CommitOptions{Author: &sig, Committer: &sig})
	if err != nil {
		r.t.Fatalf("commit %q: %v", msg, err)
	}
	return hash
}

// CommitObject stores a commit on top of parent, reusing its tree, without
// touching HEAD or the worktree.
func (r *Repo) CommitObject(parent plumbing.Hash, msg string) plumbing.Hash {
	r.t.Helper()
	return r.storeCommit(msg, parent)
}

// MergeObject stores a merge commit of first and second, reusing the tree
// of first.
func (r *Repo) MergeObject(first, second plumbing.Hash, msg string) plumbing.Hash {
	r.t.Helper()
	return r.storeCommit(msg, first, second)
}

func (r *Repo) storeCommit(msg string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	base, err := r.Repo.CommitObject(parents[0])
	if err != nil {
		r.t.Fatalf("read commit %s: %v", parents[0], err)
	}
	sig := r.nextSignature()
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      msg,
		TreeHash:     base.TreeHash,
		ParentHashes: parents,
	}
	obj := r.Repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		r.t.Fatalf("encode commit: %v", err)
	}
	hash, err := r.Repo.Storer.SetEncodedObject(obj)
	if err != nil {
		r.t.Fatalf("store commit: %v", err)
	}
	return hash
}

func (r *Repo) SetRef(name plumbing.ReferenceName, hash plumbing.Hash) {
	r.t.Helper()
	if err := r.Repo.Storer.SetReference(plumbing.NewHashReference(name, hash)); err != nil {
		r.t.Fatalf("set %s: %v", name, err)
	}
}

// DropObject deletes the loose object for hash, the way history past a
// shallow boundary is missing from a shallow clone.
func (r *Repo) DropObject(hash plumbing.Hash) {
	r.t.Helper()
	hex := hash.String()
	path := filepath.Join(r.Dir, ".git", "objects", hex[:2], hex[2:])
	if err := os.Remove(path); err != nil {
		r.t.Fatalf("drop object %s: %v", hex, err)
	}
}

// Detach points HEAD directly at hash.
func (r *Repo) Detach(hash plumbing.Hash) {
	r.t.Helper()
	r.SetRef(plumbing.HEAD, hash)
}

// Track configures remote/branch as the upstream of branch and points the
// remote-tracking reference at hash.
func (r *Repo) Track(branch, remote string, hash plumbing.Hash) {
	r.t.Helper()
	if _, err := r.Repo.Remote(remote); errors.Is(err, gitlib.ErrRemoteNotFound) {
		_, err = r.Repo.CreateRemote(&config.RemoteConfig{
			Name: remote,
			URLs: []string{"https://example.invalid/" + remote + ".git"},
		})
		if err != nil {
			r.t.Fatalf("create remote %s: %v", remote, err)
		}
	}
	err := r.Repo.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		r.t.Fatalf("configure branch %s: %v", branch, err)
	}
	r.SetRef(plumbing.NewRemoteReferenceName(remote, branch), hash)
}

func (r *Repo) nextSignature() object.Signature {
	r.clock = r.clock.Add(time.Minute)
	return object.Signature{Name: "Test", Email: "test@example.com", When: r.clock}
}
