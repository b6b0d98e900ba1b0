package backend

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type side uint8

const (
	sideLocal side = 1 << iota
	sideUpstream

	sideBoth = sideLocal | sideUpstream
)

// countAheadBehind paints commits reachable from local and upstream,
// walking newest-first by committer time, and stops once every queued
// commit is reachable from both tips. The commits painted by a single side
// are the ahead and behind sets.
func countAheadBehind(repo *gitlib.Repository, local, upstream plumbing.Hash) (uint, uint, error) {
	if local == upstream {
		return 0, 0, nil
	}
	w := &aheadBehindWalk{
		repo:   repo,
		marks:  map[plumbing.Hash]side{},
		queued: map[plumbing.Hash]struct{}{},
		heap:   binaryheap.NewWith(newerCommitFirst),
	}
	if err := w.paint(local, sideLocal); err != nil {
		return 0, 0, err
	}
	if err := w.paint(upstream, sideUpstream); err != nil {
		return 0, 0, err
	}
	for w.interesting() {
		v, ok := w.heap.Pop()
		if !ok {
			break
		}
		commit := v.(*object.Commit)
		delete(w.queued, commit.Hash)
		mark := w.marks[commit.Hash]
		for _, parent := range commit.ParentHashes {
			err := w.paint(parent, mark)
			if errors.Is(err, plumbing.ErrObjectNotFound) {
				// Shallow boundary: history stops here, as it does for git rev-list.
				continue
			}
			if err != nil {
				return 0, 0, err
			}
		}
	}
	var ahead, behind uint
	for _, mark := range w.marks {
		switch mark {
		case sideLocal:
			ahead++
		case sideUpstream:
			behind++
		}
	}
	return ahead, behind, nil
}

type aheadBehindWalk struct {
	repo   *gitlib.Repository
	marks  map[plumbing.Hash]side
	queued map[plumbing.Hash]struct{}
	heap   *binaryheap.Heap
}

// paint adds mark to hash and queues it when that changed its marks.
func (w *aheadBehindWalk) paint(hash plumbing.Hash, mark side) error {
	old := w.marks[hash]
	if old|mark == old {
		return nil
	}
	w.marks[hash] = old | mark
	if _, ok := w.queued[hash]; ok {
		return nil
	}
	commit, err := w.repo.CommitObject(hash)
	if err != nil {
		if old == 0 {
			delete(w.marks, hash)
		} else {
			w.marks[hash] = old
		}
		return fmt.Errorf("read commit %s: %w", hash, err)
	}
	w.queued[hash] = struct{}{}
	w.heap.Push(commit)
	return nil
}

func (w *aheadBehindWalk) interesting() bool {
	for hash := range w.queued {
		if w.marks[hash] != sideBoth {
			return true
		}
	}
	return false
}

func newerCommitFirst(a, b any) int {
	ca, cb := a.(*object.Commit), b.(*object.Commit)
	ta, tb := ca.Committer.When, cb.Committer.When
	switch {
	case ta.After(tb):
		return -1
	case ta.Before(tb):
		return 1
	}
	return bytes.Compare(ca.Hash[:], cb.Hash[:])
}
