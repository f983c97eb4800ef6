package git

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// HistoryReader reads commit history and tags from a Git repository.
type HistoryReader struct {
	repo *gogit.Repository
	path string
}

// NewHistoryReader opens the repository at the given path. The path may
// point anywhere inside the working tree; the enclosing repository is
// located by walking up the directory tree.
func NewHistoryReader(path string) (*HistoryReader, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &HistoryReader{repo: repo, path: path}, nil
}

// HeadHash returns the hash of the current HEAD commit.
func (r *HistoryReader) HeadHash() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// CurrentBranch returns the short name of the checked-out branch.
// Returns an empty string in detached HEAD state.
func (r *HistoryReader) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// WorkDir returns the root of the repository working tree.
func (r *HistoryReader) WorkDir() string {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return r.path
	}
	return worktree.Filesystem.Root()
}

// Commit resolves a revision to commit information.
func (r *HistoryReader) Commit(rev string) (CommitInfo, error) {
	commit, err := r.commitObject(rev)
	if err != nil {
		return CommitInfo{}, err
	}
	return toCommitInfo(commit), nil
}

// Tags enumerates tags matching the glob pattern, resolving annotated
// tags to the commits they target. An empty pattern matches every tag.
func (r *HistoryReader) Tags(glob string) ([]TagInfo, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []TagInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if glob != "" {
			matched, err := doublestar.Match(glob, name)
			if err != nil {
				return fmt.Errorf("matching tag pattern %q: %w", glob, err)
			}
			if !matched {
				return nil
			}
		}

		hash := ref.Hash()
		if tagObj, err := r.repo.TagObject(hash); err == nil {
			hash = tagObj.Target
		}

		tags = append(tags, TagInfo{Name: name, Hash: hash.String()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}

// WalkHistory traverses history from the given revision backward through
// parent links in committer-time order, invoking fn for each commit.
// Returning ErrStopWalk from fn ends the walk without error.
func (r *HistoryReader) WalkHistory(from string, fn func(CommitInfo) error) error {
	start, err := r.commitObject(from)
	if err != nil {
		return err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{
		From:  start.Hash,
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return fmt.Errorf("reading history from %s: %w", from, err)
	}
	defer iter.Close()

	return iter.ForEach(func(c *object.Commit) error {
		if err := fn(toCommitInfo(c)); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return storer.ErrStop
			}
			return err
		}
		return nil
	})
}

// commitObject resolves a revision string to a commit object.
func (r *HistoryReader) commitObject(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	return commit, nil
}

func toCommitInfo(c *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:        c.Hash.String(),
		When:        c.Committer.When,
		Author:      AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message:     c.Message,
		ParentCount: c.NumParents(),
	}
}
