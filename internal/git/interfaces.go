package git

import "errors"

// ErrStopWalk can be returned from a WalkHistory callback to end the
// traversal early without reporting an error.
var ErrStopWalk = errors.New("stop history walk")

// RepositorySource defines the interface for reading Git repository state.
// This abstraction allows for easier testing and potential alternative implementations.
type RepositorySource interface {
	// HeadHash returns the hash of the current HEAD commit.
	HeadHash() (string, error)

	// CurrentBranch returns the short name of the checked-out branch,
	// or an empty string in detached HEAD state.
	CurrentBranch() (string, error)

	// Commit resolves a revision (hash, ref name, ...) to commit information.
	Commit(rev string) (CommitInfo, error)

	// Tags enumerates tags whose names match the given glob pattern.
	// An empty pattern matches every tag.
	Tags(glob string) ([]TagInfo, error)

	// WalkHistory traverses history from the given revision backward in
	// reverse chronological order, invoking fn for each commit.
	WalkHistory(from string, fn func(CommitInfo) error) error

	// WorkDir returns the root of the repository working tree.
	WorkDir() string
}

// Compile-time interface conformance check.
var _ RepositorySource = (*HistoryReader)(nil)

// PrefixGlob converts a tag prefix into the glob pattern used to select
// release tags, mirroring `git describe --match=<prefix>*`.
func PrefixGlob(prefix string) string {
	if prefix == "" {
		return "**"
	}
	return prefix + "**"
}

// NearestTag finds the first commit reachable from the given revision
// (inclusive) that carries a tag matching the glob, and returns that tag.
// The boolean result reports whether a tag was found.
func NearestTag(src RepositorySource, from, glob string) (TagInfo, bool, error) {
	tags, err := src.Tags(glob)
	if err != nil {
		return TagInfo{}, false, err
	}
	if len(tags) == 0 {
		return TagInfo{}, false, nil
	}

	byHash := make(map[string]TagInfo, len(tags))
	for _, tag := range tags {
		byHash[tag.Hash] = tag
	}

	var found TagInfo
	var ok bool
	err = src.WalkHistory(from, func(c CommitInfo) error {
		if tag, hit := byHash[c.Hash]; hit {
			found = tag
			ok = true
			return ErrStopWalk
		}
		return nil
	})
	if err != nil {
		return TagInfo{}, false, err
	}

	return found, ok, nil
}
