package git

import (
	"errors"
	"fmt"
)

// MockSource is a test double for HistoryReader.
// It allows tests to provide predefined commit and tag data without
// needing a real Git repository. Commits are ordered newest first,
// matching the traversal order of WalkHistory.
type MockSource struct {
	Commits []CommitInfo
	TagList []TagInfo
	Branch  string
	Dir     string
	Err     error
}

// HeadHash returns the hash of the newest commit.
func (m *MockSource) HeadHash() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Commits) == 0 {
		return "", errors.New("mock: no commits")
	}
	return m.Commits[0].Hash, nil
}

// CurrentBranch returns the predefined branch name.
func (m *MockSource) CurrentBranch() (string, error) {
	return m.Branch, m.Err
}

// WorkDir returns the predefined working directory.
func (m *MockSource) WorkDir() string {
	return m.Dir
}

// Commit looks up a commit by hash.
func (m *MockSource) Commit(rev string) (CommitInfo, error) {
	if m.Err != nil {
		return CommitInfo{}, m.Err
	}
	for _, c := range m.Commits {
		if c.Hash == rev {
			return c, nil
		}
	}
	return CommitInfo{}, fmt.Errorf("mock: unknown revision %q", rev)
}

// Tags returns the predefined tags. The glob pattern is ignored; tests
// provide only the tags they expect to match.
func (m *MockSource) Tags(glob string) ([]TagInfo, error) {
	return m.TagList, m.Err
}

// WalkHistory iterates the predefined commits starting at the given hash.
func (m *MockSource) WalkHistory(from string, fn func(CommitInfo) error) error {
	if m.Err != nil {
		return m.Err
	}

	start := 0
	if from != "" {
		start = -1
		for i, c := range m.Commits {
			if c.Hash == from {
				start = i
				break
			}
		}
		if start == -1 {
			return fmt.Errorf("mock: unknown revision %q", from)
		}
	}

	for _, c := range m.Commits[start:] {
		if err := fn(c); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Compile-time interface conformance check.
var _ RepositorySource = (*MockSource)(nil)
