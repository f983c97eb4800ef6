package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var testEpoch = time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)

func minuteOffset(minutes int) time.Time {
	return testEpoch.Add(time.Duration(minutes) * time.Minute)
}

// createPackageRepo creates a temporary git repository whose first commit
// carries the Debian packaging metadata for source package "testpkg".
func createPackageRepo(t *testing.T) (string, *gogit.Repository, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	writeTreeFile(t, dir, "debian/control", "Source: testpkg\nSection: utils\n")
	writeTreeFile(t, dir, "debian/source/format", "3.0 (native)\n")

	root := commitAll(t, repo, "Initial packaging", "Alice", "alice@example.com", minuteOffset(0))
	return dir, repo, root
}

func writeTreeFile(t *testing.T, dir, relPath, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", relPath, err)
	}
}

// addWorkCommit writes a file and commits it with the given time.
func addWorkCommit(t *testing.T, repo *gogit.Repository, dir, filename, message string, when time.Time) plumbing.Hash {
	t.Helper()

	writeTreeFile(t, dir, filename, "Content for "+filename+" at "+when.String()+"\n")
	return commitAll(t, repo, message, "Alice", "alice@example.com", when)
}

func commitAll(t *testing.T, repo *gogit.Repository, message, author, email string, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if err := w.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		t.Fatalf("Failed to stage files: %v", err)
	}

	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: author, Email: email, When: when},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash
}

func tagCommit(t *testing.T, repo *gogit.Repository, name string, hash plumbing.Hash) {
	t.Helper()

	if _, err := repo.CreateTag(name, hash, nil); err != nil {
		t.Fatalf("Failed to create tag %s: %v", name, err)
	}
}

// isolateEnv keeps user-level configuration out of CLI tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// gogitInit initializes an empty repository without packaging metadata.
func gogitInit(dir string) (*gogit.Repository, error) {
	return gogit.PlainInit(dir, false)
}
