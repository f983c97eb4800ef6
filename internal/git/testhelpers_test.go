package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository for history tests.
func createTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := gogit.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}

	return tmpDir, repo
}

// addCommit writes a file and commits it with the given author and time,
// returning the commit hash.
func addCommit(t *testing.T, repo *gogit.Repository, filename, message, author, email string, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	path := filepath.Join(w.Filesystem.Root(), filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	content := "Content for " + filename + " at " + when.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := w.Add(filename); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}

	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: email,
			When:  when,
		},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	return hash
}

// tagCommit creates a lightweight tag pointing at the given commit.
func tagCommit(t *testing.T, repo *gogit.Repository, name string, hash plumbing.Hash) {
	t.Helper()

	if _, err := repo.CreateTag(name, hash, nil); err != nil {
		t.Fatalf("Failed to create tag %s: %v", name, err)
	}
}

// annotatedTagCommit creates an annotated tag pointing at the given commit.
func annotatedTagCommit(t *testing.T, repo *gogit.Repository, name string, hash plumbing.Hash, when time.Time) {
	t.Helper()

	_, err := repo.CreateTag(name, hash, &gogit.CreateTagOptions{
		Tagger: &object.Signature{
			Name:  "Test Tagger",
			Email: "tagger@example.com",
			When:  when,
		},
		Message: "release " + name,
	})
	if err != nil {
		t.Fatalf("Failed to create annotated tag %s: %v", name, err)
	}
}

// testEpoch is the base time for generated commits; successive commits
// should use strictly increasing offsets for a deterministic walk order.
var testEpoch = time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)

func minuteOffset(minutes int) time.Time {
	return testEpoch.Add(time.Duration(minutes) * time.Minute)
}
