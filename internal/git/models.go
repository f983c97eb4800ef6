package git

import (
	"strings"
	"time"
)

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	Hash        string
	When        time.Time
	Author      AuthorInfo
	Message     string
	ParentCount int
}

// Summary returns the first line of the commit message.
func (c CommitInfo) Summary() string {
	if idx := strings.IndexByte(c.Message, '\n'); idx != -1 {
		return c.Message[:idx]
	}
	return c.Message
}

// ShortHash returns the abbreviated commit hash.
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// IsRoot reports whether the commit has no parents (history root).
func (c CommitInfo) IsRoot() bool {
	return c.ParentCount == 0
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// TagInfo binds a tag name to the commit it points at.
// Annotated tags are resolved to their target commit.
type TagInfo struct {
	Name string
	Hash string
}
