package changelog

import (
	"github.com/hybris-mobian/changelog-go/internal/git"
)

// Entry is one in-progress changelog stanza. It is opened from the newest
// commit of a history segment, accumulates one-line messages grouped by
// author, and is rendered once a version boundary is crossed.
//
// Authors are kept in first-seen order. Messages within an author are
// prepended on insert: the walk visits commits newest first, so the final
// per-author order is oldest first.
type Entry struct {
	Author string
	Email  string
	Date   string

	blocks []*authorBlock
	index  map[string]*authorBlock
}

type authorBlock struct {
	author   string
	messages []string
}

// NewEntry opens an entry attributed to the given commit's author,
// dated with the commit's committer time.
func NewEntry(c git.CommitInfo) *Entry {
	return &Entry{
		Author: c.Author.Name,
		Email:  c.Author.Email,
		Date:   FormatDate(c.When),
		index:  make(map[string]*authorBlock),
	}
}

// Add records the commit's message summary under its author.
func (e *Entry) Add(c git.CommitInfo) {
	block, ok := e.index[c.Author.Name]
	if !ok {
		block = &authorBlock{author: c.Author.Name}
		e.index[c.Author.Name] = block
		e.blocks = append(e.blocks, block)
	}
	block.messages = append([]string{c.Summary()}, block.messages...)
}

// AuthorCount returns the number of distinct authors in the entry.
func (e *Entry) AuthorCount() int {
	return len(e.blocks)
}
