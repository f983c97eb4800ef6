package changelog

import (
	"fmt"
	"strings"

	"github.com/hybris-mobian/changelog-go/internal/git"
)

// EmitFunc receives each completed entry together with the release and
// version it belongs to. Entries are emitted newest first and discarded
// after the call returns.
type EmitFunc func(release, version string, entry *Entry) error

// Builder derives changelog entries from commit history. It walks
// backward from StartCommit, accumulating commit messages into an entry,
// and closes the entry whenever a version boundary is crossed: a commit
// tagged with a matching release tag (other than the start commit), or
// the repository root.
//
// The newest entry carries the externally resolved Release/Version pair;
// every boundary tag re-derives the pair for the next older entry.
type Builder struct {
	Source      git.RepositorySource
	TagPrefix   string
	StartCommit string
	Release     string
	Version     string
}

// Build performs a single pass over the history, invoking emit once per
// boundary crossing. The walk ends at the repository root.
func (b *Builder) Build(emit EmitFunc) error {
	tags, err := b.Source.Tags(git.PrefixGlob(b.TagPrefix))
	if err != nil {
		return fmt.Errorf("listing release tags: %w", err)
	}

	// Tag names are tracked with the prefix already stripped; boundary
	// commits look their release/version pair up by hash.
	byHash := make(map[string]string, len(tags))
	for _, tag := range tags {
		byHash[tag.Hash] = strings.Replace(tag.Name, b.TagPrefix, "", 1)
	}

	release, version := b.Release, b.Version
	var entry *Entry

	return b.Source.WalkHistory(b.StartCommit, func(c git.CommitInfo) error {
		tagName, tagged := byHash[c.Hash]

		switch {
		case c.IsRoot():
			// The root closes the walk. Its own message still belongs
			// to the oldest entry, which may have to be synthesized
			// from the root commit alone.
			if entry == nil {
				entry = NewEntry(c)
			}
			entry.Add(c)
			if err := emit(release, version, entry); err != nil {
				return err
			}
			return git.ErrStopWalk

		case tagged && c.Hash != b.StartCommit:
			if err := emit(release, version, entry); err != nil {
				return err
			}
			release, version = splitTagVersion(tagName, release)
			entry = nil
		}

		if entry == nil {
			entry = NewEntry(c)
		}
		entry.Add(c)
		return nil
	})
}

// splitTagVersion derives the release/version pair from a tag name with
// the prefix stripped, e.g. "bullseye/1.2.3" -> ("bullseye", "1.2.3").
// A tag without a release segment keeps the current release.
func splitTagVersion(name, currentRelease string) (release, version string) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return currentRelease, parts[0]
}
