// Package version resolves the package version and target release for a
// build from tags, branches and packaging metadata.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hybris-mobian/changelog-go/internal/changelog"
	"github.com/hybris-mobian/changelog-go/internal/deb"
	"github.com/hybris-mobian/changelog-go/internal/git"
)

// ErrMissingReleaseInfo is returned when neither a tag nor a branch is
// available to derive the target release from.
var ErrMissingReleaseInfo = errors.New("at least one between tag and branch must be specified")

// DefaultBase is the base version used when every other strategy fails.
const DefaultBase = "0.0.0"

// Resolver computes the package version and target release for a build.
//
// The base version is tried through an ordered chain of strategies, first
// non-empty result wins: the explicitly supplied tag, the nearest matching
// tag reachable from the target commit, the latest version recorded in a
// pre-existing debian/changelog, and finally DefaultBase.
type Resolver struct {
	Source git.RepositorySource
	Pkg    *deb.SourcePackage

	// Commit is the resolved target commit; its committer time and short
	// hash feed the +git version suffix.
	Commit git.CommitInfo

	Tag          string
	TagPrefix    string
	Branch       string
	BranchPrefix string
	Comment      string
}

// Version returns the full package version:
//
//	<base>+git<timestamp><short hash>.<slug(comment)>
//
// with the timestamp taken from the target commit's committer time.
func (r *Resolver) Version() string {
	return fmt.Sprintf("%s+git%s%s.%s",
		changelog.SanitizeVersion(r.base()),
		changelog.FormatTimestamp(r.Commit.When),
		r.Commit.ShortHash(),
		r.CommentSlug(),
	)
}

// Release returns the target release name: from the tag if present, else
// from the branch, else ErrMissingReleaseInfo.
func (r *Resolver) Release() (string, error) {
	if r.Tag != "" {
		return firstSegment(r.Tag, r.TagPrefix), nil
	}
	if r.Branch != "" {
		return firstSegment(r.Branch, r.BranchPrefix), nil
	}
	return "", ErrMissingReleaseInfo
}

// CommentSlug returns the version comment with the branch prefix removed,
// slugified.
func (r *Resolver) CommentSlug() string {
	return changelog.Slugify(strings.Replace(r.Comment, r.BranchPrefix, "", 1))
}

func (r *Resolver) base() string {
	strategies := []func() string{
		r.fromTag,
		r.fromNearestTag,
		r.Pkg.ChangelogVersion,
		func() string { return DefaultBase },
	}
	for _, strategy := range strategies {
		if base := strategy(); base != "" {
			return base
		}
	}
	return DefaultBase
}

// fromTag derives the base version from the explicitly supplied tag.
func (r *Resolver) fromTag() string {
	if r.Tag == "" {
		return ""
	}
	return lastSegment(r.Tag, r.TagPrefix)
}

// fromNearestTag performs the describe-like lookup: the nearest tag
// matching the configured prefix reachable from the target commit.
// Lookup failures fall through to the next strategy.
func (r *Resolver) fromNearestTag() string {
	tag, ok, err := git.NearestTag(r.Source, r.Commit.Hash, git.PrefixGlob(r.TagPrefix))
	if err != nil || !ok {
		return ""
	}
	return lastSegment(tag.Name, r.TagPrefix)
}

// firstSegment strips the prefix and returns the first path segment.
func firstSegment(name, prefix string) string {
	return strings.Split(strings.Replace(name, prefix, "", 1), "/")[0]
}

// lastSegment strips the prefix and returns the last path segment.
func lastSegment(name, prefix string) string {
	parts := strings.Split(strings.Replace(name, prefix, "", 1), "/")
	return parts[len(parts)-1]
}
