// Package changelog builds Debian changelog stanzas from a Git commit
// history, splitting the walk at release tag boundaries and at the
// repository root.
package changelog

import (
	"regexp"
	"strings"
	"time"
)

// debianDateLayout is the date format used in changelog trailer lines
// (RFC 2822 style, as produced by date -R).
const debianDateLayout = "Mon, 02 Jan 2006 15:04:05 -0700"

// timestampLayout is the compact commit timestamp embedded in versions.
const timestampLayout = "20060102150405"

var nonSlugRunes = regexp.MustCompile("[^a-z0-9_]+")

// Slugify lowercases the string and collapses every run of characters
// outside [a-z0-9_] to a single dot.
func Slugify(s string) string {
	return nonSlugRunes.ReplaceAllString(strings.ToLower(s), ".")
}

var versionSanitizer = strings.NewReplacer("_", "~", "%", ":")

// SanitizeVersion maps characters that are not safe in Debian package
// versions to their conventional replacements: underscores become tildes,
// percent signs become colons.
func SanitizeVersion(version string) string {
	return versionSanitizer.Replace(version)
}

// FormatDate renders a timestamp in the changelog trailer date format,
// preserving the commit's own UTC offset.
func FormatDate(t time.Time) string {
	return t.Format(debianDateLayout)
}

// FormatTimestamp renders the compact commit timestamp used in the
// +git version suffix.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
