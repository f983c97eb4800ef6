// Package deb reads Debian packaging metadata from a source tree:
// the package name from debian/control, the source format from
// debian/source/format, and the fallback version from an existing
// debian/changelog.
package deb

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const quiltFormat = "3.0 (quilt)"

var (
	// ErrMissingControl is returned when debian/control does not exist.
	ErrMissingControl = errors.New("unable to find debian/control")

	// ErrMissingSourceName is returned when debian/control has no Source line.
	ErrMissingSourceName = errors.New("unable to determine the source package name")

	// ErrMissingSourceFormat is returned when debian/source/format does not exist.
	ErrMissingSourceFormat = errors.New("unable to find debian/source/format")
)

// SourcePackage reads packaging metadata from a Debian source tree.
// Lookups are lazy and cached; metadata files are read at most once.
type SourcePackage struct {
	dir string

	name   string
	native *bool
}

// NewSourcePackage creates a SourcePackage rooted at the given directory,
// normally the repository working tree.
func NewSourcePackage(dir string) *SourcePackage {
	return &SourcePackage{dir: dir}
}

// Dir returns the source tree root.
func (p *SourcePackage) Dir() string {
	return p.dir
}

// Name returns the source package name from the Source field of
// debian/control.
func (p *SourcePackage) Name() (string, error) {
	if p.name != "" {
		return p.name, nil
	}

	path := filepath.Join(p.dir, "debian", "control")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrMissingControl
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "Source: ") {
			fields := strings.SplitN(strings.TrimSpace(line), " ", 2)
			p.name = fields[len(fields)-1]
			return p.name, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return "", ErrMissingSourceName
}

// Native reports whether the source package uses a native format.
// Anything other than "3.0 (quilt)" in debian/source/format is
// considered native.
func (p *SourcePackage) Native() (bool, error) {
	if p.native != nil {
		return *p.native, nil
	}

	path := filepath.Join(p.dir, "debian", "source", "format")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, ErrMissingSourceFormat
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	native := strings.TrimSpace(string(data)) != quiltFormat
	p.native = &native
	return native, nil
}

// ChangelogVersion returns the most recent version recorded in an
// existing debian/changelog, or an empty string if no usable version
// can be read. This is a best-effort lookup used as a version fallback;
// it never reports an error.
func (p *SourcePackage) ChangelogVersion() string {
	f, err := os.Open(filepath.Join(p.dir, "debian", "changelog"))
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}

	// First line looks like: name (version) release; urgency=medium
	fields := strings.Split(scanner.Text(), " ")
	if len(fields) < 2 || len(fields[1]) < 2 {
		return ""
	}
	return strings.Trim(fields[1], "()<>")
}
