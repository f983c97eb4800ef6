// Package output handles the user-facing side of generation: colored
// console status messages and sequential writing of rendered changelog
// stanzas to the output file.
package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Infof prints an informational message to stdout.
func Infof(format string, args ...interface{}) {
	color.Blue("I: "+format, args...)
}

// Warningf prints a warning message to stdout.
func Warningf(format string, args ...interface{}) {
	color.Cyan("W: "+format, args...)
}

// Errorf prints an error message to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("E: "+format, args...))
}

// StanzaWriter writes rendered changelog stanzas sequentially to a file.
// The file is truncated on creation and written as stanzas are produced;
// a failure mid-walk can leave a partial file behind.
type StanzaWriter struct {
	f       *os.File
	stanzas int
}

// NewStanzaWriter creates (or overwrites) the output file.
func NewStanzaWriter(path string) (*StanzaWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &StanzaWriter{f: f}, nil
}

// WriteStanza appends one rendered stanza.
func (w *StanzaWriter) WriteStanza(stanza string) error {
	if _, err := w.f.WriteString(stanza); err != nil {
		return fmt.Errorf("writing %s: %w", w.f.Name(), err)
	}
	w.stanzas++
	return nil
}

// Stanzas returns the number of stanzas written so far.
func (w *StanzaWriter) Stanzas() int {
	return w.stanzas
}

// Close flushes and closes the output file.
func (w *StanzaWriter) Close() error {
	return w.f.Close()
}
