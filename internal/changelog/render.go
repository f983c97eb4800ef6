package changelog

import (
	"fmt"
	"strings"
)

// Render produces one formatted changelog stanza:
//
//	name (version) release; urgency=<urgency>
//
//	<body>
//
//	 -- author <email>  date
//
// followed by a blank line. The version is sanitized at render time.
// When the entry has more than one author, each author's messages are
// prefixed with a "[ author ]" header and blocks are separated by a
// blank line.
func Render(name, version, release, urgency string, entry *Entry) string {
	var sections []string
	multi := entry.AuthorCount() > 1
	for _, block := range entry.blocks {
		var b strings.Builder
		if multi {
			fmt.Fprintf(&b, "  [ %s ]\n", block.author)
		}
		for i, message := range block.messages {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "  * %s", message)
		}
		sections = append(sections, b.String())
	}

	return fmt.Sprintf("%s (%s) %s; urgency=%s\n\n%s\n\n -- %s <%s>  %s\n\n",
		name,
		SanitizeVersion(version),
		release,
		urgency,
		strings.Join(sections, "\n\n"),
		entry.Author,
		entry.Email,
		entry.Date,
	)
}
