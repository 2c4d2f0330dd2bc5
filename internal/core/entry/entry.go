package entry

import (
	"fmt"
	"strings"
)

// separatorLine frames headed entries. Width matches the historical
// on-disk format; changing it would break log diffing across versions.
var separatorLine = strings.Repeat("-", 59)

// Entry is an ephemeral value object representing one block of text
// destined for a log file. It carries the content plus optional header
// and context framing and exists only for the duration of a single
// write call.
type Entry struct {
	content string
	header  string
	context string
}

// New creates an Entry with bare content and no framing.
func New(content string) Entry {
	return Entry{content: content}
}

// WithHeader returns a copy of the entry with the given header label.
func (e Entry) WithHeader(header string) Entry {
	e.header = header
	return e
}

// WithContext returns a copy of the entry with the given context,
// typically source-location metadata such as "writer.go:42".
func (e Entry) WithContext(context string) Entry {
	e.context = context
	return e
}

// Content returns the entry's content.
func (e Entry) Content() string {
	return e.content
}

// Header returns the entry's header, empty if unset.
func (e Entry) Header() string {
	return e.header
}

// Context returns the entry's context, empty if unset.
func (e Entry) Context() string {
	return e.context
}

// Render produces the on-disk text block. Every case starts with a
// blank line (visual separation from the previous entry) and ends with
// the content followed by a newline. Header and context, when present,
// are framed between separator lines:
//
//	> HEADER (file.go:12)
//
// A context without a header renders as "> [at file.go:12]".
func (e Entry) Render() string {
	var b strings.Builder

	switch {
	case e.header != "" && e.context != "":
		fmt.Fprintf(&b, "\n%s\n", separatorLine)
		fmt.Fprintf(&b, "> %s (%s)\n", e.header, e.context)
		fmt.Fprintf(&b, "%s\n", separatorLine)
		fmt.Fprintf(&b, "%s\n", e.content)

	case e.header != "":
		fmt.Fprintf(&b, "\n%s\n", separatorLine)
		fmt.Fprintf(&b, "> %s\n", e.header)
		fmt.Fprintf(&b, "%s\n", separatorLine)
		fmt.Fprintf(&b, "%s\n", e.content)

	case e.context != "":
		fmt.Fprintf(&b, "\n%s\n", separatorLine)
		fmt.Fprintf(&b, "> [at %s]\n", e.context)
		fmt.Fprintf(&b, "%s\n", separatorLine)
		fmt.Fprintf(&b, "%s\n", e.content)

	default:
		fmt.Fprintf(&b, "\n%s\n", e.content)
	}

	return b.String()
}
