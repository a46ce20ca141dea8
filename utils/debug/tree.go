// Package debug helps producing human readable dumps of parsed data for
// debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree accumulates indented lines.
type Tree struct {
	b      strings.Builder
	indent string
}

// NewTree returns empty tree indented by two spaces per level.
func NewTree() *Tree {
	return &Tree{indent: "  "}
}

func (t *Tree) String() string {
	return t.b.String()
}

func (t *Tree) pad(depth int) {
	t.b.WriteString(strings.Repeat(t.indent, max(depth, 0)))
}

// Line adds formatted line at depth.
func (t *Tree) Line(depth int, format string, args ...any) {
	t.pad(depth)
	fmt.Fprintf(&t.b, format, args...)
	t.b.WriteByte('\n')
}

// Field adds "label: value" line, value is quoted so control characters and
// whitespace stay visible. Empty values are omitted.
func (t *Tree) Field(depth int, label, value string) {
	if value == "" {
		return
	}
	t.pad(depth)
	t.b.WriteString(label)
	t.b.WriteString(": ")
	t.b.WriteString(strconv.Quote(value))
	t.b.WriteByte('\n')
}

// List adds label with item count followed by one line per item.
func (t *Tree) List(depth int, label string, items []string) {
	t.Line(depth, "%s (%d)", label, len(items))
	for _, it := range items {
		t.Line(depth+1, "%s", it)
	}
}
