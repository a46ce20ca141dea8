package project

import (
	"fmt"

	"webcheck/utils/debug"
)

// String returns a readable tree of the snapshot: documents, element counts
// and every stylesheet applied to them. It exists for debug reports only.
func (s *Snapshot) String() string {
	if s == nil {
		return "<nil Snapshot>"
	}

	tw := debug.NewTree()
	tw.Line(0, "Snapshot %q: %d documents", s.Root, len(s.Files))
	for _, f := range s.Files {
		tw.Line(1, "Document %q", f.Path)
		tw.Field(2, "encoding", f.Doc.Encoding)

		tags := f.Doc.Tags()
		counts := make([]string, 0, len(tags))
		for _, tag := range tags {
			counts = append(counts, fmt.Sprintf("%s=%d", tag, f.Doc.CountTag(tag)))
		}
		tw.List(2, "Tags", counts)

		for i, sheet := range f.Styles {
			tw.Line(2, "Stylesheet[%d] %q bytes=%d", i, sheet.Source, len(sheet.Text))
			for _, d := range sheet.Declarations {
				important := ""
				if d.Important {
					important = " !important"
				}
				tw.Line(3, "%s { %s: %s%s }", d.Selector, d.Property, d.Value, important)
				tw.Field(4, "media", d.Media)
			}
			for _, r := range sheet.AtRules {
				tw.Line(3, "%s (line %d)", r.Raw, r.Line)
			}
			for _, w := range sheet.Warnings {
				tw.Field(3, "warning", w)
			}
		}
	}
	if len(s.Skipped) > 0 {
		tw.List(1, "Skipped", s.Skipped)
	}
	return tw.String()
}
