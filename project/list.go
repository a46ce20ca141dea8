// Package project discovers HTML documents of a web project and reads them
// together with their stylesheets into an immutable Snapshot.
package project

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
)

// ListHTMLFiles returns slash separated paths of files matching any of the
// include patterns and none of the exclude patterns, in natural order.
func ListHTMLFiles(fsys fs.FS, include, exclude []string) ([]string, error) {
	for _, p := range exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	seen := make(map[string]bool)
	var files []string
	for _, p := range include {
		matches, err := doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad include pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, name) {
			return true
		}
	}
	return false
}
