package project

import (
	"path"
	"strings"

	"webcheck/css"
	"webcheck/markup"
)

// File is one HTML document of the project with every stylesheet applied to
// it: linked files, <style> blocks and (when enabled) their imports.
type File struct {
	Path   string // slash separated, relative to project root
	Doc    *markup.Document
	Styles []*css.Stylesheet
}

// Name returns base name of the document.
func (f *File) Name() string {
	return path.Base(f.Path)
}

// Declarations returns declarations of all stylesheets in cascade order.
func (f *File) Declarations() []css.Declaration {
	var out []css.Declaration
	for _, s := range f.Styles {
		out = append(out, s.Declarations...)
	}
	return out
}

// AtRules returns at-rules of all stylesheets of the document.
func (f *File) AtRules() []css.AtRule {
	var out []css.AtRule
	for _, s := range f.Styles {
		out = append(out, s.AtRules...)
	}
	return out
}

// Snapshot is the in-memory view of one project. It is built once by Load
// and never modified afterwards, so it may be shared between goroutines.
type Snapshot struct {
	Root    string  // human readable project location
	Files   []*File // in natural path order
	Skipped []string
}

// StylesByFile returns stylesheets keyed by document path.
func (s *Snapshot) StylesByFile() map[string][]*css.Stylesheet {
	out := make(map[string][]*css.Stylesheet, len(s.Files))
	for _, f := range s.Files {
		out[f.Path] = f.Styles
	}
	return out
}

// FontRule is a font-family declaration.
type FontRule struct {
	Selector string
	Family   string // raw value, e.g. "'Comic Sans MS',cursive"
	Source   string // stylesheet it came from
}

// FileFontRules lists unique font-family declarations of one document.
type FileFontRules struct {
	File  *File
	Rules []FontRule
}

// FontRules returns font-family declarations per document, duplicates of the
// same selector and value are dropped. Documents without any font-family
// still get an entry.
func (s *Snapshot) FontRules() []FileFontRules {
	out := make([]FileFontRules, 0, len(s.Files))
	for _, f := range s.Files {
		type key struct{ sel, family string }
		seen := make(map[key]bool)
		ffr := FileFontRules{File: f}
		for _, sheet := range f.Styles {
			for _, d := range sheet.DeclarationsOf("font-family") {
				k := key{strings.TrimSpace(d.Selector), strings.TrimSpace(d.Value)}
				if seen[k] {
					continue
				}
				seen[k] = true
				ffr.Rules = append(ffr.Rules, FontRule{Selector: d.Selector, Family: d.Value, Source: sheet.Source})
			}
		}
		out = append(out, ffr)
	}
	return out
}
