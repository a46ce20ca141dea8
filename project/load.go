package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"webcheck/config"
	"webcheck/css"
	"webcheck/markup"
)

// ErrNoDocuments is returned when project has nothing to check.
var ErrNoDocuments = errors.New("no HTML documents found")

// Option tunes Load.
type Option func(*loader)

// WithCharset forces encoding of HTML documents instead of detecting it.
func WithCharset(enc encoding.Encoding) Option {
	return func(l *loader) {
		l.enc = enc
	}
}

// WithRoot sets human readable project location for logs and reports.
func WithRoot(root string) Option {
	return func(l *loader) {
		l.root = root
	}
}

type loader struct {
	fsys   fs.FS
	cfg    *config.ProjectConfig
	enc    encoding.Encoding
	root   string
	log    *zap.Logger
	parser *css.Parser

	// stylesheet files are shared by documents, parse each once
	sheets map[string]*css.Stylesheet
	failed map[string]error
}

// Load discovers HTML documents in fsys and reads them together with their
// stylesheets. Documents which cannot be read are skipped and logged, only
// discovery problems and cancellation are returned as errors.
func Load(ctx context.Context, fsys fs.FS, cfg *config.ProjectConfig, log *zap.Logger, options ...Option) (*Snapshot, error) {
	if log == nil {
		log = zap.NewNop()
	}
	l := &loader{
		fsys:   fsys,
		cfg:    cfg,
		root:   ".",
		log:    log.Named("project"),
		sheets: make(map[string]*css.Stylesheet),
		failed: make(map[string]error),
	}
	for _, o := range options {
		o(l)
	}
	l.parser = css.NewParser(l.log)

	names, err := ListHTMLFiles(fsys, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("unable to list project files: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, l.root)
	}
	l.log.Debug("Project discovered", zap.String("root", l.root), zap.Int("documents", len(names)))

	snap := &Snapshot{Root: l.root}

	var errs error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := l.loadFile(name)
		if err != nil {
			l.log.Warn("Skipping document", zap.String("file", name), zap.Error(err))
			snap.Skipped = append(snap.Skipped, name)
			errs = multierr.Append(errs, err)
			continue
		}
		snap.Files = append(snap.Files, f)
	}

	if errs != nil {
		l.log.Warn("Some documents were not loaded",
			zap.Int("skipped", len(snap.Skipped)), zap.Int("loaded", len(snap.Files)), zap.Error(errs))
	}
	if len(snap.Files) == 0 {
		return nil, fmt.Errorf("%w in %s: %w", ErrNoDocuments, l.root, errs)
	}
	return snap, nil
}

func (l *loader) loadFile(name string) (*File, error) {
	r, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := markup.Parse(r, name, l.enc)
	if err != nil {
		return nil, err
	}
	l.log.Debug("Document parsed", zap.String("file", name), zap.String("encoding", doc.Encoding))

	f := &File{Path: name, Doc: doc}
	dir := path.Dir(name)

	visited := make(map[string]bool)
	for _, ref := range doc.StylesheetRefs() {
		target, ok := l.resolve(dir, ref.Href)
		if !ok {
			l.log.Debug("Ignoring non local stylesheet", zap.String("file", name), zap.String("href", ref.Href))
			continue
		}
		sheet, err := l.stylesheet(target)
		if err != nil {
			l.log.Warn("Unable to read linked stylesheet", zap.String("file", name), zap.String("href", ref.Href), zap.Error(err))
			continue
		}
		f.Styles = l.withImports(f.Styles, sheet, path.Dir(target), visited, name)
	}
	for _, block := range doc.StyleBlocks() {
		sheet := l.parser.Parse([]byte(block.Text), fmt.Sprintf("<style>#%d", block.Index))
		l.warnings(name, sheet)
		f.Styles = l.withImports(f.Styles, sheet, dir, visited, name)
	}
	return f, nil
}

// withImports appends stylesheet to the list preceded by stylesheets it
// imports, recursively. Each file is included once per document.
func (l *loader) withImports(styles []*css.Stylesheet, sheet *css.Stylesheet, dir string, visited map[string]bool, doc string) []*css.Stylesheet {
	if visited[sheet.Source] {
		return styles
	}
	visited[sheet.Source] = true

	if l.cfg.FollowImports {
		for _, imp := range sheet.Imports {
			target, ok := l.resolve(dir, imp)
			if !ok {
				l.log.Debug("Ignoring non local import", zap.String("file", doc), zap.String("url", imp))
				continue
			}
			if visited[target] {
				continue
			}
			imported, err := l.stylesheet(target)
			if err != nil {
				l.log.Warn("Unable to read imported stylesheet",
					zap.String("file", doc), zap.String("from", sheet.Source), zap.String("url", imp), zap.Error(err))
				continue
			}
			styles = l.withImports(styles, imported, path.Dir(target), visited, doc)
		}
	}
	return append(styles, sheet)
}

// stylesheet reads and parses stylesheet file, results are cached.
func (l *loader) stylesheet(name string) (*css.Stylesheet, error) {
	if sheet, ok := l.sheets[name]; ok {
		return sheet, nil
	}
	if err, ok := l.failed[name]; ok {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		l.failed[name] = err
		return nil, err
	}
	sheet := l.parser.Parse(data, name)
	l.warnings(name, sheet)
	l.sheets[name] = sheet
	return sheet, nil
}

func (l *loader) warnings(file string, sheet *css.Stylesheet) {
	for _, w := range sheet.Warnings {
		l.log.Debug("CSS problem", zap.String("file", file), zap.String("source", sheet.Source), zap.String("problem", w))
	}
}

// resolve turns reference found in dir into a path inside project. Remote,
// data and root-escaping references are not local.
func (l *loader) resolve(dir, ref string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	var target string
	if strings.HasPrefix(u.Path, "/") {
		target = path.Clean(strings.TrimPrefix(u.Path, "/"))
	} else {
		target = path.Join(dir, u.Path)
	}
	if !fs.ValidPath(target) {
		return "", false
	}
	return target, true
}
