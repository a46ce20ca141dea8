package project_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"webcheck/archive"
	"webcheck/config"
	"webcheck/project"
)

func projectConfig() *config.ProjectConfig {
	return &config.ProjectConfig{
		Include:       []string{"**/*.html", "**/*.htm"},
		Exclude:       []string{"**/node_modules/**"},
		FollowImports: true,
	}
}

func sources(f *project.File) []string {
	var out []string
	for _, s := range f.Styles {
		out = append(out, s.Source)
	}
	return out
}

var site = fstest.MapFS{
	"index.html": {Data: []byte(`<html><head>
<link rel="stylesheet" href="css/main.css">
<link rel="stylesheet" href="https://fonts.example.com/font.css">
<link rel="stylesheet" href="css/missing.css">
<style>p { color: red; }</style>
</head><body><header style="x">hi</header></body></html>`)},
	"page10.html":                  {Data: []byte(`<html><body><p>no styles</p></body></html>`)},
	"page2.htm":                    {Data: []byte(`<html><head><link rel="stylesheet" href="/css/main.css?v=2"></head></html>`)},
	"about/team.html":              {Data: []byte(`<html><head><link rel="stylesheet" href="../css/main.css"></head></html>`)},
	"node_modules/pkg/readme.html": {Data: []byte(`<p>ignored</p>`)},
	"notes.txt":                    {Data: []byte(`not html`)},
	"css/main.css":                 {Data: []byte(`@import "base.css"; @import url(https://cdn.example.com/x.css); body { font-family: Arial, sans-serif; }`)},
	"css/base.css":                 {Data: []byte(`@import "main.css"; html { margin: 0; }`)},
}

func TestListHTMLFiles(t *testing.T) {
	cfg := projectConfig()

	got, err := project.ListHTMLFiles(site, cfg.Include, cfg.Exclude)
	if err != nil {
		t.Fatalf("ListHTMLFiles() error = %v", err)
	}
	want := []string{"about/team.html", "index.html", "page2.htm", "page10.html"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListHTMLFiles mismatch (-want +got):\n%s", diff)
	}

	if _, err := project.ListHTMLFiles(site, []string{"[a-"}, nil); err == nil {
		t.Error("expected error for bad include pattern")
	}
	if _, err := project.ListHTMLFiles(site, cfg.Include, []string{"{a"}); err == nil {
		t.Error("expected error for bad exclude pattern")
	}
}

func TestLoad(t *testing.T) {
	snap, err := project.Load(context.Background(), site, projectConfig(), zap.NewNop(), project.WithRoot("site"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Root != "site" {
		t.Errorf("Root = %q, want site", snap.Root)
	}
	if len(snap.Files) != 4 {
		t.Fatalf("expected 4 files, got %d", len(snap.Files))
	}

	index := snap.Files[1]
	if index.Name() != "index.html" {
		t.Fatalf("unexpected file order: %s", index.Path)
	}
	// imports precede importing stylesheet, cycles are cut, remote and missing are skipped
	want := []string{"css/base.css", "css/main.css", "<style>#1"}
	if diff := cmp.Diff(want, sources(index)); diff != "" {
		t.Errorf("index.html styles mismatch (-want +got):\n%s", diff)
	}
	if n := len(index.Doc.WithAttribute("style")); n != 1 {
		t.Errorf("expected 1 element with style attribute, got %d", n)
	}

	if got := sources(snap.Files[0]); len(got) != 2 || got[1] != "css/main.css" {
		t.Errorf("about/team.html styles = %v", got)
	}
	if snap.Files[0].Name() != "team.html" {
		t.Errorf("Name() = %q, want team.html", snap.Files[0].Name())
	}
	if got := sources(snap.Files[2]); len(got) != 2 {
		t.Errorf("page2.htm styles = %v, root relative href with query must resolve", got)
	}
	if got := sources(snap.Files[3]); len(got) != 0 {
		t.Errorf("page10.html styles = %v, want none", got)
	}

	// linked files are parsed once and shared
	if snap.Files[0].Styles[1] != index.Styles[1] {
		t.Error("stylesheet was parsed more than once")
	}

	byFile := snap.StylesByFile()
	if len(byFile) != 4 || len(byFile["index.html"]) != 3 {
		t.Errorf("StylesByFile() = %v", byFile)
	}
}

func TestLoad_NoImports(t *testing.T) {
	cfg := projectConfig()
	cfg.FollowImports = false

	snap, err := project.Load(context.Background(), site, cfg, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"css/main.css", "<style>#1"}
	if diff := cmp.Diff(want, sources(snap.Files[1])); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NoDocuments(t *testing.T) {
	_, err := project.Load(context.Background(), fstest.MapFS{"a.css": {Data: []byte("p{}")}}, projectConfig(), zap.NewNop())
	if !errors.Is(err, project.ErrNoDocuments) {
		t.Errorf("Load() error = %v, want ErrNoDocuments", err)
	}
}

func TestLoad_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := project.Load(ctx, site, projectConfig(), zap.NewNop()); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestSnapshot_FontRules(t *testing.T) {
	fsys := fstest.MapFS{
		"a.html": {Data: []byte(`<style>
body { font-family: 'Comic Sans MS', cursive; }
body { font-family: 'Comic Sans MS', cursive; }
h1 { font-family: Georgia, serif; }
</style>`)},
		"b.html": {Data: []byte(`<p>plain</p>`)},
	}
	snap, err := project.Load(context.Background(), fsys, projectConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rules := snap.FontRules()
	if len(rules) != 2 {
		t.Fatalf("expected entries for 2 files, got %d", len(rules))
	}
	want := []project.FontRule{
		{Selector: "body", Family: "'Comic Sans MS',cursive", Source: "<style>#1"},
		{Selector: "h1", Family: "Georgia,serif", Source: "<style>#1"},
	}
	if diff := cmp.Diff(want, rules[0].Rules); diff != "" {
		t.Errorf("FontRules mismatch (-want +got):\n%s", diff)
	}
	if rules[1].File.Name() != "b.html" || len(rules[1].Rules) != 0 {
		t.Errorf("b.html font rules = %+v", rules[1].Rules)
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"index.html":    `<link rel="stylesheet" href="style.css"><header>x</header>`,
		"style.css":     `@media screen and (max-width: 600px) { header { padding: 0 } }`,
		"sub/page.html": `<footer></footer>`,
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	snap, err := project.Load(context.Background(), os.DirFS(dir), projectConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Files) != 2 || snap.Files[1].Path != "sub/page.html" {
		t.Fatalf("unexpected files: %+v", snap.Files)
	}
	if n := len(snap.Files[0].AtRules()); n != 1 {
		t.Errorf("expected 1 at-rule, got %d", n)
	}
	if n := len(snap.Files[0].Declarations()); n != 1 {
		t.Errorf("expected 1 declaration, got %d", n)
	}
}

func TestLoad_Archive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "site.zip")
	zf, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(zf)
	for name, content := range map[string]string{
		"site/index.html":   `<link rel="stylesheet" href="css/site.css">`,
		"site/css/site.css": `body { color: #000 }`,
	} {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte(content))
	}
	w.Close()
	zf.Close()

	a, err := archive.Open(zipPath, "site")
	if err != nil {
		t.Fatalf("archive.Open() error = %v", err)
	}
	defer a.Close()

	snap, err := project.Load(context.Background(), a, projectConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Files) != 1 || len(snap.Files[0].Styles) != 1 || snap.Files[0].Styles[0].Empty() {
		t.Errorf("unexpected snapshot: %+v", snap.Files)
	}
}
