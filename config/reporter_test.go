package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Content(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "report.zip")
	r, err := (&ReporterConfig{Destination: dst}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if r.Name() != dst {
		t.Errorf("Name() = %q, want %q", r.Name(), dst)
	}

	stored := filepath.Join(t.TempDir(), "webcheck.log")
	if err := os.WriteFile(stored, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("webcheck.log", stored)
	r.StoreData("results/site.yaml", []byte("files: 1"))

	site := fstest.MapFS{
		"index.html":    {Data: []byte("<html></html>")},
		"css/style.css": {Data: []byte("body {}")},
	}
	if err := r.StoreCopy("project/site", site); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// same name again is versioned
	if err := r.StoreCopy("project/site", site); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, dst)
	for name, want := range map[string]string{
		"webcheck.log":               "log line",
		"results/site.yaml":          "files: 1",
		"project/site/index.html":    "<html></html>",
		"project/site/css/style.css": "body {}",
	} {
		if got, ok := files[name]; !ok || got != want {
			t.Errorf("%s = %q (present %v), want %q", name, got, ok, want)
		}
	}

	manifest := files["MANIFEST"]
	if !strings.Contains(manifest, "results/site.yaml") || !strings.Contains(manifest, "project/site-") {
		t.Errorf("unexpected MANIFEST:\n%s", manifest)
	}
}

func TestReportClose_RemovesCopies(t *testing.T) {
	r, err := (&ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if err := r.StoreCopy("project", fstest.MapFS{"a.html": {Data: []byte("a")}}); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if len(r.temps) != 1 {
		t.Fatalf("temps = %v, want single directory", r.temps)
	}
	dir := r.temps[0]

	// stored regular files are not ours to remove
	kept := filepath.Join(t.TempDir(), "kept.txt")
	if err := os.WriteFile(kept, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("kept", kept)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		os.RemoveAll(dir)
		t.Errorf("expected %s to be removed", dir)
	}
	if _, err := os.Stat(kept); err != nil {
		t.Errorf("stored file should not be removed, got error: %v", err)
	}
}

func TestReport_StoreDataTwicePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("x", []byte("1"))

	defer func() {
		if recover() == nil {
			t.Error("StoreData() with duplicate name should panic")
		}
	}()
	r.StoreData("x", []byte("2"))
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	// storing into nil report is a no-op
	r.StoreData("x", nil)
	if err := r.StoreCopy("y", fstest.MapFS{}); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
