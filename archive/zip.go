// Package archive exposes zipped projects as fs.FS on top of "archive/zip".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
)

// ErrEmptyPrefix is returned when nothing in the archive is located under
// requested path.
var ErrEmptyPrefix = errors.New("no files under requested path in archive")

// walkFunc is called for each regular file in archive visited by walk. If an
// error is returned, processing stops.
type walkFunc func(file *zip.File) error

// walk visits all regular files in the archive with names starting with
// prefix. Entries with path traversal components ("..") or absolute paths
// fail the whole walk to prevent Zip Slip attacks.
func walk(r *zip.Reader, prefix string, walkFn walkFunc) error {
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

// IsArchive checks file signature and reports whether file is a zip archive.
func IsArchive(fname string) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// 262 bytes is enough for any signature filetype knows about
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// FS is a read-only view of a directory inside zip archive.
type FS struct {
	fs.FS

	rc      *zip.ReadCloser
	Archive string // path to the archive
	Prefix  string // directory inside archive, empty for archive root
	Files   int    // number of regular files under Prefix
}

// Open opens archive and returns file system rooted at prefix inside it.
// Archive is validated first, any unsafe entry name makes it unusable.
func Open(archive, prefix string) (*FS, error) {
	rc, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("unable to open archive: %w", err)
	}

	prefix = strings.Trim(path.Clean("/"+strings.ReplaceAll(prefix, `\`, "/")), "/")

	res := &FS{rc: rc, Archive: archive, Prefix: prefix}

	walkPrefix := prefix
	if walkPrefix != "" {
		walkPrefix += "/"
	}
	if err := walk(&rc.Reader, walkPrefix, func(*zip.File) error {
		res.Files++
		return nil
	}); err != nil {
		rc.Close()
		return nil, err
	}
	if res.Files == 0 {
		rc.Close()
		return nil, fmt.Errorf("%w: %s", ErrEmptyPrefix, prefix)
	}

	res.FS = rc
	if prefix != "" {
		if res.FS, err = fs.Sub(rc, prefix); err != nil {
			rc.Close()
			return nil, fmt.Errorf("unable to access %s in archive: %w", prefix, err)
		}
	}
	return res, nil
}

// Close releases the archive.
func (a *FS) Close() error {
	return a.rc.Close()
}
