package gdrive

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sync"
	"time"
)

// fsFileInfo implements fs.FileInfo over listing attributes.
type fsFileInfo struct {
	attrs Attributes
}

var _ fs.FileInfo = (*fsFileInfo)(nil)

func (fi *fsFileInfo) Name() string {
	if fi.attrs.Path == "" {
		return "."
	}
	return path.Base(fi.attrs.Path)
}

func (fi *fsFileInfo) Size() int64 {
	return fi.attrs.Size
}

func (fi *fsFileInfo) Mode() fs.FileMode {
	if fi.attrs.IsDir {
		return fs.ModeDir | 0444
	}
	return 0444
}

func (fi *fsFileInfo) ModTime() time.Time {
	return fi.attrs.ModTime
}

func (fi *fsFileInfo) IsDir() bool {
	return fi.attrs.IsDir
}

func (fi *fsFileInfo) Sys() any {
	return nil
}

// fsFile implements fs.File over a fully fetched file body.
type fsFile struct {
	attrs   Attributes
	content *bytes.Reader
}

var _ fs.File = (*fsFile)(nil)

func (f *fsFile) Stat() (fs.FileInfo, error) {
	return &fsFileInfo{attrs: f.attrs}, nil
}

func (f *fsFile) Read(b []byte) (int, error) {
	return f.content.Read(b)
}

func (f *fsFile) Close() error {
	return nil
}

// fsDirEntry implements fs.DirEntry for one listed child.
type fsDirEntry struct {
	attrs Attributes
}

var _ fs.DirEntry = (*fsDirEntry)(nil)

func (e *fsDirEntry) Name() string {
	return path.Base(e.attrs.Path)
}

func (e *fsDirEntry) IsDir() bool {
	return e.attrs.IsDir
}

func (e *fsDirEntry) Type() fs.FileMode {
	if e.attrs.IsDir {
		return fs.ModeDir
	}
	return 0
}

func (e *fsDirEntry) Info() (fs.FileInfo, error) {
	return &fsFileInfo{attrs: e.attrs}, nil
}

// fsDir implements fs.ReadDirFile over pre-listed entries. ReadDir is
// protected by a mutex for concurrent use.
type fsDir struct {
	attrs   Attributes
	entries []fs.DirEntry
	offset  int
	mu      sync.Mutex
}

var _ fs.ReadDirFile = (*fsDir)(nil)

func (d *fsDir) Stat() (fs.FileInfo, error) {
	return &fsFileInfo{attrs: d.attrs}, nil
}

func (d *fsDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.attrs.Path, Err: fs.ErrInvalid}
}

func (d *fsDir) Close() error {
	return nil
}

func (d *fsDir) ReadDir(n int) ([]fs.DirEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n <= 0 {
		entries := d.entries[d.offset:]
		d.offset = len(d.entries)
		return entries, nil
	}

	if d.offset >= len(d.entries) {
		return nil, io.EOF
	}

	end := d.offset + n
	if end > len(d.entries) {
		end = len(d.entries)
	}

	entries := d.entries[d.offset:end]
	d.offset = end

	if d.offset >= len(d.entries) {
		return entries, io.EOF
	}
	return entries, nil
}
