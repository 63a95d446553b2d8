package gdrive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"slices"
	"strings"
)

// The adapter doubles as a read-only io/fs filesystem, so the emulated tree
// can be handed to anything that consumes fs.FS (fs.WalkDir, templates,
// testing/fstest and friends).
var (
	_ fs.FS        = (*Adapter)(nil)
	_ fs.StatFS    = (*Adapter)(nil)
	_ fs.ReadDirFS = (*Adapter)(nil)
)

// fsPath maps an io/fs name onto an adapter path. Valid io/fs names are
// already slash-separated and free of "." and ".." segments, and characters
// like backslashes are literal parts of a name, so the name must not be
// normalized; only the "." root alias needs translating.
func fsPath(name string) string {
	if name == "." {
		return ""
	}
	return name
}

// Open opens the named file or directory. Directories are listed eagerly,
// file bodies fetched eagerly; io/fs carries no context, so calls run with
// context.Background.
func (a *Adapter) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	ctx := context.Background()
	path := fsPath(name)
	obj, found, err := a.resolve(ctx, path, false)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if !found {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	if obj.IsFolder() {
		entries, err := a.readDirEntries(ctx, obj, path)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &fsDir{attrs: a.attributes(path, obj), entries: entries}, nil
	}
	if obj.IsAppFile() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrNotReadable}
	}

	rc, err := a.store.OpenObject(ctx, obj.ID)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return &fsFile{attrs: a.attributes(path, obj), content: bytes.NewReader(data)}, nil
}

// Stat returns the file info for the named file or directory.
func (a *Adapter) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	path := fsPath(name)
	obj, found, err := a.resolve(context.Background(), path, false)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	if !found {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &fsFileInfo{attrs: a.attributes(path, obj)}, nil
}

// ReadDir reads the named directory and returns its entries.
func (a *Adapter) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	ctx := context.Background()
	path := fsPath(name)
	obj, found, err := a.resolve(ctx, path, false)
	if err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	if !found {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !obj.IsFolder() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}
	return a.readDirEntries(ctx, obj, path)
}

func (a *Adapter) readDirEntries(ctx context.Context, dir *Object, path string) ([]fs.DirEntry, error) {
	var entries []fs.DirEntry
	err := a.walkChildren(ctx, dir.ID, path, false, func(attrs Attributes) error {
		entries = append(entries, &fsDirEntry{attrs: attrs})
		return nil
	})
	if err != nil {
		return nil, err
	}
	// fs.ReadDirFS promises entries sorted by name.
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}
