package gdrive

import (
	"bytes"
	"context"
	"io"
	"time"
)

// Write stores data as a new file at path, creating missing parent folders.
// An existing object at the same path is neither checked for nor overwritten;
// repeated writes to the same path create duplicate siblings on the remote
// side, and the adapter keeps addressing the most recently written one.
func (a *Adapter) Write(ctx context.Context, path string, data []byte) error {
	return a.WriteStream(ctx, path, bytes.NewReader(data))
}

// WriteStream stores the content read from r as a new file at path, creating
// missing parent folders.
func (a *Adapter) WriteStream(ctx context.Context, path string, r io.Reader) error {
	const op = "write"
	path = Normalize(path)
	if r == nil {
		return opError(op, path, ErrInvalidInput)
	}
	parent, err := a.resolveParent(ctx, path, true)
	if err != nil {
		return opError(op, path, err)
	}
	_, leaf := splitDir(path)
	obj, err := a.store.CreateFile(ctx, parent.ID, leaf, r)
	if err != nil {
		return opError(op, path, err)
	}
	a.cache.invalidate(path)
	a.cache.put(path, obj)
	a.logger.Debug().Str("path", path).Str("id", obj.ID).Msg("wrote file")
	return nil
}

// Read returns the content of the file at path.
func (a *Adapter) Read(ctx context.Context, path string) ([]byte, error) {
	rc, err := a.ReadStream(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, opError("read", Normalize(path), newIOError("failed to read file body", err))
	}
	return data, nil
}

// ReadStream returns a reader over the content of the file at path. The
// caller must close it.
func (a *Adapter) ReadStream(ctx context.Context, path string) (io.ReadCloser, error) {
	const op = "read"
	path = Normalize(path)
	obj, err := a.mustResolve(ctx, path)
	if err != nil {
		return nil, opError(op, path, err)
	}
	if obj.IsFolder() || obj.IsAppFile() {
		return nil, opError(op, path, ErrNotReadable)
	}
	rc, err := a.store.OpenObject(ctx, obj.ID)
	if err != nil {
		return nil, opError(op, path, err)
	}
	return rc, nil
}

// Delete removes the file at path.
func (a *Adapter) Delete(ctx context.Context, path string) error {
	const op = "delete"
	path = Normalize(path)
	obj, err := a.mustResolve(ctx, path)
	if err != nil {
		return opError(op, path, err)
	}
	if err := a.store.DeleteObject(ctx, obj.ID); err != nil {
		return opError(op, path, err)
	}
	a.cache.invalidate(path)
	a.logger.Debug().Str("path", path).Str("id", obj.ID).Msg("deleted file")
	return nil
}

// CreateDirectory creates a folder at path, creating missing parent folders.
// An existing folder at the path is reused rather than duplicated.
func (a *Adapter) CreateDirectory(ctx context.Context, path string) error {
	const op = "create directory"
	path = Normalize(path)
	if path == "" {
		return nil
	}
	parent, err := a.resolveParent(ctx, path, true)
	if err != nil {
		return opError(op, path, err)
	}
	_, leaf := splitDir(path)
	existing, err := a.store.ChildrenByName(ctx, parent.ID, leaf, true)
	if err != nil {
		return opError(op, path, err)
	}
	var dir *Object
	if len(existing) > 0 {
		dir = existing[0]
	} else {
		dir, err = a.store.CreateFolder(ctx, parent.ID, leaf)
		if err != nil {
			return opError(op, path, err)
		}
		a.logger.Debug().Str("path", path).Str("id", dir.ID).Msg("created directory")
	}
	a.cache.put(path, dir)
	return nil
}

// DeleteDirectory removes the folder at path together with everything below
// it. Descendants are deleted bottom-up, children before their parent; a
// failure partway through leaves already-deleted descendants deleted.
// Deleting the root empties it but keeps the root folder itself.
func (a *Adapter) DeleteDirectory(ctx context.Context, path string) error {
	const op = "delete directory"
	path = Normalize(path)
	obj, err := a.mustResolve(ctx, path)
	if err != nil {
		return opError(op, path, err)
	}
	if !obj.IsFolder() {
		return opError(op, path, ErrNotFound)
	}
	// Descendants may already be gone remotely when the deletion fails
	// partway, so the subtree is dropped from the cache on every outcome.
	defer a.cache.invalidate(path)
	if err := a.deleteChildren(ctx, obj.ID); err != nil {
		return opError(op, path, err)
	}
	if path != "" {
		if err := a.store.DeleteObject(ctx, obj.ID); err != nil {
			return opError(op, path, err)
		}
	}
	a.logger.Debug().Str("path", path).Str("id", obj.ID).Msg("deleted directory")
	return nil
}

// deleteChildren removes every descendant of parentID depth-first. The child
// list is collected before deleting so the paging cursor never observes its
// own deletions.
func (a *Adapter) deleteChildren(ctx context.Context, parentID string) error {
	var children []*Object
	pageToken := ""
	for {
		page, next, err := a.store.ListChildren(ctx, parentID, pageToken)
		if err != nil {
			return err
		}
		children = append(children, page...)
		if next == "" {
			break
		}
		pageToken = next
	}
	for _, child := range children {
		if child.IsFolder() {
			if err := a.deleteChildren(ctx, child.ID); err != nil {
				return err
			}
		}
		if err := a.store.DeleteObject(ctx, child.ID); err != nil {
			return err
		}
	}
	return nil
}

// Copy duplicates the file at src to dst, creating missing parent folders of
// dst. The copy is a new object with a new identity; folders cannot be
// copied.
func (a *Adapter) Copy(ctx context.Context, src, dst string) error {
	const op = "copy"
	src, dst = Normalize(src), Normalize(dst)
	obj, err := a.mustResolve(ctx, src)
	if err != nil {
		return opError2(op, src, dst, err)
	}
	if obj.IsFolder() {
		return opError2(op, src, dst, ErrUnsupported)
	}
	parent, err := a.resolveParent(ctx, dst, true)
	if err != nil {
		return opError2(op, src, dst, err)
	}
	_, leaf := splitDir(dst)
	copied, err := a.store.CopyObject(ctx, obj.ID, parent.ID, leaf)
	if err != nil {
		return opError2(op, src, dst, err)
	}
	a.cache.invalidate(dst)
	a.cache.put(dst, copied)
	a.logger.Debug().Str("src", src).Str("dst", dst).Str("id", copied.ID).Msg("copied file")
	return nil
}

// Move renames the object at src to dst, creating missing parent folders of
// dst. The rename and the parent swap happen in a single remote update, so
// the object keeps its identity; move is never implemented as copy plus
// delete.
func (a *Adapter) Move(ctx context.Context, src, dst string) error {
	const op = "move"
	src, dst = Normalize(src), Normalize(dst)
	obj, err := a.mustResolve(ctx, src)
	if err != nil {
		return opError2(op, src, dst, err)
	}
	parent, err := a.resolveParent(ctx, dst, true)
	if err != nil {
		return opError2(op, src, dst, err)
	}
	_, leaf := splitDir(dst)
	updated, err := a.store.UpdateObject(ctx, obj.ID, ObjectPatch{
		Name:          &leaf,
		AddParents:    []string{parent.ID},
		RemoveParents: obj.Parents,
	})
	if err != nil {
		return opError2(op, src, dst, err)
	}
	a.cache.invalidate(src)
	a.cache.invalidate(dst)
	a.cache.put(dst, updated)
	a.logger.Debug().Str("src", src).Str("dst", dst).Str("id", updated.ID).Msg("moved object")
	return nil
}

// Exists reports whether any object resolves at path.
func (a *Adapter) Exists(ctx context.Context, path string) (bool, error) {
	path = Normalize(path)
	_, found, err := a.resolve(ctx, path, false)
	if err != nil {
		return false, opError("check existence of", path, err)
	}
	return found, nil
}

// FileExists reports whether a file resolves at path.
func (a *Adapter) FileExists(ctx context.Context, path string) (bool, error) {
	path = Normalize(path)
	obj, found, err := a.resolve(ctx, path, false)
	if err != nil {
		return false, opError("check existence of", path, err)
	}
	return found && !obj.IsFolder(), nil
}

// DirectoryExists reports whether a folder resolves at path.
func (a *Adapter) DirectoryExists(ctx context.Context, path string) (bool, error) {
	path = Normalize(path)
	obj, found, err := a.resolve(ctx, path, false)
	if err != nil {
		return false, opError("check existence of", path, err)
	}
	return found && obj.IsFolder(), nil
}

// MimeType returns the MIME type of the object at path.
func (a *Adapter) MimeType(ctx context.Context, path string) (string, error) {
	obj, err := a.mustResolve(ctx, Normalize(path))
	if err != nil {
		return "", opError("get mime type of", Normalize(path), err)
	}
	return obj.MimeType, nil
}

// LastModified returns the remote modification time of the object at path.
func (a *Adapter) LastModified(ctx context.Context, path string) (time.Time, error) {
	obj, err := a.mustResolve(ctx, Normalize(path))
	if err != nil {
		return time.Time{}, opError("get last modified of", Normalize(path), err)
	}
	return obj.ModTime, nil
}

// FileSize returns the byte size of the file at path.
func (a *Adapter) FileSize(ctx context.Context, path string) (int64, error) {
	obj, err := a.mustResolve(ctx, Normalize(path))
	if err != nil {
		return 0, opError("get size of", Normalize(path), err)
	}
	return obj.Size, nil
}

// Visibility returns the adapter's constant visibility for the object at
// path. The path must still resolve.
func (a *Adapter) Visibility(ctx context.Context, path string) (string, error) {
	if _, err := a.mustResolve(ctx, Normalize(path)); err != nil {
		return "", opError("get visibility of", Normalize(path), err)
	}
	return a.visibility, nil
}

// SetVisibility is not supported: Drive access control is managed through
// permissions, not a visibility bit. It fails with ErrUnsupported unless the
// adapter was configured with WithSilentSetVisibility, in which case it is a
// no-op.
func (a *Adapter) SetVisibility(ctx context.Context, path, visibility string) error {
	if a.ignoreSetVisibility {
		return nil
	}
	return opError("set visibility of", Normalize(path), ErrUnsupported)
}
