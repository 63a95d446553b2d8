package gdrive

import (
	"context"
	"time"
)

// Attributes describes one entry emitted by a listing: the synthesized full
// path plus the metadata the remote store reports for the object. Size is
// zero for directories. Visibility is the adapter's configured constant.
type Attributes struct {
	Path       string
	IsDir      bool
	Size       int64
	MimeType   string
	ModTime    time.Time
	Visibility string
}

func (a *Adapter) attributes(path string, obj *Object) Attributes {
	attrs := Attributes{
		Path:       path,
		IsDir:      obj.IsFolder(),
		MimeType:   obj.MimeType,
		ModTime:    obj.ModTime,
		Visibility: a.visibility,
	}
	if !attrs.IsDir {
		attrs.Size = obj.Size
	}
	return attrs
}

// ListContents enumerates the directory at path, calling fn for each entry as
// it is produced. With deep on, folders are descended depth-first, each
// folder emitted before its descendants. Entry paths are full paths built
// from the listed directory's path, since the store only reports local names.
//
// The walk is restartable: each call pages through the store from scratch.
// An error from fn or from the store stops the walk; entries already
// delivered stay delivered.
func (a *Adapter) ListContents(ctx context.Context, path string, deep bool, fn func(Attributes) error) error {
	const op = "list contents of"
	path = Normalize(path)
	obj, err := a.mustResolve(ctx, path)
	if err != nil {
		return opError(op, path, err)
	}
	if !obj.IsFolder() {
		return opError(op, path, ErrNotFound)
	}
	if err := a.walkChildren(ctx, obj.ID, path, deep, fn); err != nil {
		return opError(op, path, err)
	}
	return nil
}

// walkChildren pages through the children of parentID, emitting each child
// under parentPath and recursing into folders when deep is on. There is no
// guaranteed page-size bound; the loop runs until the store stops returning
// continuation tokens.
func (a *Adapter) walkChildren(ctx context.Context, parentID, parentPath string, deep bool, fn func(Attributes) error) error {
	pageToken := ""
	for {
		children, next, err := a.store.ListChildren(ctx, parentID, pageToken)
		if err != nil {
			return err
		}
		for _, child := range children {
			childPath := joinPath(parentPath, child.Name)
			if err := fn(a.attributes(childPath, child)); err != nil {
				return err
			}
			if deep && child.IsFolder() {
				if err := a.walkChildren(ctx, child.ID, childPath, true, fn); err != nil {
					return err
				}
			}
		}
		if next == "" {
			return nil
		}
		pageToken = next
	}
}

// Walk walks the tree rooted at path, calling fn for the root entry itself
// and then for every descendant in depth-first order.
func (a *Adapter) Walk(ctx context.Context, path string, fn func(Attributes) error) error {
	path = Normalize(path)
	obj, err := a.mustResolve(ctx, path)
	if err != nil {
		return opError("walk", path, err)
	}
	if err := fn(a.attributes(path, obj)); err != nil {
		return err
	}
	if !obj.IsFolder() {
		return nil
	}
	if err := a.walkChildren(ctx, obj.ID, path, true, fn); err != nil {
		return opError("walk", path, err)
	}
	return nil
}
