package gdrive

import (
	"context"
	"io"
	"time"
)

const (
	// MimeTypeFolder is the sentinel MIME type Google Drive assigns to folders.
	MimeTypeFolder = "application/vnd.google-apps.folder"

	mimeTypePrefixGoogleApp = "application/vnd.google-apps."
)

// Object is a snapshot of one node in the remote object graph. Drive
// identifies objects by opaque IDs, not paths; Parents lists the IDs of the
// folders referencing this object as a child. Mutating a returned Object has
// no effect on remote state.
type Object struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
	ModTime  time.Time
	Parents  []string
}

// IsFolder reports whether the object is a Drive folder.
func (o *Object) IsFolder() bool {
	return o.MimeType == MimeTypeFolder
}

// IsAppFile reports whether the object is a Google Workspace document, which
// has no raw byte content and cannot be downloaded directly.
func (o *Object) IsAppFile() bool {
	return len(o.MimeType) >= len(mimeTypePrefixGoogleApp) &&
		o.MimeType[:len(mimeTypePrefixGoogleApp)] == mimeTypePrefixGoogleApp
}

// ObjectPatch describes a metadata update applied by Store.UpdateObject.
// A nil Name leaves the name unchanged. AddParents and RemoveParents are
// applied in the same remote call, so a rename plus parent swap is atomic.
type ObjectPatch struct {
	Name          *string
	AddParents    []string
	RemoveParents []string
}

// Store is the remote object store the adapter runs against. The production
// implementation talks to the Drive v3 API; tests use the deterministic
// in-memory implementation in the memstore package.
//
// Listings and name lookups must exclude trashed objects. ChildrenByName
// performs an exact-name match and may return multiple objects, because the
// store permits duplicate sibling names.
type Store interface {
	// CreateFolder creates a folder named name under parentID.
	CreateFolder(ctx context.Context, parentID, name string) (*Object, error)

	// CreateFile creates a file named name under parentID with the given
	// content. Content may be nil for an empty file.
	CreateFile(ctx context.Context, parentID, name string, content io.Reader) (*Object, error)

	// OpenObject returns a reader over the object's raw bytes. Fails with
	// ErrNotFound if the id does not exist.
	OpenObject(ctx context.Context, id string) (io.ReadCloser, error)

	// DeleteObject permanently deletes the object. Fails with ErrNotFound if
	// the id does not exist.
	DeleteObject(ctx context.Context, id string) error

	// UpdateObject applies the patch and returns the updated object.
	UpdateObject(ctx context.Context, id string, patch ObjectPatch) (*Object, error)

	// CopyObject copies the object into parentID under newName and returns
	// the copy. Folders cannot be copied by the Drive API.
	CopyObject(ctx context.Context, id, parentID, newName string) (*Object, error)

	// ListChildren returns one page of the non-trashed children of parentID
	// together with the token for the next page, or "" when exhausted.
	ListChildren(ctx context.Context, parentID, pageToken string) ([]*Object, string, error)

	// ChildrenByName returns the non-trashed children of parentID whose name
	// equals name exactly, optionally restricted to folders, in store order.
	ChildrenByName(ctx context.Context, parentID, name string, foldersOnly bool) ([]*Object, error)
}
