// Package gdrivemust wraps the gdrive package with panic-based error handling.
//
// It provides the same path-addressed operations as the root-level gdrive
// package, but instead of returning errors, all exported methods panic on
// failure. It is intended for scripts and tooling where failures abort the
// run anyway.
package gdrivemust

import (
	"context"
	"io"
	"time"

	gdrive "github.com/UrayMR/googledrive-ext"
	"google.golang.org/api/drive/v3"
)

// Adapter provides path-addressed filesystem operations over Google Drive.
//
// All methods of Adapter panic on error instead of returning an error value.
type Adapter struct {
	adapter *gdrive.Adapter
}

// New creates an Adapter over the given store.
func New(store gdrive.Store, opts ...gdrive.Option) *Adapter {
	return &Adapter{adapter: gdrive.New(store, opts...)}
}

// NewDrive creates an Adapter over the Drive v3 API using the given service.
// The service should be authenticated before being passed in.
func NewDrive(service *drive.Service, opts ...gdrive.Option) *Adapter {
	return &Adapter{adapter: gdrive.NewDrive(service, opts...)}
}

// Write stores data as a new file at path, creating missing parent folders.
// It panics if the write fails.
func (a *Adapter) Write(ctx context.Context, path string, data []byte) {
	must0(a.adapter.Write(ctx, path, data))
}

// WriteStream stores the content read from r as a new file at path.
// It panics if the write fails.
func (a *Adapter) WriteStream(ctx context.Context, path string, r io.Reader) {
	must0(a.adapter.WriteStream(ctx, path, r))
}

// Read returns the content of the file at path.
// It panics if the path does not resolve or the download fails.
func (a *Adapter) Read(ctx context.Context, path string) []byte {
	return must1(a.adapter.Read(ctx, path))
}

// ReadStream returns a reader over the content of the file at path.
// It panics if the path does not resolve or the download fails.
func (a *Adapter) ReadStream(ctx context.Context, path string) io.ReadCloser {
	return must1(a.adapter.ReadStream(ctx, path))
}

// Delete removes the file at path. It panics if the path does not resolve or
// the delete fails.
func (a *Adapter) Delete(ctx context.Context, path string) {
	must0(a.adapter.Delete(ctx, path))
}

// CreateDirectory creates a folder at path, creating missing parents.
// It panics if creation fails.
func (a *Adapter) CreateDirectory(ctx context.Context, path string) {
	must0(a.adapter.CreateDirectory(ctx, path))
}

// DeleteDirectory removes the folder at path and everything below it.
// It panics if the deletion fails partway; descendants deleted before the
// failure stay deleted.
func (a *Adapter) DeleteDirectory(ctx context.Context, path string) {
	must0(a.adapter.DeleteDirectory(ctx, path))
}

// Copy duplicates the file at src to dst. It panics if the copy fails.
func (a *Adapter) Copy(ctx context.Context, src, dst string) {
	must0(a.adapter.Copy(ctx, src, dst))
}

// Move renames the object at src to dst in a single remote update, keeping
// its identity. It panics if the move fails.
func (a *Adapter) Move(ctx context.Context, src, dst string) {
	must0(a.adapter.Move(ctx, src, dst))
}

// ListContents returns the entries of the directory at path, recursively
// when deep is on. It panics if the listing fails.
func (a *Adapter) ListContents(ctx context.Context, path string, deep bool) []gdrive.Attributes {
	var entries []gdrive.Attributes
	must0(a.adapter.ListContents(ctx, path, deep, func(attrs gdrive.Attributes) error {
		entries = append(entries, attrs)
		return nil
	}))
	return entries
}

// Exists reports whether any object resolves at path. It panics on a remote
// failure.
func (a *Adapter) Exists(ctx context.Context, path string) bool {
	return must1(a.adapter.Exists(ctx, path))
}

// FileExists reports whether a file resolves at path. It panics on a remote
// failure.
func (a *Adapter) FileExists(ctx context.Context, path string) bool {
	return must1(a.adapter.FileExists(ctx, path))
}

// DirectoryExists reports whether a folder resolves at path. It panics on a
// remote failure.
func (a *Adapter) DirectoryExists(ctx context.Context, path string) bool {
	return must1(a.adapter.DirectoryExists(ctx, path))
}

// MimeType returns the MIME type of the object at path. It panics if the
// path does not resolve.
func (a *Adapter) MimeType(ctx context.Context, path string) string {
	return must1(a.adapter.MimeType(ctx, path))
}

// LastModified returns the remote modification time of the object at path.
// It panics if the path does not resolve.
func (a *Adapter) LastModified(ctx context.Context, path string) time.Time {
	return must1(a.adapter.LastModified(ctx, path))
}

// FileSize returns the byte size of the file at path. It panics if the path
// does not resolve.
func (a *Adapter) FileSize(ctx context.Context, path string) int64 {
	return must1(a.adapter.FileSize(ctx, path))
}

// Visibility returns the adapter's constant visibility for the object at
// path. It panics if the path does not resolve.
func (a *Adapter) Visibility(ctx context.Context, path string) string {
	return must1(a.adapter.Visibility(ctx, path))
}
