package gdrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const (
	driveFileFields  = "parents,id,name,mimeType,size,modifiedTime"
	driveFilesFields = "nextPageToken,files(parents,id,name,mimeType,size,modifiedTime)"
)

// driveStore implements Store over the Drive v3 API. Every call opts into
// shared drives via SupportsAllDrives and requests only the fields the
// adapter consumes.
type driveStore struct {
	service *drive.Service
}

var _ Store = (*driveStore)(nil)

// NewDriveStore wraps an authenticated drive.Service as a Store.
func NewDriveStore(service *drive.Service) Store {
	return &driveStore{service: service}
}

func (s *driveStore) CreateFolder(ctx context.Context, parentID, name string) (*Object, error) {
	f, err := s.service.Files.Create(&drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
		Parents:  []string{parentID},
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, newDriveError("failed to create folder", err)
	}
	return newObject(f)
}

func (s *driveStore) CreateFile(ctx context.Context, parentID, name string, content io.Reader) (*Object, error) {
	call := s.service.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{parentID},
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx)
	if content != nil {
		call = call.Media(content)
	}
	f, err := call.Do()
	if err != nil {
		return nil, newDriveError("failed to create file", err)
	}
	return newObject(f)
}

func (s *driveStore) OpenObject(ctx context.Context, id string) (io.ReadCloser, error) {
	resp, err := s.service.Files.Get(id).
		SupportsAllDrives(true).
		Context(ctx).
		Download()
	if err != nil {
		return nil, mapDriveError("failed to download file", err)
	}
	return resp.Body, nil
}

func (s *driveStore) DeleteObject(ctx context.Context, id string) error {
	err := s.service.Files.Delete(id).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return mapDriveError("failed to delete file", err)
	}
	return nil
}

func (s *driveStore) UpdateObject(ctx context.Context, id string, patch ObjectPatch) (*Object, error) {
	meta := &drive.File{}
	if patch.Name != nil {
		meta.Name = *patch.Name
	}
	call := s.service.Files.Update(id, meta).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx)
	if len(patch.AddParents) > 0 {
		call = call.AddParents(strings.Join(patch.AddParents, ","))
	}
	if len(patch.RemoveParents) > 0 {
		call = call.RemoveParents(strings.Join(patch.RemoveParents, ","))
	}
	f, err := call.Do()
	if err != nil {
		return nil, mapDriveError("failed to update file", err)
	}
	return newObject(f)
}

func (s *driveStore) CopyObject(ctx context.Context, id, parentID, newName string) (*Object, error) {
	f, err := s.service.Files.Copy(id, &drive.File{
		Name:    newName,
		Parents: []string{parentID},
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapDriveError("failed to copy file", err)
	}
	return newObject(f)
}

func (s *driveStore) ListChildren(ctx context.Context, parentID, pageToken string) ([]*Object, string, error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(parentID))
	call := s.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(q).
		Fields(driveFilesFields).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	list, err := call.Do()
	if err != nil {
		return nil, "", newDriveError("failed to list files", err)
	}
	children := make([]*Object, 0, len(list.Files))
	for _, f := range list.Files {
		obj, err := newObject(f)
		if err != nil {
			return nil, "", err
		}
		children = append(children, obj)
	}
	return children, list.NextPageToken, nil
}

func (s *driveStore) ChildrenByName(ctx context.Context, parentID, name string, foldersOnly bool) ([]*Object, error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false",
		escapeQuery(name), escapeQuery(parentID))
	if foldersOnly {
		q += fmt.Sprintf(" and mimeType = '%s'", MimeTypeFolder)
	}
	var children []*Object
	err := s.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(q).
		Fields(driveFilesFields).
		Pages(ctx, func(list *drive.FileList) error {
			for _, f := range list.Files {
				obj, err := newObject(f)
				if err != nil {
					return err
				}
				children = append(children, obj)
			}
			return nil
		})
	if err != nil {
		return nil, newDriveError("failed to query files", err)
	}
	return children, nil
}

// escapeQuery escapes the characters that are structurally significant to the
// Drive query language so a name can be embedded in a quoted literal.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}

func newObject(f *drive.File) (*Object, error) {
	var modTime time.Time
	if f.ModifiedTime != "" {
		var err error
		modTime, err = time.Parse(time.RFC3339, f.ModifiedTime)
		if err != nil {
			return nil, newDriveError("failed to parse modified time", err)
		}
	}
	return &Object{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
		ModTime:  modTime,
		Parents:  f.Parents,
	}, nil
}

// mapDriveError turns an API 404 into ErrNotFound and wraps everything else
// as a drive error.
func mapDriveError(msg string, err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code == http.StatusNotFound {
		return &wrapError{underlying: ErrNotFound, msg: msg, cause: err}
	}
	return newDriveError(msg, err)
}
