package gdrive_test

import (
	"context"
	"fmt"
	"io"
	"sync"

	gdrive "github.com/UrayMR/googledrive-ext"
)

// recordingStore wraps a Store, recording every call so tests can assert how
// many round-trips an operation issued and in which order objects were
// deleted. failListFor makes ListChildren fail for one specific parent;
// failDeleteOf makes DeleteObject fail for one specific id.
type recordingStore struct {
	inner gdrive.Store

	mu           sync.Mutex
	calls        []string
	deleted      []string
	failListFor  string
	failDeleteOf string
}

var _ gdrive.Store = (*recordingStore)(nil)

func newRecordingStore(inner gdrive.Store) *recordingStore {
	return &recordingStore{inner: inner}
}

func (s *recordingStore) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

// count returns how many calls of the named kind have been recorded.
func (s *recordingStore) count(call string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (s *recordingStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.deleted = nil
}

func (s *recordingStore) CreateFolder(ctx context.Context, parentID, name string) (*gdrive.Object, error) {
	s.record("CreateFolder")
	return s.inner.CreateFolder(ctx, parentID, name)
}

func (s *recordingStore) CreateFile(ctx context.Context, parentID, name string, content io.Reader) (*gdrive.Object, error) {
	s.record("CreateFile")
	return s.inner.CreateFile(ctx, parentID, name, content)
}

func (s *recordingStore) OpenObject(ctx context.Context, id string) (io.ReadCloser, error) {
	s.record("OpenObject")
	return s.inner.OpenObject(ctx, id)
}

func (s *recordingStore) DeleteObject(ctx context.Context, id string) error {
	s.record("DeleteObject")
	if s.failDeleteOf != "" && s.failDeleteOf == id {
		return fmt.Errorf("injected delete failure for '%s'", id)
	}
	err := s.inner.DeleteObject(ctx, id)
	if err == nil {
		s.mu.Lock()
		s.deleted = append(s.deleted, id)
		s.mu.Unlock()
	}
	return err
}

func (s *recordingStore) UpdateObject(ctx context.Context, id string, patch gdrive.ObjectPatch) (*gdrive.Object, error) {
	s.record("UpdateObject")
	return s.inner.UpdateObject(ctx, id, patch)
}

func (s *recordingStore) CopyObject(ctx context.Context, id, parentID, newName string) (*gdrive.Object, error) {
	s.record("CopyObject")
	return s.inner.CopyObject(ctx, id, parentID, newName)
}

func (s *recordingStore) ListChildren(ctx context.Context, parentID, pageToken string) ([]*gdrive.Object, string, error) {
	s.record("ListChildren")
	if s.failListFor != "" && s.failListFor == parentID {
		return nil, "", fmt.Errorf("injected listing failure for '%s'", parentID)
	}
	return s.inner.ListChildren(ctx, parentID, pageToken)
}

func (s *recordingStore) ChildrenByName(ctx context.Context, parentID, name string, foldersOnly bool) ([]*gdrive.Object, error) {
	s.record("ChildrenByName")
	return s.inner.ChildrenByName(ctx, parentID, name, foldersOnly)
}
