// Package memstore provides a deterministic in-memory implementation of the
// gdrive.Store contract, used in tests and local development. Children keep
// insertion order, duplicate sibling names are permitted as on the real
// store, and failures can be injected per operation.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	gdrive "github.com/UrayMR/googledrive-ext"
)

// RootID is the ID of the store's root folder.
const RootID = "root"

const defaultPageSize = 100

type node struct {
	obj     gdrive.Object
	content []byte
	trashed bool
}

// Store is an in-memory gdrive.Store.
type Store struct {
	mu       sync.Mutex
	nodes    map[string]*node
	children map[string][]string
	failures map[string]error
	pageSize int
}

var _ gdrive.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithPageSize bounds ListChildren pages, so tests can exercise the
// continuation-token loop.
func WithPageSize(n int) Option {
	return func(s *Store) { s.pageSize = n }
}

// New creates an empty Store whose root folder has ID RootID.
func New(opts ...Option) *Store {
	s := &Store{
		nodes:    map[string]*node{},
		children: map[string][]string{},
		failures: map[string]error{},
		pageSize: defaultPageSize,
	}
	s.nodes[RootID] = &node{obj: gdrive.Object{
		ID:       RootID,
		MimeType: gdrive.MimeTypeFolder,
		ModTime:  time.Now().UTC(),
	}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailWith makes every subsequent call of the named operation return err.
// Operation names match the Store method names. A nil err clears the
// injection.
func (s *Store) FailWith(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Trash marks an object trashed, hiding it from listings and name lookups
// without removing it.
func (s *Store) Trash(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.nodes[id]; ok {
		n.trashed = true
	}
}

// Len returns the number of live (non-trashed) objects, the root included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.nodes {
		if !n.trashed {
			count++
		}
	}
	return count
}

func (s *Store) create(parentID, name, mimeType string, content []byte) (*gdrive.Object, error) {
	parent, ok := s.nodes[parentID]
	if !ok || !parent.obj.IsFolder() {
		return nil, fmt.Errorf("parent '%s': %w", parentID, gdrive.ErrNotFound)
	}
	n := &node{
		obj: gdrive.Object{
			ID:       uuid.NewString(),
			Name:     name,
			MimeType: mimeType,
			Size:     int64(len(content)),
			ModTime:  time.Now().UTC(),
			Parents:  []string{parentID},
		},
		content: content,
	}
	s.nodes[n.obj.ID] = n
	s.children[parentID] = append(s.children[parentID], n.obj.ID)
	obj := n.obj
	return &obj, nil
}

func (s *Store) CreateFolder(ctx context.Context, parentID, name string) (*gdrive.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["CreateFolder"]; err != nil {
		return nil, err
	}
	return s.create(parentID, name, gdrive.MimeTypeFolder, nil)
}

func (s *Store) CreateFile(ctx context.Context, parentID, name string, content io.Reader) (*gdrive.Object, error) {
	var data []byte
	if content != nil {
		var err error
		data, err = io.ReadAll(content)
		if err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["CreateFile"]; err != nil {
		return nil, err
	}
	return s.create(parentID, name, "application/octet-stream", data)
}

func (s *Store) OpenObject(ctx context.Context, id string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["OpenObject"]; err != nil {
		return nil, err
	}
	n, ok := s.nodes[id]
	if !ok || n.trashed {
		return nil, fmt.Errorf("object '%s': %w", id, gdrive.ErrNotFound)
	}
	if n.obj.IsFolder() {
		return nil, fmt.Errorf("object '%s' is a folder: %w", id, gdrive.ErrNotReadable)
	}
	return io.NopCloser(bytes.NewReader(n.content)), nil
}

func (s *Store) DeleteObject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["DeleteObject"]; err != nil {
		return err
	}
	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("object '%s': %w", id, gdrive.ErrNotFound)
	}
	for _, parentID := range n.obj.Parents {
		s.children[parentID] = remove(s.children[parentID], id)
	}
	delete(s.nodes, id)
	delete(s.children, id)
	return nil
}

func (s *Store) UpdateObject(ctx context.Context, id string, patch gdrive.ObjectPatch) (*gdrive.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["UpdateObject"]; err != nil {
		return nil, err
	}
	n, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("object '%s': %w", id, gdrive.ErrNotFound)
	}
	if patch.Name != nil {
		n.obj.Name = *patch.Name
	}
	for _, parentID := range patch.RemoveParents {
		s.children[parentID] = remove(s.children[parentID], id)
		n.obj.Parents = remove(n.obj.Parents, parentID)
	}
	for _, parentID := range patch.AddParents {
		if _, ok := s.nodes[parentID]; !ok {
			return nil, fmt.Errorf("parent '%s': %w", parentID, gdrive.ErrNotFound)
		}
		s.children[parentID] = append(s.children[parentID], id)
		n.obj.Parents = append(n.obj.Parents, parentID)
	}
	n.obj.ModTime = time.Now().UTC()
	obj := n.obj
	return &obj, nil
}

func (s *Store) CopyObject(ctx context.Context, id, parentID, newName string) (*gdrive.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["CopyObject"]; err != nil {
		return nil, err
	}
	n, ok := s.nodes[id]
	if !ok || n.trashed {
		return nil, fmt.Errorf("object '%s': %w", id, gdrive.ErrNotFound)
	}
	if n.obj.IsFolder() {
		return nil, fmt.Errorf("object '%s' is a folder: %w", id, gdrive.ErrUnsupported)
	}
	return s.create(parentID, newName, n.obj.MimeType, bytes.Clone(n.content))
}

func (s *Store) ListChildren(ctx context.Context, parentID, pageToken string) ([]*gdrive.Object, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["ListChildren"]; err != nil {
		return nil, "", err
	}
	if _, ok := s.nodes[parentID]; !ok {
		return nil, "", fmt.Errorf("parent '%s': %w", parentID, gdrive.ErrNotFound)
	}

	var live []*node
	for _, id := range s.children[parentID] {
		if n := s.nodes[id]; n != nil && !n.trashed {
			live = append(live, n)
		}
	}

	offset := 0
	if pageToken != "" {
		var err error
		offset, err = strconv.Atoi(pageToken)
		if err != nil || offset < 0 {
			return nil, "", fmt.Errorf("bad page token '%s': %w", pageToken, gdrive.ErrInvalidInput)
		}
	}
	if offset > len(live) {
		offset = len(live)
	}
	end := offset + s.pageSize
	next := ""
	if end < len(live) {
		next = strconv.Itoa(end)
	} else {
		end = len(live)
	}

	page := make([]*gdrive.Object, 0, end-offset)
	for _, n := range live[offset:end] {
		obj := n.obj
		page = append(page, &obj)
	}
	return page, next, nil
}

func (s *Store) ChildrenByName(ctx context.Context, parentID, name string, foldersOnly bool) ([]*gdrive.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures["ChildrenByName"]; err != nil {
		return nil, err
	}
	if _, ok := s.nodes[parentID]; !ok {
		return nil, fmt.Errorf("parent '%s': %w", parentID, gdrive.ErrNotFound)
	}
	var matches []*gdrive.Object
	for _, id := range s.children[parentID] {
		n := s.nodes[id]
		if n == nil || n.trashed || n.obj.Name != name {
			continue
		}
		if foldersOnly && !n.obj.IsFolder() {
			continue
		}
		obj := n.obj
		matches = append(matches, &obj)
	}
	return matches, nil
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
