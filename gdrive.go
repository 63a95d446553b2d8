// Package gdrive exposes Google Drive as a path-addressed filesystem.
//
// Drive itself has no notion of a path: every object is identified by an
// opaque ID and a list of parent IDs, and duplicate sibling names are legal.
// This package emulates a filesystem tree on top of that graph by walking
// paths segment by segment against the remote store, caching resolutions, and
// treating the graph strictly as a tree (exactly one parent at creation,
// parents replaced rather than added on move, first match wins on duplicate
// names).
package gdrive

import (
	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"
)

// RootAlias is the Drive API alias for the root folder of My Drive.
const RootAlias = "root"

// Visibility values reported by the adapter. Drive access control is managed
// through permissions, not a filesystem-style visibility bit, so the adapter
// reports a fixed configured value and rejects attempts to change it.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Adapter provides filesystem-style operations addressed by slash-separated
// paths over a remote object store. All operations are synchronous blocking
// calls; the adapter holds no cross-call state besides the resolution cache
// and is safe for concurrent use.
type Adapter struct {
	store      Store
	rootID     string
	cache      *resolutionCache
	logger     zerolog.Logger
	metrics    *Metrics
	visibility string

	// ignoreSetVisibility makes SetVisibility a silent no-op instead of
	// failing with ErrUnsupported.
	ignoreSetVisibility bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithRootFolder anchors the emulated tree at the given Drive folder ID
// instead of the My Drive root.
func WithRootFolder(id string) Option {
	return func(a *Adapter) { a.rootID = id }
}

// WithLogger attaches a structured logger. The default discards all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

// WithMetrics attaches a metrics collector counting remote calls and cache
// hits and misses.
func WithMetrics(m *Metrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

// WithVisibility sets the constant visibility value the adapter reports for
// every object. The default is VisibilityPrivate.
func WithVisibility(v string) Option {
	return func(a *Adapter) { a.visibility = v }
}

// WithSilentSetVisibility makes SetVisibility succeed as a no-op instead of
// failing with ErrUnsupported.
func WithSilentSetVisibility() Option {
	return func(a *Adapter) { a.ignoreSetVisibility = true }
}

// New creates an Adapter over the given store.
func New(store Store, opts ...Option) *Adapter {
	a := &Adapter{
		store:      store,
		rootID:     RootAlias,
		cache:      newResolutionCache(),
		logger:     zerolog.Nop(),
		visibility: VisibilityPrivate,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.metrics != nil {
		a.store = &instrumentedStore{store: a.store, metrics: a.metrics}
	}
	return a
}

// NewDrive creates an Adapter over the Drive v3 API using the given service.
// The service should be authenticated before being passed in.
func NewDrive(service *drive.Service, opts ...Option) *Adapter {
	return New(NewDriveStore(service), opts...)
}
