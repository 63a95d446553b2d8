package gdrive

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects Prometheus counters for the adapter: remote round-trips by
// operation, remote failures, and resolution cache hits and misses. Attach it
// with WithMetrics.
type Metrics struct {
	remoteCalls  *prometheus.CounterVec
	remoteErrors *prometheus.CounterVec
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
}

// NewMetrics creates the adapter's metric set and registers it with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdrive",
			Name:      "remote_calls_total",
			Help:      "Remote store round-trips by operation.",
		}, []string{"operation"}),
		remoteErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdrive",
			Name:      "remote_errors_total",
			Help:      "Failed remote store round-trips by operation.",
		}, []string{"operation"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gdrive",
			Name:      "resolution_cache_hits_total",
			Help:      "Path resolutions answered from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gdrive",
			Name:      "resolution_cache_misses_total",
			Help:      "Path resolutions that required remote lookups.",
		}),
	}
	reg.MustRegister(m.remoteCalls, m.remoteErrors, m.cacheHits, m.cacheMisses)
	return m
}

func (m *Metrics) countRemote(op string, err error) {
	m.remoteCalls.WithLabelValues(op).Inc()
	if err != nil {
		m.remoteErrors.WithLabelValues(op).Inc()
	}
}

// instrumentedStore wraps a Store, counting every round-trip.
type instrumentedStore struct {
	store   Store
	metrics *Metrics
}

var _ Store = (*instrumentedStore)(nil)

func (s *instrumentedStore) CreateFolder(ctx context.Context, parentID, name string) (*Object, error) {
	obj, err := s.store.CreateFolder(ctx, parentID, name)
	s.metrics.countRemote("create_folder", err)
	return obj, err
}

func (s *instrumentedStore) CreateFile(ctx context.Context, parentID, name string, content io.Reader) (*Object, error) {
	obj, err := s.store.CreateFile(ctx, parentID, name, content)
	s.metrics.countRemote("create_file", err)
	return obj, err
}

func (s *instrumentedStore) OpenObject(ctx context.Context, id string) (io.ReadCloser, error) {
	rc, err := s.store.OpenObject(ctx, id)
	s.metrics.countRemote("open_object", err)
	return rc, err
}

func (s *instrumentedStore) DeleteObject(ctx context.Context, id string) error {
	err := s.store.DeleteObject(ctx, id)
	s.metrics.countRemote("delete_object", err)
	return err
}

func (s *instrumentedStore) UpdateObject(ctx context.Context, id string, patch ObjectPatch) (*Object, error) {
	obj, err := s.store.UpdateObject(ctx, id, patch)
	s.metrics.countRemote("update_object", err)
	return obj, err
}

func (s *instrumentedStore) CopyObject(ctx context.Context, id, parentID, newName string) (*Object, error) {
	obj, err := s.store.CopyObject(ctx, id, parentID, newName)
	s.metrics.countRemote("copy_object", err)
	return obj, err
}

func (s *instrumentedStore) ListChildren(ctx context.Context, parentID, pageToken string) ([]*Object, string, error) {
	children, next, err := s.store.ListChildren(ctx, parentID, pageToken)
	s.metrics.countRemote("list_children", err)
	return children, next, err
}

func (s *instrumentedStore) ChildrenByName(ctx context.Context, parentID, name string, foldersOnly bool) ([]*Object, error) {
	children, err := s.store.ChildrenByName(ctx, parentID, name, foldersOnly)
	s.metrics.countRemote("children_by_name", err)
	return children, err
}
