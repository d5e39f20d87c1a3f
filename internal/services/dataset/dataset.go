// Package dataset loads the incident and boundary sources and hands out
// memoized snapshots of the derived model
//
// A Service is created once per process with its default sources. The first
// Snapshot call reads and derives everything; later calls for the same source
// identity return the same handle without touching storage. Concurrent first
// calls collapse into one load
package dataset

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"crimemap/internal/core/crimes"
	"crimemap/internal/core/frame"
	"crimemap/internal/core/geo"
	perr "crimemap/internal/platform/errors"
	"crimemap/internal/platform/logger"
)

// Snapshot is an immutable loaded dataset
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Sources  []string

	Historical *frame.Frame
	Recent     *frame.Frame
	Boundaries *geo.Collection
	Model      *crimes.Model
}

// Provider hands out the current snapshot, consumed by handlers and the report CLI
type Provider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Service memoizes snapshots by source identity
type Service struct {
	schema   crimes.Schema
	defaults Sources
	cache    *ttlcache.Cache[string, *Snapshot]
	group    singleflight.Group
	now      func() time.Time
	log      *logger.Logger
}

// Option configures a Service
type Option func(*Service)

// WithSchema overrides the column schema
func WithSchema(s crimes.Schema) Option { return func(svc *Service) { svc.schema = s } }

// WithClock overrides time.Now for LoadedAt
func WithClock(now func() time.Time) Option { return func(svc *Service) { svc.now = now } }

// New builds a Service whose Snapshot reads the given default sources
func New(defaults Sources, opts ...Option) *Service {
	s := &Service{
		schema:   crimes.DefaultSchema(),
		defaults: defaults,
		cache: ttlcache.New(
			ttlcache.WithTTL[string, *Snapshot](ttlcache.NoTTL),
			ttlcache.WithDisableTouchOnHit[string, *Snapshot](),
		),
		now: time.Now,
		log: logger.Named("dataset"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Snapshot returns the snapshot of the default sources
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	return s.Load(ctx, s.defaults)
}

// Load returns the snapshot of srcs, reading them on first use
func (s *Service) Load(ctx context.Context, srcs Sources) (*Snapshot, error) {
	if err := srcs.validate(); err != nil {
		return nil, err
	}
	key := srcs.Key()
	if it := s.cache.Get(key); it != nil {
		return it.Value(), nil
	}
	// the shared load outlives any one caller; a caller that gives up
	// returns its own context error and leaves the load to the others
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		if it := s.cache.Get(key); it != nil {
			return it.Value(), nil
		}
		snap, err := s.load(loadCtx, srcs)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, snap, ttlcache.NoTTL)
		return snap, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

// Loaded reports whether the default sources are already in memory
func (s *Service) Loaded() bool {
	if s.defaults.validate() != nil {
		return false
	}
	return s.cache.Has(s.defaults.Key())
}

// Len returns the number of memoized snapshots
func (s *Service) Len() int { return s.cache.Len() }

func (s *Service) load(ctx context.Context, srcs Sources) (*Snapshot, error) {
	start := s.now()
	hist, err := readFrame(ctx, srcs.Historical)
	if err != nil {
		return nil, err
	}
	recent, err := readFrame(ctx, srcs.Recent)
	if err != nil {
		return nil, err
	}
	bounds, err := readBoundaries(ctx, srcs.Boundaries)
	if err != nil {
		return nil, err
	}
	model, err := crimes.Build(s.schema, hist, recent, bounds)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:         uuid.NewString(),
		LoadedAt:   s.now(),
		Sources:    srcs.IDs(),
		Historical: hist,
		Recent:     recent,
		Boundaries: bounds,
		Model:      model,
	}
	ev := s.log.Info().
		Str("snapshot_id", snap.ID).
		Int("historical_rows", hist.Len()).
		Int("recent_rows", recent.Len()).
		Int("boundaries", bounds.Len()).
		Int("districts", len(model.Aggregates)).
		Int("collisions", len(crimes.Collisions(model.Joined))).
		Dur("took", snap.LoadedAt.Sub(start))
	if model.AggregateErr != nil {
		ev = ev.AnErr("aggregate_err", model.AggregateErr)
	}
	ev.Msg("dataset loaded")
	return snap, nil
}

func open(ctx context.Context, src Source) (io.ReadCloser, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, perr.SourceUnavailable(err, src.ID())
	}
	return rc, nil
}

func readFrame(ctx context.Context, src Source) (*frame.Frame, error) {
	rc, err := open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	f, err := frame.ReadCSV(rc)
	if err != nil {
		return nil, perr.SourceUnavailable(err, src.ID())
	}
	return f, nil
}

func readBoundaries(ctx context.Context, src Source) (*geo.Collection, error) {
	rc, err := open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	c, err := geo.Decode(rc)
	if err != nil {
		return nil, perr.SourceUnavailable(err, src.ID())
	}
	return c, nil
}

// Static serves a fixed snapshot built from pre-loaded tables
type Static struct{ snap *Snapshot }

// NewStatic derives a snapshot from tables that are already in memory
func NewStatic(schema crimes.Schema, historical, recent *frame.Frame, bounds *geo.Collection) (*Static, error) {
	model, err := crimes.Build(schema, historical, recent, bounds)
	if err != nil {
		return nil, err
	}
	return &Static{snap: &Snapshot{
		ID:         uuid.NewString(),
		LoadedAt:   time.Now(),
		Sources:    []string{"static"},
		Historical: historical,
		Recent:     recent,
		Boundaries: bounds,
		Model:      model,
	}}, nil
}

// Snapshot returns the fixed snapshot
func (s *Static) Snapshot(context.Context) (*Snapshot, error) { return s.snap, nil }
