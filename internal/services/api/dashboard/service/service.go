// Package service contains dashboard workflows over the loaded dataset
package service

import (
	"context"

	"github.com/twpayne/go-geom/encoding/geojson"

	"crimemap/internal/core/crimes"
	"crimemap/internal/core/geo"
	"crimemap/internal/platform/logger"
	"crimemap/internal/services/api/dashboard/domain"
	"crimemap/internal/services/dataset"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dashboard service
type Svc struct {
	data         dataset.Provider
	log          *logger.Logger
	topDistricts int
	topStates    int
}

// Option configures Svc
type Option func(*Svc)

// WithTop overrides the default ranking sizes, zero keeps a default
func WithTop(districts, states int) Option {
	return func(s *Svc) {
		if districts > 0 {
			s.topDistricts = districts
		}
		if states > 0 {
			s.topStates = states
		}
	}
}

// WithLogger sets the service logger
func WithLogger(l *logger.Logger) Option {
	return func(s *Svc) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a dashboard service
func New(data dataset.Provider, opts ...Option) *Svc {
	if data == nil {
		panic("dashboard.Service requires a non nil dataset provider")
	}
	s := &Svc{
		data:         data,
		log:          logger.Named("dashboard"),
		topDistricts: crimes.DefaultTopDistricts,
		topStates:    crimes.DefaultTopStates,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// scope is a snapshot and the view filtered from it
type scope struct {
	snap *dataset.Snapshot
	view crimes.View
}

func (s *Svc) scope(ctx context.Context, in domain.SelectionInput) (scope, error) {
	snap, err := s.data.Snapshot(ctx)
	if err != nil {
		return scope{}, err
	}
	sel, err := crimes.Selection{State: in.State, YearFrom: in.YearFrom, YearTo: in.YearTo}.Resolve(snap.Model.Table)
	if err != nil {
		return scope{}, err
	}
	return scope{snap: snap, view: crimes.Filter(snap.Model, sel)}, nil
}

func (s *Svc) top(in domain.SelectionInput) (districts, states int) {
	districts, states = s.topDistricts, s.topStates
	if in.Top > 0 {
		districts = in.Top
	}
	if in.TopStates > 0 {
		states = in.TopStates
	}
	return districts, states
}

// Options returns the state choices and year bounds of the full table
func (s *Svc) Options(ctx context.Context) (domain.Result[crimes.Options], error) {
	snap, err := s.data.Snapshot(ctx)
	if err != nil {
		return domain.Result[crimes.Options]{}, err
	}
	return domain.Result[crimes.Options]{SnapshotID: snap.ID, Data: crimes.FilterOptions(snap.Model.Table)}, nil
}

// View computes every dashboard section for the selection
// only load and selection errors fail the call; section errors become notices
func (s *Svc) View(ctx context.Context, in domain.SelectionInput) (domain.Result[domain.ViewResult], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[domain.ViewResult]{}, err
	}
	nd, ns := s.top(in)
	inc := sc.view.Incidents

	trend, trendErr := crimes.YearlyTrend(inc)
	var growth []crimes.GrowthPoint
	growthErr := trendErr
	if trendErr == nil {
		growth, growthErr = crimes.GrowthRates(trend)
	}

	sum, sumErr := crimes.Summarize(inc)
	districts, districtsErr := crimes.TopDistricts(inc, nd)
	states, statesErr := crimes.TopStates(sc.snap.Model.Table, ns)

	out := domain.ViewResult{
		SnapshotID:    sc.snap.ID,
		Selection:     domain.SelectionOf(sc.view.Selection),
		Summary:       domain.Guard(sum, sumErr),
		Breakdown:     domain.Guard(crimes.Breakdown(inc), nil),
		SevereVsMinor: domain.Guard(crimes.SevereVsMinor(inc), nil),
		Trend:         domain.Guard(trend, trendErr),
		Growth:        domain.Guard(growth, growthErr),
		TopDistricts:  domain.Warn(districts, districtsErr),
		TopStates:     domain.Guard(states, statesErr),
		Map:           s.mapSection(sc),
	}
	s.logNotices(out)
	return domain.Result[domain.ViewResult]{SnapshotID: sc.snap.ID, Data: out}, nil
}

func (s *Svc) logNotices(v domain.ViewResult) {
	notices := map[string]*domain.Notice{
		"summary":       v.Summary.Notice,
		"trend":         v.Trend.Notice,
		"growth":        v.Growth.Notice,
		"top_districts": v.TopDistricts.Notice,
		"top_states":    v.TopStates.Notice,
		"map":           v.Map.Notice,
	}
	for section, n := range notices {
		if n == nil || n.Level == domain.NoticeInfo {
			continue
		}
		s.log.Warn().
			Str("snapshot_id", v.SnapshotID).
			Str("section", section).
			Str("code", n.Code).
			Msg("dashboard section degraded")
	}
}

// Summary returns the headline metrics
func (s *Svc) Summary(ctx context.Context, in domain.SelectionInput) (domain.Result[crimes.Summary], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[crimes.Summary]{}, err
	}
	sum, err := crimes.Summarize(sc.view.Incidents)
	if err != nil {
		return domain.Result[crimes.Summary]{}, err
	}
	return domain.Result[crimes.Summary]{SnapshotID: sc.snap.ID, Data: sum}, nil
}

// Breakdown returns the per category sums in breakdown order
func (s *Svc) Breakdown(ctx context.Context, in domain.SelectionInput) (domain.Result[[]crimes.CategoryCount], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[[]crimes.CategoryCount]{}, err
	}
	return domain.Result[[]crimes.CategoryCount]{SnapshotID: sc.snap.ID, Data: crimes.Breakdown(sc.view.Incidents)}, nil
}

// Trend returns per year sums
func (s *Svc) Trend(ctx context.Context, in domain.SelectionInput) (domain.Result[[]crimes.YearTotal], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[[]crimes.YearTotal]{}, err
	}
	trend, err := crimes.YearlyTrend(sc.view.Incidents)
	if err != nil {
		return domain.Result[[]crimes.YearTotal]{}, err
	}
	return domain.Result[[]crimes.YearTotal]{SnapshotID: sc.snap.ID, Data: trend}, nil
}

// Growth returns year over year change; fewer than two years is InsufficientData
func (s *Svc) Growth(ctx context.Context, in domain.SelectionInput) (domain.Result[[]crimes.GrowthPoint], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[[]crimes.GrowthPoint]{}, err
	}
	trend, err := crimes.YearlyTrend(sc.view.Incidents)
	if err != nil {
		return domain.Result[[]crimes.GrowthPoint]{}, err
	}
	growth, err := crimes.GrowthRates(trend)
	if err != nil {
		return domain.Result[[]crimes.GrowthPoint]{}, err
	}
	return domain.Result[[]crimes.GrowthPoint]{SnapshotID: sc.snap.ID, Data: growth}, nil
}

// TopDistricts ranks districts of the filtered view; a missing total is a warning
func (s *Svc) TopDistricts(ctx context.Context, in domain.SelectionInput) (domain.Result[domain.Section[[]crimes.DistrictTotal]], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[domain.Section[[]crimes.DistrictTotal]]{}, err
	}
	nd, _ := s.top(in)
	districts, err := crimes.TopDistricts(sc.view.Incidents, nd)
	return domain.Result[domain.Section[[]crimes.DistrictTotal]]{
		SnapshotID: sc.snap.ID,
		Data:       domain.Warn(districts, err),
	}, nil
}

// TopStates ranks states over the full table, ignoring the selection
func (s *Svc) TopStates(ctx context.Context, in domain.SelectionInput) (domain.Result[[]crimes.StateTotal], error) {
	snap, err := s.data.Snapshot(ctx)
	if err != nil {
		return domain.Result[[]crimes.StateTotal]{}, err
	}
	_, ns := s.top(in)
	states, err := crimes.TopStates(snap.Model.Table, ns)
	if err != nil {
		return domain.Result[[]crimes.StateTotal]{}, err
	}
	return domain.Result[[]crimes.StateTotal]{SnapshotID: snap.ID, Data: states}, nil
}

// Map returns the choropleth for the selected state
func (s *Svc) Map(ctx context.Context, in domain.SelectionInput) (domain.Result[domain.Section[*domain.MapResult]], error) {
	sc, err := s.scope(ctx, in)
	if err != nil {
		return domain.Result[domain.Section[*domain.MapResult]]{}, err
	}
	return domain.Result[domain.Section[*domain.MapResult]]{SnapshotID: sc.snap.ID, Data: s.mapSection(sc)}, nil
}

// mapSection renders joined boundaries; totals are all-year and a missing
// total column leaves them null with a warning
func (s *Svc) mapSection(sc scope) domain.Section[*domain.MapResult] {
	districts := sc.view.Districts
	features := make([]*geojson.Feature, 0, len(districts))
	res := &domain.MapResult{Collisions: crimes.Collisions(districts)}
	for _, d := range districts {
		features = append(features, d.GeoFeature())
		if d.TotalCrimes != nil {
			res.Matched++
		} else {
			res.Unmatched++
		}
	}
	res.GeoJSON = &geojson.FeatureCollection{Features: features}
	res.Viewport = geo.ViewportOf(features)
	return domain.Warn(res, sc.snap.Model.AggregateErr)
}

// Ready loads the snapshot if needed and reports any load failure
func (s *Svc) Ready(ctx context.Context) error {
	_, err := s.data.Snapshot(ctx)
	return err
}
