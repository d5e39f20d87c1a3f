// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"crimemap/internal/core/crimes"
	"crimemap/internal/core/version"
	"crimemap/internal/modkit/httpkit"
	perr "crimemap/internal/platform/errors"
	"crimemap/internal/services/dataset"
)

var errNoDataset = perr.Unavailablef("no dataset configured")

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Data        dataset.Provider
	// ReadyTimeout bounds the dataset check, 0 means 2s
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}

	// mount routes
	httpkit.GetJSON(r, "/health", h.health)
	httpkit.GetJSON(r, "/ready", h.ready)
	httpkit.GetJSON(r, "/version", h.version)
	httpkit.GetJSON(r, "/service", h.service)
	httpkit.GetJSON(r, "/dataset", h.dataset)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"crimemap-api"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"dataset"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"data source unavailable: file:/srv/data/india_district.geojson"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"crimemap-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DatasetResponse describes the loaded snapshot
type DatasetResponse struct {
	SnapshotID     string             `json:"snapshot_id"     example:"0b7f2c4e-93a1-4f5e-8f4e-1c2d3e4f5a6b"`
	LoadedAt       string             `json:"loaded_at"       example:"2026-10-01T13:00:01Z"`
	Sources        []string           `json:"sources"`
	HistoricalRows int                `json:"historical_rows" example:"9017"`
	RecentRows     int                `json:"recent_rows"     example:"823"`
	Boundaries     int                `json:"boundaries"      example:"641"`
	Districts      int                `json:"districts"       example:"780"`
	HasTotal       bool               `json:"has_total"       example:"true"`
	Collisions     []crimes.Collision `json:"collisions"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dataset check
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	data := ReadyCheck{Name: "dataset", Status: "skipped"}
	if h.deps.Data != nil {
		data.Status = "ok"
		snap, err := h.deps.Data.Snapshot(ctx)
		switch {
		case err != nil:
			data.Status = "fail"
			data.Error = err.Error()
		case snap.Model.AggregateErr != nil:
			// served, but total dependent sections only show notices
			data.Status = "degraded"
			data.Error = snap.Model.AggregateErr.Error()
		}
	}

	overall := "ok"
	switch data.Status {
	case "fail":
		overall = "fail"
	case "degraded", "skipped":
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{data},
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/dataset Meta metaDataset
// @Summary Loaded snapshot and join collisions
// @Tags Meta
// @Produce json
// @Success 200 {object} DatasetResponse "ok"
// @Failure 503 {object} httpkit.Envelope "data source unavailable"
// @Router /meta/dataset [get]
func (h *handlers) dataset(r *http.Request) (any, error) {
	if h.deps.Data == nil {
		return nil, errNoDataset
	}
	snap, err := h.deps.Data.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.Snapshot(snap.ID, DatasetResponse{
		SnapshotID:     snap.ID,
		LoadedAt:       snap.LoadedAt.UTC().Format(time.RFC3339),
		Sources:        snap.Sources,
		HistoricalRows: snap.Historical.Len(),
		RecentRows:     snap.Recent.Len(),
		Boundaries:     snap.Boundaries.Len(),
		Districts:      len(snap.Model.Aggregates),
		HasTotal:       snap.Model.Table.HasTotal(),
		Collisions:     crimes.Collisions(snap.Model.Joined),
	}), nil
}
