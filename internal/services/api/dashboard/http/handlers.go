// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"

	"crimemap/internal/modkit/httpkit"
	"crimemap/internal/modkit/swaggerkit"
	"crimemap/internal/services/api/dashboard/domain"
)

// Route is one dashboard endpoint, also used to describe the swagger document
type Route struct {
	Method  string
	Path    string
	Summary string
}

// Routes lists the endpoints Register mounts
var Routes = []Route{
	{stdhttp.MethodGet, "/options", "States and year bounds for the filters"},
	{stdhttp.MethodPost, "/view", "Every dashboard section for a selection"},
	{stdhttp.MethodPost, "/summary", "Headline metrics"},
	{stdhttp.MethodPost, "/breakdown", "Incidents by category"},
	{stdhttp.MethodPost, "/trend", "Yearly totals"},
	{stdhttp.MethodPost, "/growth", "Year over year growth rate"},
	{stdhttp.MethodPost, "/top-districts", "Districts with the most incidents"},
	{stdhttp.MethodPost, "/top-states", "States with the most incidents"},
	{stdhttp.MethodPost, "/map", "Choropleth with viewport"},
}

// Describe records Routes under prefix in the swagger document
func Describe(prefix string) {
	for _, rt := range Routes {
		swaggerkit.Describe(swaggerkit.Op{Method: rt.Method, Path: prefix + rt.Path, Tag: "Dashboard", Summary: rt.Summary})
	}
}

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetJSON(r, "/options", h.options)

	// full dashboard
	httpkit.PostJSON[domain.SelectionInput](r, "/view", h.view)

	// single sections
	httpkit.PostJSON[domain.SelectionInput](r, "/summary", h.summary)
	httpkit.PostJSON[domain.SelectionInput](r, "/breakdown", h.breakdown)
	httpkit.PostJSON[domain.SelectionInput](r, "/trend", h.trend)
	httpkit.PostJSON[domain.SelectionInput](r, "/growth", h.growth)
	httpkit.PostJSON[domain.SelectionInput](r, "/top-districts", h.topDistricts)
	httpkit.PostJSON[domain.SelectionInput](r, "/top-states", h.topStates)
	httpkit.PostJSON[domain.SelectionInput](r, "/map", h.choropleth)
}

type handlers struct{ svc domain.ServicePort }

// respond tags a result with its snapshot id
func respond[T any](res domain.Result[T], err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return httpkit.Snapshot(res.SnapshotID, res.Data), nil
}

// swagger:route GET /dashboard/options Dashboard dashboardOptions
// @Summary States and year bounds for the filters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} crimes.Options "ok"
// @Failure 503 {object} httpkit.Envelope "data source unavailable"
// @Router /dashboard/options [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	res, err := h.svc.Options(r.Context())
	return respond(res, err)
}

// swagger:route POST /dashboard/view Dashboard dashboardView
// @Summary Every dashboard section for a selection
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {object} domain.ViewResult "ok"
// @Failure 400 {object} httpkit.Envelope "validation error"
// @Router /dashboard/view [post]
func (h *handlers) view(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.View(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/summary Dashboard dashboardSummary
// @Summary Headline metrics
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {object} crimes.Summary "ok"
// @Router /dashboard/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.Summary(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/breakdown Dashboard dashboardBreakdown
// @Summary Incidents by category
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {array} crimes.CategoryCount "ok"
// @Router /dashboard/breakdown [post]
func (h *handlers) breakdown(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.Breakdown(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/trend Dashboard dashboardTrend
// @Summary Yearly totals
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {array} crimes.YearTotal "ok"
// @Router /dashboard/trend [post]
func (h *handlers) trend(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.Trend(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/growth Dashboard dashboardGrowth
// @Summary Year over year growth rate
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {array} crimes.GrowthPoint "ok"
// @Failure 422 {object} httpkit.Envelope "fewer than two years selected"
// @Router /dashboard/growth [post]
func (h *handlers) growth(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.Growth(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/top-districts Dashboard dashboardTopDistricts
// @Summary Districts with the most incidents
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {object} domain.Section "ok"
// @Router /dashboard/top-districts [post]
func (h *handlers) topDistricts(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.TopDistricts(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/top-states Dashboard dashboardTopStates
// @Summary States with the most incidents
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {array} crimes.StateTotal "ok"
// @Router /dashboard/top-states [post]
func (h *handlers) topStates(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.TopStates(r.Context(), in)
	return respond(res, err)
}

// swagger:route POST /dashboard/map Dashboard dashboardMap
// @Summary Choropleth with viewport
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {object} domain.Section "ok"
// @Router /dashboard/map [post]
func (h *handlers) choropleth(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	res, err := h.svc.Map(r.Context(), in)
	return respond(res, err)
}
