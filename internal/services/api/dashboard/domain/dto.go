// Package domain holds DTOs for dashboard http and service contracts
package domain

import (
	"github.com/twpayne/go-geom/encoding/geojson"

	"crimemap/internal/core/crimes"
	"crimemap/internal/core/geo"
)

// SelectionInput is the dashboard filter payload
// zero years default to the data bounds and an empty state means All
type SelectionInput struct {
	State     string `json:"state,omitempty" validate:"omitempty,max=100" example:"All"`
	YearFrom  int    `json:"year_from,omitempty" validate:"omitempty,min=1900,max=2100" example:"2001"`
	YearTo    int    `json:"year_to,omitempty" validate:"omitempty,min=1900,max=2100,gtefield=YearFrom" example:"2013"`
	Top       int    `json:"top,omitempty" validate:"omitempty,min=1,max=100" example:"5"`
	TopStates int    `json:"top_states,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// Selection echoes the resolved filter
type Selection struct {
	State    string `json:"state" example:"Kerala"`
	YearFrom int    `json:"year_from" example:"2001"`
	YearTo   int    `json:"year_to" example:"2013"`
}

// SelectionOf converts a resolved crimes selection
func SelectionOf(s crimes.Selection) Selection {
	return Selection{State: s.State, YearFrom: s.YearFrom, YearTo: s.YearTo}
}

// MapResult is the choropleth payload
type MapResult struct {
	GeoJSON    *geojson.FeatureCollection `json:"geojson" swaggertype:"object"`
	Viewport   geo.Viewport               `json:"viewport"`
	Matched    int                        `json:"matched" example:"640"`
	Unmatched  int                        `json:"unmatched" example:"12"`
	Collisions []crimes.Collision         `json:"collisions"`
}

// ViewResult is the whole dashboard for one selection
// every section degrades on its own
type ViewResult struct {
	SnapshotID    string                          `json:"snapshot_id" example:"0b7f2c4e-93a1-4f5e-8f4e-1c2d3e4f5a6b"`
	Selection     Selection                       `json:"selection"`
	Summary       Section[crimes.Summary]         `json:"summary"`
	Breakdown     Section[[]crimes.CategoryCount] `json:"breakdown"`
	SevereVsMinor Section[[]crimes.CategoryCount] `json:"severe_vs_minor"`
	Trend         Section[[]crimes.YearTotal]     `json:"trend"`
	Growth        Section[[]crimes.GrowthPoint]   `json:"growth"`
	TopDistricts  Section[[]crimes.DistrictTotal] `json:"top_districts"`
	TopStates     Section[[]crimes.StateTotal]    `json:"top_states"`
	Map           Section[*MapResult]             `json:"map"`
}

// Result pairs a payload with the snapshot it was computed from
type Result[T any] struct {
	SnapshotID string
	Data       T
}
