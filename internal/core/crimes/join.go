package crimes

import (
	"sort"

	"github.com/twpayne/go-geom/encoding/geojson"

	"crimemap/internal/core/geo"
	"crimemap/internal/core/normalize"
)

// DistrictTotal is the all-rows total for one (state, normalized district) pair
type DistrictTotal struct {
	State    string `json:"state" example:"Kerala"`
	District string `json:"district" example:"ERNAKULAM"`
	Total    int64  `json:"total_crimes" example:"15"`
}

// AggregateDistricts sums total incidents per (state, normalized district)
// Output is sorted by state then district
func AggregateDistricts(t *Table) ([]DistrictTotal, error) {
	if err := t.RequireTotal(); err != nil {
		return nil, err
	}
	type key struct{ state, district string }
	sums := map[key]int64{}
	for _, in := range t.rows {
		sums[key{in.State, normalize.DistrictKey(in.District)}] += in.Total
	}
	out := make([]DistrictTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, DistrictTotal{State: k.state, District: k.district, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].District < out[j].District
	})
	return out, nil
}

// JoinedDistrict is one boundary feature with the aggregate it matched
type JoinedDistrict struct {
	Feature *geojson.Feature
	// Key is the normalized boundary district name
	Key string
	// State is the boundary state attribute
	State string
	// MatchedState is the incident state of the matched aggregate, "" when unmatched
	MatchedState string
	// TotalCrimes is nil when no aggregate shares the key
	TotalCrimes *int64
	// Matches counts aggregates sharing the key; above one means districts
	// of different states collided on the name
	Matches int
}

// Join left-joins boundaries onto district aggregates on the normalized district
// name only. Each boundary yields one row per matching aggregate, in boundary
// order then aggregate order, or one row with a nil total when nothing matches.
// Aggregates without a boundary are dropped
func Join(schema Schema, bounds *geo.Collection, aggs []DistrictTotal) []JoinedDistrict {
	byKey := map[string][]DistrictTotal{}
	for _, a := range aggs {
		byKey[a.District] = append(byKey[a.District], a)
	}

	out := make([]JoinedDistrict, 0, bounds.Len())
	for i := 0; i < bounds.Len(); i++ {
		f := bounds.Feature(i)
		key := normalize.DistrictKey(geo.Property(f, schema.BoundaryDistrict))
		state := geo.Property(f, schema.BoundaryState)
		matches := byKey[key]
		if len(matches) == 0 {
			out = append(out, JoinedDistrict{Feature: f, Key: key, State: state})
			continue
		}
		for _, m := range matches {
			total := m.Total
			out = append(out, JoinedDistrict{
				Feature:      f,
				Key:          key,
				State:        state,
				MatchedState: m.State,
				TotalCrimes:  &total,
				Matches:      len(matches),
			})
		}
	}
	return out
}

// Collision is a district key that matched aggregates from more than one state
type Collision struct {
	Key    string   `json:"key" example:"AURANGABAD"`
	States []string `json:"states" example:"Bihar,Maharashtra"`
}

// Collisions lists keys whose boundaries joined to aggregates of several states
// Sorted by key
func Collisions(joined []JoinedDistrict) []Collision {
	states := map[string]map[string]bool{}
	for _, j := range joined {
		if j.Matches < 2 {
			continue
		}
		if states[j.Key] == nil {
			states[j.Key] = map[string]bool{}
		}
		states[j.Key][j.MatchedState] = true
	}
	out := make([]Collision, 0, len(states))
	for k, set := range states {
		c := Collision{Key: k}
		for s := range set {
			c.States = append(c.States, s)
		}
		sort.Strings(c.States)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GeoFeature renders a joined row as a GeoJSON feature
// Properties are copied from the boundary and extended with DISTRICT, STATE and Total_Crimes
func (j JoinedDistrict) GeoFeature() *geojson.Feature {
	props := make(map[string]interface{}, len(j.Feature.Properties)+3)
	for k, v := range j.Feature.Properties {
		props[k] = v
	}
	props["DISTRICT"] = j.Key
	props["STATE"] = j.State
	if j.TotalCrimes != nil {
		props[TotalCrimes] = *j.TotalCrimes
	} else {
		props[TotalCrimes] = nil
	}
	return &geojson.Feature{
		ID:         j.Feature.ID,
		BBox:       j.Feature.BBox,
		Geometry:   j.Feature.Geometry,
		Properties: props,
	}
}
