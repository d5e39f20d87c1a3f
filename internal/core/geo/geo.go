// Package geo holds district boundary features and the map viewport math
//
// Boundaries are read from a GeoJSON FeatureCollection with go-geom. Features
// and their properties are kept as loaded; filtering returns a new Collection
package geo

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/xy"

	perr "crimemap/internal/platform/errors"
)

// Default map centre when no boundary carries geometry
const (
	DefaultCenterLat = 22.5
	DefaultCenterLon = 80.0
)

// Collection is an immutable list of boundary features
type Collection struct {
	features []*geojson.Feature
}

// NewCollection wraps features, the slice is copied
func NewCollection(features []*geojson.Feature) *Collection {
	return &Collection{features: append([]*geojson.Feature(nil), features...)}
}

// Decode reads a GeoJSON FeatureCollection
func Decode(r io.Reader) (*Collection, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDataSourceUnavailable, "read geojson")
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDataSourceUnavailable, "parse geojson")
	}
	for _, f := range fc.Features {
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
	}
	return &Collection{features: fc.Features}, nil
}

// Len returns the number of features
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.features)
}

// Feature returns feature i
func (c *Collection) Feature(i int) *geojson.Feature { return c.features[i] }

// Features returns a copy of the feature list
func (c *Collection) Features() []*geojson.Feature {
	return append([]*geojson.Feature(nil), c.features...)
}

// Filter returns the features keep accepts, order preserved
func (c *Collection) Filter(keep func(*geojson.Feature) bool) *Collection {
	out := make([]*geojson.Feature, 0, len(c.features))
	for _, f := range c.features {
		if keep(f) {
			out = append(out, f)
		}
	}
	return &Collection{features: out}
}

// Property renders a feature property as text, "" when absent or null
func Property(f *geojson.Feature, key string) string {
	if f == nil {
		return ""
	}
	switch v := f.Properties[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Centroid returns the centroid of a feature geometry as (lon, lat)
// ok is false for features without a usable geometry
func Centroid(f *geojson.Feature) (lon, lat float64, ok bool) {
	if !hasGeometry(f) {
		return 0, 0, false
	}
	c, err := xy.Centroid(f.Geometry)
	if err != nil || len(c) < 2 {
		return 0, 0, false
	}
	return c[0], c[1], true
}

func hasGeometry(f *geojson.Feature) bool {
	return f != nil && f.Geometry != nil && !f.Geometry.Bounds().IsEmpty()
}

// Viewport is the area a map should fit to show a set of features
type Viewport struct {
	MinLon float64 `json:"min_lon" example:"68.1"`
	MinLat float64 `json:"min_lat" example:"6.7"`
	MaxLon float64 `json:"max_lon" example:"97.4"`
	MaxLat float64 `json:"max_lat" example:"35.5"`
	// Center is [lat, lon]
	Center [2]float64 `json:"center" example:"22.5,80"`
	Empty  bool       `json:"empty"`
}

// Bounds returns the union bounding box of the feature geometries
func Bounds(features []*geojson.Feature) *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	for _, f := range features {
		if !hasGeometry(f) {
			continue
		}
		b.Extend(f.Geometry)
	}
	return b
}

// ViewportOf fits the features, falling back to the default centre when none has geometry
func ViewportOf(features []*geojson.Feature) Viewport {
	b := Bounds(features)
	if b.IsEmpty() {
		return Viewport{Center: [2]float64{DefaultCenterLat, DefaultCenterLon}, Empty: true}
	}
	v := Viewport{MinLon: b.Min(0), MinLat: b.Min(1), MaxLon: b.Max(0), MaxLat: b.Max(1)}
	v.Center = [2]float64{(v.MinLat + v.MaxLat) / 2, (v.MinLon + v.MaxLon) / 2}
	return v
}

// Encode writes features as a GeoJSON FeatureCollection
func Encode(w io.Writer, features []*geojson.Feature) error {
	fc := geojson.FeatureCollection{Features: features}
	if fc.Features == nil {
		fc.Features = []*geojson.Feature{}
	}
	b, err := json.Marshal(&fc)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "encode geojson")
	}
	_, err = w.Write(b)
	return err
}
