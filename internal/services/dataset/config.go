package dataset

import (
	"crimemap/internal/core/crimes"
	"crimemap/internal/platform/config"
)

// Default source locations, relative to the working directory
const (
	DefaultHistorical = "data/01_District_wise_crimes_committed_IPC_2001_2012.csv"
	DefaultRecent     = "data/01_District_wise_crimes_committed_IPC_2013.csv"
	DefaultBoundaries = "data/india_district.geojson"
)

// Locations are the configured source locations before they become Sources
type Locations struct {
	Historical string
	Recent     string
	Boundaries string
}

// LocationsFromConfig reads DATA_HISTORICAL, DATA_RECENT and DATA_BOUNDARIES
func LocationsFromConfig(c config.Conf) Locations {
	return Locations{
		Historical: c.MayString("DATA_HISTORICAL", DefaultHistorical),
		Recent:     c.MayString("DATA_RECENT", DefaultRecent),
		Boundaries: c.MayString("DATA_BOUNDARIES", DefaultBoundaries),
	}
}

// Sources turns each location into a file or http source
func (l Locations) Sources() Sources {
	return Sources{
		Historical: Locate(l.Historical),
		Recent:     Locate(l.Recent),
		Boundaries: Locate(l.Boundaries),
	}
}

// SchemaFromConfig overlays SCHEMA_* variables on the default column labels
func SchemaFromConfig(c config.Conf) crimes.Schema {
	d := crimes.DefaultSchema()
	sc := c.Prefix("SCHEMA_")
	return crimes.Schema{
		State:            sc.MayString("STATE", d.State),
		District:         sc.MayString("DISTRICT", d.District),
		Year:             sc.MayString("YEAR", d.Year),
		Total:            sc.MayString("TOTAL", d.Total),
		BoundaryDistrict: sc.MayString("BOUNDARY_DISTRICT", d.BoundaryDistrict),
		BoundaryState:    sc.MayString("BOUNDARY_STATE", d.BoundaryState),
		Severe:           sc.MayCSV("SEVERE", d.Severe),
		Minor:            sc.MayCSV("MINOR", d.Minor),
		Breakdown:        sc.MayCSV("BREAKDOWN", d.Breakdown),
	}
}
