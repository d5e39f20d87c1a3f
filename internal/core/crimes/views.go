package crimes

import (
	"sort"

	perr "crimemap/internal/platform/errors"
)

// Default ranking sizes
const (
	DefaultTopDistricts = 5
	DefaultTopStates    = 10
)

// Messages shown in place of a section that could not be computed
const (
	MsgInsufficientGrowth = "Insufficient data to calculate growth rates."
	MsgMissingTotal       = "The column 'Total_Crimes' is missing in the dataset. Please check the data processing steps."
)

// Summary holds the headline metrics of a view
type Summary struct {
	Total     int64 `json:"total" example:"15"`
	Severe    int64 `json:"severe" example:"3"`
	Minor     int64 `json:"minor" example:"4"`
	Districts int   `json:"districts" example:"1"`
}

// Summarize sums total, severe and minor counts and counts distinct district names
func Summarize(t *Table) (Summary, error) {
	if err := t.RequireTotal(); err != nil {
		return Summary{}, err
	}
	var s Summary
	names := map[string]struct{}{}
	for _, in := range t.rows {
		s.Total += in.Total
		s.Severe += in.Severe
		s.Minor += in.Minor
		names[in.District] = struct{}{}
	}
	s.Districts = len(names)
	return s, nil
}

// CategoryCount is one slice of a category chart
type CategoryCount struct {
	Category string `json:"category" example:"MURDER"`
	Count    int64  `json:"count" example:"3"`
}

// Breakdown sums each breakdown category, in schema order
func Breakdown(t *Table) []CategoryCount {
	out := make([]CategoryCount, len(t.schema.Breakdown))
	for i, c := range t.schema.Breakdown {
		out[i].Category = c
		for _, in := range t.rows {
			out[i].Count += in.Counts[c]
		}
	}
	return out
}

// Labels for the severe and minor bars
const (
	LabelSevere = "Heinous Crimes"
	LabelMinor  = "Petty Crimes"
)

// SevereVsMinor returns the two bar comparison
func SevereVsMinor(t *Table) []CategoryCount {
	var severe, minor int64
	for _, in := range t.rows {
		severe += in.Severe
		minor += in.Minor
	}
	return []CategoryCount{{Category: LabelSevere, Count: severe}, {Category: LabelMinor, Count: minor}}
}

// YearTotal is one point of the yearly trend
type YearTotal struct {
	Year   int   `json:"year" example:"2001"`
	Total  int64 `json:"total" example:"10"`
	Severe int64 `json:"severe" example:"2"`
	Minor  int64 `json:"minor" example:"3"`
}

// YearlyTrend sums total, severe and minor per year, ascending by year
func YearlyTrend(t *Table) ([]YearTotal, error) {
	if err := t.RequireTotal(); err != nil {
		return nil, err
	}
	byYear := map[int]*YearTotal{}
	for _, in := range t.rows {
		y := byYear[in.Year]
		if y == nil {
			y = &YearTotal{Year: in.Year}
			byYear[in.Year] = y
		}
		y.Total += in.Total
		y.Severe += in.Severe
		y.Minor += in.Minor
	}
	out := make([]YearTotal, 0, len(byYear))
	for _, y := range byYear {
		out = append(out, *y)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// GrowthPoint is the year over year change of total incidents
type GrowthPoint struct {
	Year int `json:"year" example:"2002"`
	// Rate is a percentage, nil when the previous year had no incidents
	Rate *float64 `json:"rate" example:"-50"`
}

// GrowthRates returns the percentage change between consecutive trend points
// A trend with fewer than two years fails with InsufficientData
func GrowthRates(trend []YearTotal) ([]GrowthPoint, error) {
	if len(trend) < 2 {
		return nil, perr.InsufficientDataf(MsgInsufficientGrowth)
	}
	out := make([]GrowthPoint, 0, len(trend)-1)
	for i := 1; i < len(trend); i++ {
		p := GrowthPoint{Year: trend[i].Year}
		if prev := trend[i-1].Total; prev != 0 {
			r := float64(trend[i].Total-prev) / float64(prev) * 100
			p.Rate = &r
		}
		out = append(out, p)
	}
	return out, nil
}

// TopDistricts ranks (state, district) aggregates of the table by total, largest first
// n <= 0 means DefaultTopDistricts. Ties break on state then district
func TopDistricts(t *Table, n int) ([]DistrictTotal, error) {
	if n <= 0 {
		n = DefaultTopDistricts
	}
	aggs, err := AggregateDistricts(t)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(aggs, func(i, j int) bool { return aggs[i].Total > aggs[j].Total })
	if len(aggs) > n {
		aggs = aggs[:n]
	}
	return aggs, nil
}

// StateTotal is the total incidents of one state
type StateTotal struct {
	State string `json:"state" example:"Kerala"`
	Total int64  `json:"total" example:"15"`
}

// TopStates ranks states by total incidents, largest first, ties by name
// n <= 0 means DefaultTopStates
func TopStates(t *Table, n int) ([]StateTotal, error) {
	if err := t.RequireTotal(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopStates
	}
	sums := map[string]int64{}
	for _, in := range t.rows {
		sums[in.State] += in.Total
	}
	out := make([]StateTotal, 0, len(sums))
	for s, v := range sums {
		out = append(out, StateTotal{State: s, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].State < out[j].State
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Options lists the selectable filter values
type Options struct {
	// States is sorted with AllStates first
	States  []string `json:"states" example:"All,Goa,Kerala"`
	MinYear int      `json:"min_year" example:"2001"`
	MaxYear int      `json:"max_year" example:"2013"`
}

// FilterOptions returns the distinct states and the year bounds of the table
func FilterOptions(t *Table) Options {
	set := map[string]struct{}{}
	for _, in := range t.rows {
		set[in.State] = struct{}{}
	}
	states := make([]string, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Strings(states)
	lo, hi, _ := t.YearBounds()
	return Options{States: append([]string{AllStates}, states...), MinYear: lo, MaxYear: hi}
}
