package crimes

import (
	"math"
	"strconv"
	"strings"

	"crimemap/internal/core/frame"
	"crimemap/internal/core/normalize"
	perr "crimemap/internal/platform/errors"
)

// Incident is one combined row: a (state, district, year) record with its counts
// Duplicate keys are kept as separate incidents
type Incident struct {
	State    string
	District string
	Year     int
	Total    int64
	Severe   int64
	Minor    int64
	// Counts holds every category column the schema reads
	Counts map[string]int64
}

// Table is the combined incident table
type Table struct {
	schema   Schema
	frame    *frame.Frame
	rows     []Incident
	hasTotal bool
}

func errInvalidSchema(msg string) error {
	return perr.New(perr.ErrorCodeInvalidArgument, "invalid schema: "+msg)
}

func missingColumn(col string) error {
	return perr.MissingColumnf(col, "required column %q is missing", col)
}

// Combine concatenates the incident frames and derives severe and minor totals
//
// Labels are trimmed per source before the frames are aligned, so " MURDER"
// and "MURDER" land in one column. Rows keep their input order. A missing key
// or category column fails with MissingColumn; a missing total column is
// tolerated and reported by the views that need it
func Combine(schema Schema, frames ...*frame.Frame) (*Table, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	trimmed := make([]*frame.Frame, 0, len(frames))
	for _, f := range frames {
		if f == nil {
			continue
		}
		trimmed = append(trimmed, f.TrimColumns(normalize.Label))
	}
	combined := frame.Concat(trimmed...)

	for _, col := range append([]string{schema.State, schema.District, schema.Year}, schema.categories()...) {
		if !combined.Has(col) {
			return nil, missingColumn(col)
		}
	}

	t := &Table{schema: schema, frame: combined, hasTotal: combined.Has(schema.Total)}
	cats := schema.categories()
	t.rows = make([]Incident, combined.Len())
	for i := range t.rows {
		in := Incident{
			State:    combined.Value(i, schema.State),
			District: combined.Value(i, schema.District),
			Counts:   make(map[string]int64, len(cats)),
		}
		year, err := parseYear(combined.Value(i, schema.Year))
		if err != nil {
			return nil, rowErr(err, i, schema.Year)
		}
		in.Year = year

		if t.hasTotal {
			if in.Total, err = parseCount(combined.Value(i, schema.Total)); err != nil {
				return nil, rowErr(err, i, schema.Total)
			}
		}
		for _, c := range cats {
			n, err := parseCount(combined.Value(i, c))
			if err != nil {
				return nil, rowErr(err, i, c)
			}
			in.Counts[c] = n
		}
		for _, c := range schema.Severe {
			in.Severe += in.Counts[c]
		}
		for _, c := range schema.Minor {
			in.Minor += in.Counts[c]
		}
		t.rows[i] = in
	}
	return t, nil
}

func rowErr(err error, row int, col string) error {
	return perr.WithField(perr.Wrapf(err, perr.ErrorCodeDataSourceUnavailable, "row %d column %q", row+1, col), col)
}

// parseCount accepts non-negative integers, integral floats such as "12.0"
// and empty cells, which count as zero
func parseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, perr.InvalidArgf("negative count %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f >= 1<<63 {
		return 0, perr.InvalidArgf("%q is not an integer count", s)
	}
	if f < 0 {
		return 0, perr.InvalidArgf("negative count %q", s)
	}
	return int64(f), nil
}

// Years outside this range make the source unparseable
const (
	minYear = 1
	maxYear = 9999
)

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, perr.InvalidArgf("empty year")
	}
	n, err := parseCount(s)
	if err != nil {
		return 0, err
	}
	if n < minYear || n > maxYear {
		return 0, perr.InvalidArgf("year %d outside %d..%d", n, minYear, maxYear)
	}
	return int(n), nil
}

// Schema returns the schema the table was built with
func (t *Table) Schema() Schema { return t.schema }

// Frame returns the combined raw table with trimmed labels
func (t *Table) Frame() *frame.Frame { return t.frame }

// Len returns the number of incidents
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Incident returns incident i
func (t *Table) Incident(i int) Incident { return t.rows[i] }

// Incidents returns a copy of the incident list
func (t *Table) Incidents() []Incident { return append([]Incident(nil), t.rows...) }

// HasTotal reports whether the total incidents column was present
func (t *Table) HasTotal() bool { return t.hasTotal }

// RequireTotal returns MissingColumn when the total column is absent
func (t *Table) RequireTotal() error {
	if t.hasTotal {
		return nil
	}
	return missingColumn(t.schema.Total)
}

// where returns a table with the incidents keep accepts
func (t *Table) where(keep func(Incident) bool) *Table {
	var rows []Incident
	set := map[int]bool{}
	for i, in := range t.rows {
		if keep(in) {
			set[i] = true
			rows = append(rows, in)
		}
	}
	return &Table{
		schema:   t.schema,
		frame:    t.frame.Filter(func(i int) bool { return set[i] }),
		rows:     rows,
		hasTotal: t.hasTotal,
	}
}

// YearBounds returns the smallest and largest year, ok false for an empty table
func (t *Table) YearBounds() (lo, hi int, ok bool) {
	for i, in := range t.rows {
		if i == 0 || in.Year < lo {
			lo = in.Year
		}
		if i == 0 || in.Year > hi {
			hi = in.Year
		}
	}
	return lo, hi, len(t.rows) > 0
}
