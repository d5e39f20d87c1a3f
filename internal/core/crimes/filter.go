package crimes

import (
	"strings"

	"crimemap/internal/core/frame"
	"crimemap/internal/core/geo"
	"crimemap/internal/core/normalize"
	perr "crimemap/internal/platform/errors"
)

// Model is the derived base the dashboard filters: the combined table, the
// district aggregates and the joined boundaries. A Model is never mutated
type Model struct {
	Table      *Table
	Aggregates []DistrictTotal
	Joined     []JoinedDistrict
	// AggregateErr keeps a MissingColumn from aggregation; Joined then carries nil totals
	AggregateErr error
}

// Build runs combine, aggregate and join over freshly loaded sources
// Load and parse failures are returned; a missing total column is kept on the model
func Build(schema Schema, historical, recent *frame.Frame, bounds *geo.Collection) (*Model, error) {
	t, err := Combine(schema, historical, recent)
	if err != nil {
		return nil, err
	}
	m := &Model{Table: t}
	aggs, err := AggregateDistricts(t)
	switch {
	case err == nil:
		m.Aggregates = aggs
	case perr.IsCode(err, perr.ErrorCodeMissingColumn):
		m.AggregateErr = err
	default:
		return nil, err
	}
	m.Joined = Join(schema, bounds, m.Aggregates)
	return m, nil
}

// Selection is the dashboard filter: a state or AllStates and an inclusive year range
type Selection struct {
	State    string
	YearFrom int
	YearTo   int
}

// Resolve fills defaults against the model: empty state means AllStates and
// zero years mean the data bounds. A reversed range is a validation error
func (s Selection) Resolve(t *Table) (Selection, error) {
	out := s
	if strings.TrimSpace(out.State) == "" {
		out.State = AllStates
	}
	lo, hi, _ := t.YearBounds()
	if out.YearFrom == 0 {
		out.YearFrom = lo
	}
	if out.YearTo == 0 {
		out.YearTo = hi
	}
	if out.YearFrom > out.YearTo {
		return Selection{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "year_from %d is after year_to %d", out.YearFrom, out.YearTo),
			"year_from",
		)
	}
	return out, nil
}

// All reports whether the selection covers every state
func (s Selection) All() bool { return s.State == AllStates }

// View is a filtered model
type View struct {
	Selection Selection
	Incidents *Table
	Districts []JoinedDistrict
}

// Filter applies a resolved selection
// Incidents match the state exactly and the year range inclusively; boundaries
// match the state case-insensitively. Empty matches produce empty views
func Filter(m *Model, sel Selection) View {
	inc := m.Table.where(func(in Incident) bool {
		if !sel.All() && in.State != sel.State {
			return false
		}
		return in.Year >= sel.YearFrom && in.Year <= sel.YearTo
	})

	districts := m.Joined
	if !sel.All() {
		districts = make([]JoinedDistrict, 0)
		for _, j := range m.Joined {
			if normalize.SameState(j.State, sel.State) {
				districts = append(districts, j)
			}
		}
	} else {
		districts = append([]JoinedDistrict(nil), districts...)
	}
	return View{Selection: sel, Incidents: inc, Districts: districts}
}
