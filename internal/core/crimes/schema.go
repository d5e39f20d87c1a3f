// Package crimes implements the incident pipeline behind the dashboard
//
// Two incident tables are combined into one Table with derived severe and
// minor totals, aggregated per district, joined onto boundary features and
// filtered by a Selection. Every function is pure: inputs are never mutated
// and each call returns new values
package crimes

// AllStates is the state selection that disables the state filter
const AllStates = "All"

// Default NCRB column labels
const (
	ColState    = "STATE/UT"
	ColDistrict = "DISTRICT"
	ColYear     = "YEAR"
	ColTotal    = "TOTAL IPC CRIMES"

	PropDistrict = "NAME_2"
	PropState    = "NAME_1"

	// TotalCrimes is the aggregate attribute carried by joined districts
	TotalCrimes = "Total_Crimes"
)

// Schema names the columns the pipeline reads
// Severe and Minor must be disjoint
type Schema struct {
	State    string
	District string
	Year     string
	Total    string

	BoundaryDistrict string
	BoundaryState    string

	Severe    []string
	Minor     []string
	Breakdown []string
}

// DefaultSchema returns the labels used by the NCRB district files
// COUNTERFIETING is spelled the way the source files spell it
func DefaultSchema() Schema {
	return Schema{
		State:            ColState,
		District:         ColDistrict,
		Year:             ColYear,
		Total:            ColTotal,
		BoundaryDistrict: PropDistrict,
		BoundaryState:    PropState,
		Severe:           []string{"MURDER", "RAPE", "DACOITY", "KIDNAPPING & ABDUCTION", "ROBBERY"},
		Minor:            []string{"THEFT", "BURGLARY", "CHEATING", "COUNTERFIETING"},
		Breakdown: []string{
			"MURDER", "RAPE", "KIDNAPPING & ABDUCTION", "DACOITY", "ROBBERY",
			"BURGLARY", "THEFT", "CHEATING", "COUNTERFIETING",
		},
	}
}

// categories returns every count column the schema needs, each once
func (s Schema) categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, set := range [][]string{s.Severe, s.Minor, s.Breakdown} {
		for _, c := range set {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Validate reports schema mistakes such as overlapping severe and minor sets
func (s Schema) Validate() error {
	if s.State == "" || s.District == "" || s.Year == "" || s.Total == "" {
		return errInvalidSchema("state, district, year and total columns are required")
	}
	if s.BoundaryDistrict == "" || s.BoundaryState == "" {
		return errInvalidSchema("boundary district and state properties are required")
	}
	severe := map[string]bool{}
	for _, c := range s.Severe {
		severe[c] = true
	}
	for _, c := range s.Minor {
		if severe[c] {
			return errInvalidSchema("column " + c + " is both severe and minor")
		}
	}
	return nil
}
