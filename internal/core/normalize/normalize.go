// Package normalize provides the deterministic key normalization used to join
// incident districts onto boundary districts
//
// District keys are trimmed of surrounding whitespace and uppercased with full
// Unicode case mapping (ß becomes SS). Both sides of the join use DistrictKey
// so the mapping only has to be stable, not reversible
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser keeps internal state and is not safe for concurrent use
var upperPool = sync.Pool{
	New: func() any { c := cases.Upper(language.Und); return &c },
}

// Upper returns s uppercased with full Unicode case mapping, whitespace untouched
func Upper(s string) string {
	if s == "" {
		return ""
	}
	c := upperPool.Get().(*cases.Caser)
	out := c.String(s)
	c.Reset()
	upperPool.Put(c)
	return out
}

// DistrictKey returns the join key for a district name: trimmed, then uppercased
// DistrictKey(DistrictKey(s)) == DistrictKey(s)
func DistrictKey(s string) string {
	return Upper(strings.TrimSpace(s))
}

// Label trims surrounding whitespace from a column label, case preserved
func Label(s string) string { return strings.TrimSpace(s) }

// SameState reports whether two state names match case-insensitively
// Whitespace is significant, so "Kerala " and "kerala" differ
func SameState(a, b string) bool { return Upper(a) == Upper(b) }
