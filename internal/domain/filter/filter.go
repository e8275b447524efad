// Package filter reduces the catalog to the records matching a set of
// browse criteria. Every function here is pure and keeps input order.
package filter

import (
	"slices"
	"strings"

	"github.com/okian/campus/internal/domain/model"
	"github.com/samber/lo"
)

// Default bounds applied when criteria leave a range unset.
const (
	DefaultTuitionMin = 0
	DefaultTuitionMax = 60000
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Criteria is the transient browse state. Types is a set; empty means any.
type Criteria struct {
	SearchTerm string   `json:"search_term"`
	Types      []string `json:"types"`
	Tuition    Range    `json:"tuition"`
	SAT        Range    `json:"sat"`
	SortBy     string   `json:"sort_by"`
}

// DefaultCriteria matches every record with sane data.
func DefaultCriteria() Criteria {
	return Criteria{
		Tuition: Range{Min: DefaultTuitionMin, Max: DefaultTuitionMax},
		SAT:     Range{Min: model.DefaultSATMin, Max: model.DefaultSATMax},
	}
}

// Equal reports whether two criteria select and order the same records.
// Type order is ignored.
func (c Criteria) Equal(o Criteria) bool {
	if c.SearchTerm != o.SearchTerm || c.Tuition != o.Tuition || c.SAT != o.SAT || c.SortBy != o.SortBy {
		return false
	}
	a, b := slices.Clone(c.Types), slices.Clone(o.Types)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(lo.Uniq(a), lo.Uniq(b))
}

// Apply returns the records matching c in their original order.
func Apply(records []model.University, c Criteria) []model.University {
	return lo.Filter(records, func(u model.University, _ int) bool {
		return Match(u, c)
	})
}

// Match reports whether u satisfies every clause of c.
func Match(u model.University, c Criteria) bool {
	if !matchesSearch(u, strings.ToLower(c.SearchTerm)) {
		return false
	}
	if len(c.Types) > 0 && !slices.Contains(c.Types, u.Type) {
		return false
	}
	if u.Tuition < c.Tuition.Min || u.Tuition > c.Tuition.Max {
		return false
	}
	// Overlap, not containment: a partially overlapping range still matches.
	uniMin, uniMax := u.SATBounds()
	return float64(uniMax) >= c.SAT.Min && float64(uniMin) <= c.SAT.Max
}

// Search keeps the records whose names or location contain term.
func Search(records []model.University, term string) []model.University {
	needle := strings.ToLower(term)
	return lo.Filter(records, func(u model.University, _ int) bool {
		return matchesSearch(u, needle)
	})
}

// matchesSearch expects an already lowercased needle.
func matchesSearch(u model.University, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), needle) ||
		strings.Contains(strings.ToLower(u.EnglishName), needle) ||
		strings.Contains(strings.ToLower(u.Location), needle)
}
