package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/campus/internal/domain/filter"
	"github.com/samber/lo"
)

// criteriaFrom builds browse criteria from query parameters. Missing
// bounds keep their defaults.
func criteriaFrom(q url.Values) (filter.Criteria, error) {
	c := filter.DefaultCriteria()
	c.SearchTerm = strings.TrimSpace(q.Get("q"))
	c.SortBy = q.Get("sort")
	c.Types = lo.Uniq(lo.Compact(lo.Map(q["type"], func(t string, _ int) string {
		return strings.TrimSpace(t)
	})))

	bounds := []struct {
		name string
		dst  *float64
	}{
		{"tuition_min", &c.Tuition.Min},
		{"tuition_max", &c.Tuition.Max},
		{"sat_min", &c.SAT.Min},
		{"sat_max", &c.SAT.Max},
	}
	for _, b := range bounds {
		raw := q.Get(b.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid %s %q", b.name, raw)
		}
		*b.dst = v
	}
	return c, nil
}
