// Package sorting orders filtered catalog records. Sorts are stable and
// never mutate their input.
package sorting

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/model"
	"golang.org/x/text/collate"
)

// Key selects a sort strategy.
type Key string

// Sort strategies. The empty key is the default ordering.
const (
	Default  Key = ""
	NameAsc  Key = "name-asc"
	NameDesc Key = "name-desc"
	SATAsc   Key = "sat-asc"
	SATDesc  Key = "sat-desc"
)

// logoHosts serve official university logos; records using them sort first
// under the default key.
var logoHosts = []string{"upload.wikimedia.org", "logos-world.net"} //nolint:gochecknoglobals // fixed allow-list

// ParseKey maps s to a known key. Unknown values become Default.
func ParseKey(s string) Key {
	switch k := Key(strings.TrimSpace(s)); k {
	case NameAsc, NameDesc, SATAsc, SATDesc:
		return k
	default:
		return Default
	}
}

// Keys lists every strategy in menu order.
func Keys() []Key {
	return []Key{Default, NameAsc, NameDesc, SATAsc, SATDesc}
}

// Sort returns a sorted copy of records. Names are collated in the
// localizer's language using the name field it displays.
func Sort(records []model.University, by Key, loc *i18n.Localizer) []model.University {
	out := slices.Clone(records)
	switch ParseKey(string(by)) {
	case NameAsc:
		col := collate.New(loc.Tag())
		slices.SortStableFunc(out, func(a, b model.University) int {
			return col.CompareString(loc.DisplayName(a), loc.DisplayName(b))
		})
	case NameDesc:
		col := collate.New(loc.Tag())
		slices.SortStableFunc(out, func(a, b model.University) int {
			return col.CompareString(loc.DisplayName(b), loc.DisplayName(a))
		})
	case SATAsc:
		slices.SortStableFunc(out, func(a, b model.University) int {
			aMin, _ := a.SATBounds()
			bMin, _ := b.SATBounds()
			return cmp.Compare(aMin, bMin)
		})
	case SATDesc:
		slices.SortStableFunc(out, func(a, b model.University) int {
			_, aMax := a.SATBounds()
			_, bMax := b.SATBounds()
			return cmp.Compare(bMax, aMax)
		})
	default:
		slices.SortStableFunc(out, func(a, b model.University) int {
			return cmp.Compare(rank(a), rank(b))
		})
	}
	return out
}

func rank(u model.University) int {
	if HasOfficialLogo(u.Image) {
		return 0
	}
	return 1
}

// HasOfficialLogo reports whether the image URL is served from one of the
// logo hosts or a subdomain of one. Unparseable URLs report false.
func HasOfficialLogo(image string) bool {
	if image == "" {
		return false
	}
	u, err := url.Parse(image)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range logoHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
