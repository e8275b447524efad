// Package i18n is the single localization lookup for the campus core.
// Formatters take a *Localizer instead of branching on the locale inline.
package i18n

import (
	"math"
	"strconv"
	"strings"

	"github.com/okian/campus/internal/domain/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is one of the two supported display locales.
type Locale string

// Supported locales.
const (
	Korean  Locale = "ko"
	English Locale = "en"
)

// NotAvailable renders a missing value in any locale.
const NotAvailable = "N/A"

// RequirementKind classifies an admission criterion status.
type RequirementKind string

// Requirement kinds.
const (
	RequirementRequired      RequirementKind = "required"
	RequirementOptional      RequirementKind = "optional"
	RequirementNotConsidered RequirementKind = "not-considered"
)

var (
	supported = []language.Tag{language.Korean, language.English} //nolint:gochecknoglobals // fixed locale table
	matcher   = language.NewMatcher(supported)                     //nolint:gochecknoglobals // built once
	locales   = map[Locale]*Localizer{                             //nolint:gochecknoglobals // immutable after init
		Korean:  newLocalizer(Korean, language.Korean, koMessages),
		English: newLocalizer(English, language.English, enMessages),
	}
)

// Localizer resolves labels and formats values for one locale.
type Localizer struct {
	locale   Locale
	tag      language.Tag
	messages map[string]string
	printer  *message.Printer
}

func newLocalizer(loc Locale, tag language.Tag, msgs map[string]string) *Localizer {
	return &Localizer{locale: loc, tag: tag, messages: msgs, printer: message.NewPrinter(tag)}
}

// Lookup maps any BCP-47 tag to a supported locale. Unknown or empty tags
// resolve to Korean.
func Lookup(tag string) *Localizer {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return locales[Korean]
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return locales[Korean]
	}
	return For(Locale(supported[idx].String()))
}

// For returns the localizer for loc, falling back to Korean.
func For(loc Locale) *Localizer {
	if l, ok := locales[loc]; ok {
		return l
	}
	return locales[Korean]
}

// Locale returns the resolved locale.
func (l *Localizer) Locale() Locale { return l.locale }

// Tag returns the language tag used for collation and number formatting.
func (l *Localizer) Tag() language.Tag { return l.tag }

// T returns the label for key, or key itself when unknown.
func (l *Localizer) T(key string) string {
	if s, ok := l.messages[key]; ok {
		return s
	}
	return key
}

// Format returns the label for key with {placeholders} substituted.
func (l *Localizer) Format(key string, args map[string]string) string {
	s := l.T(key)
	for k, v := range args {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

// DisplayName picks the name field shown in this locale. An empty field
// falls back to the other one.
func (l *Localizer) DisplayName(u model.University) string {
	if l.locale == English {
		if u.EnglishName != "" {
			return u.EnglishName
		}
		return u.Name
	}
	if u.Name != "" {
		return u.Name
	}
	return u.EnglishName
}

// Currency renders a dollar amount with locale digit grouping.
func (l *Localizer) Currency(v float64) string {
	if v == math.Trunc(v) {
		return "$" + l.printer.Sprintf("%d", int64(v))
	}
	return "$" + l.printer.Sprintf("%.2f", v)
}

// Percent renders v followed by a percent sign using the shortest form.
func (l *Localizer) Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Fixed1 renders v with one decimal place.
func (l *Localizer) Fixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// DegreeTypes joins the offered degree levels, or NotAvailable when none.
func (l *Localizer) DegreeTypes(d model.DegreeTypes) string {
	parts := make([]string, 0, 3)
	if d.Bachelors {
		parts = append(parts, l.T("degree.bachelors"))
	}
	if d.Masters {
		parts = append(parts, l.T("degree.masters"))
	}
	if d.Doctoral {
		parts = append(parts, l.T("degree.doctoral"))
	}
	if len(parts) == 0 {
		return NotAvailable
	}
	return strings.Join(parts, ", ")
}

// Size translates the catalog size band. Catalog values are Korean.
func (l *Localizer) Size(size string) string {
	if l.locale == Korean {
		return size
	}
	if s, ok := sizeEnglish[size]; ok {
		return s
	}
	return size
}

// Program translates a program name. Catalog values are English.
func (l *Localizer) Program(name string) string {
	if l.locale == English {
		return name
	}
	if s, ok := programKorean[name]; ok {
		return s
	}
	return name
}

// ClassifyRequirement buckets a free-text requirement status.
func ClassifyRequirement(status string) RequirementKind {
	switch {
	case status == "":
		return RequirementNotConsidered
	case strings.Contains(status, "Required"):
		return RequirementRequired
	case strings.Contains(status, "Not required"), strings.Contains(status, "considered if submitted"):
		return RequirementOptional
	default:
		return RequirementNotConsidered
	}
}

// RequirementStatus returns the localized badge label. Statuses that match
// no known phrase are returned unchanged.
func (l *Localizer) RequirementStatus(status string) string {
	switch {
	case status == "":
		return l.T("requirement.not-considered")
	case strings.Contains(status, "Required"):
		return l.T("requirement.required")
	case strings.Contains(status, "Not required"), strings.Contains(status, "considered if submitted"):
		return l.T("requirement.optional")
	case strings.Contains(status, "Not considered"):
		return l.T("requirement.not-considered")
	default:
		return status
	}
}

// ToastAdded is the confirmation shown after adding name to the list.
func (l *Localizer) ToastAdded(name string) string {
	return l.Format("compare.toast.added", map[string]string{"name": name})
}
