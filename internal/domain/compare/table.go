package compare

import (
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/model"
)

// Field is one comparison row: a stable key, a label key and a renderer.
type Field struct {
	Key      string
	LabelKey string
	render   func(model.University, *i18n.Localizer) string
}

// Render formats the field for u.
func (f Field) Render(u model.University, loc *i18n.Localizer) string {
	return f.render(u, loc)
}

// field pairs an accessor with a formatter. A false ok from get renders as
// i18n.NotAvailable.
func field[T any](key, labelKey string, get func(model.University) (T, bool), format func(*i18n.Localizer, T) string) Field {
	return Field{
		Key:      key,
		LabelKey: labelKey,
		render: func(u model.University, loc *i18n.Localizer) string {
			v, ok := get(u)
			if !ok {
				return i18n.NotAvailable
			}
			return format(loc, v)
		},
	}
}

// Group is a titled set of fields.
type Group struct {
	Key      string
	TitleKey string
	Fields   []Field
}

func text(get func(model.University) string) func(model.University) (string, bool) {
	return func(u model.University) (string, bool) {
		v := get(u)
		return v, v != ""
	}
}

func number(get func(model.University) float64) func(model.University) (float64, bool) {
	return func(u model.University) (float64, bool) { return get(u), true }
}

func optional(get func(model.University) *float64) func(model.University) (float64, bool) {
	return func(u model.University) (float64, bool) {
		p := get(u)
		if p == nil {
			return 0, false
		}
		return *p, true
	}
}

func raw(_ *i18n.Localizer, s string) string { return s }

// Groups returns the comparison layout.
func Groups() []Group {
	return []Group{
		{
			Key:      "basic",
			TitleKey: "compare.category.basic",
			Fields: []Field{
				field("location", "compare.field.location", text(func(u model.University) string { return u.Location }), raw),
				field("type", "compare.field.type", text(func(u model.University) string { return u.Type }), raw),
				field("size", "compare.field.size", text(func(u model.University) string { return u.Size }), (*i18n.Localizer).Size),
				field("tuition", "compare.field.tuition", number(func(u model.University) float64 { return u.Tuition }), (*i18n.Localizer).Currency),
			},
		},
		{
			Key:      "admission",
			TitleKey: "compare.category.admission",
			Fields: []Field{
				field("acceptanceRate", "compare.field.acceptance-rate", number(func(u model.University) float64 { return u.AcceptanceRate }), (*i18n.Localizer).Percent),
				field("satRange", "compare.field.sat-range", text(func(u model.University) string { return u.SATRange }), raw),
				field("actRange", "compare.field.act-range", text(func(u model.University) string { return u.ACTRange }), raw),
				field("estimatedGPA", "compare.field.gpa", optional(func(u model.University) *float64 { return u.EstimatedGPA }), (*i18n.Localizer).Fixed1),
			},
		},
		{
			Key:      "outcomes",
			TitleKey: "compare.category.outcomes",
			Fields: []Field{
				field("graduationRate", "compare.field.graduation-rate", optional(func(u model.University) *float64 { return u.AcademicInfo.GraduationRate }), (*i18n.Localizer).Percent),
				field("degreeTypes", "compare.field.degree-types", func(u model.University) (model.DegreeTypes, bool) { return u.AcademicInfo.DegreeTypes, true }, (*i18n.Localizer).DegreeTypes),
			},
		},
	}
}

// Column identifies one compared university.
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Row is one rendered field across all columns.
type Row struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Section is one rendered group.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Table is the rendered side-by-side comparison.
type Table struct {
	Columns   []Column  `json:"columns"`
	Sections  []Section `json:"sections"`
	OpenSlots int       `json:"open_slots"`
}

// Table projects the selection through Groups. It needs at least
// MinToCompare selected universities.
func (m *Manager) Table(loc *i18n.Localizer) (Table, error) {
	if !m.CanCompare() {
		return Table{}, &Error{Op: "table", Kind: ErrNotEnoughSelected}
	}
	return Build(m.selected, loc), nil
}

// Build renders the table for records without checking the count.
func Build(records []model.University, loc *i18n.Localizer) Table {
	t := Table{
		Columns:   make([]Column, 0, len(records)),
		OpenSlots: max(Limit-len(records), 0),
	}
	for _, u := range records {
		t.Columns = append(t.Columns, Column{ID: u.ID, Name: loc.DisplayName(u)})
	}
	for _, g := range Groups() {
		sec := Section{Key: g.Key, Title: loc.T(g.TitleKey), Rows: make([]Row, 0, len(g.Fields))}
		for _, f := range g.Fields {
			row := Row{Key: f.Key, Label: loc.T(f.LabelKey), Values: make([]string, 0, len(records))}
			for _, u := range records {
				row.Values = append(row.Values, f.Render(u, loc))
			}
			sec.Rows = append(sec.Rows, row)
		}
		t.Sections = append(t.Sections, sec)
	}
	return t
}
