package service

import (
	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/sorting"
	"github.com/okian/campus/internal/domain/types"
	"github.com/samber/lo"
)

func cardOf(u model.University, loc *i18n.Localizer) types.Card {
	return types.Card{
		ID:             u.ID,
		Name:           loc.DisplayName(u),
		EnglishName:    u.EnglishName,
		Location:       u.Location,
		Tuition:        u.Tuition,
		TuitionLabel:   loc.Currency(u.Tuition),
		AcceptanceRate: u.AcceptanceRate,
		SATRange:       u.SATRange,
		ACTRange:       u.ACTRange,
		Image:          u.Image,
		Type:           u.Type,
		Size:           loc.Size(u.Size),
		OfficialLogo:   sorting.HasOfficialLogo(u.Image),
	}
}

func cardsOf(records []model.University, loc *i18n.Localizer) []types.Card {
	return lo.Map(records, func(u model.University, _ int) types.Card {
		return cardOf(u, loc)
	})
}

func profileOf(u model.University, m *compare.Manager, loc *i18n.Localizer) types.Profile {
	p := types.Profile{
		Card:           cardOf(u, loc),
		EstimatedGPA:   i18n.NotAvailable,
		GraduationRate: i18n.NotAvailable,
		DegreeTypes:    loc.DegreeTypes(u.AcademicInfo.DegreeTypes),
		Programs:       lo.Map(u.Programs, func(p string, _ int) string { return loc.Program(p) }),
		InComparison:   m.Contains(u.ID),
		CanAdd:         m.CanAdd(),
	}
	if u.EstimatedGPA != nil {
		p.EstimatedGPA = loc.Fixed1(*u.EstimatedGPA)
	}
	if u.AcademicInfo.GraduationRate != nil {
		p.GraduationRate = loc.Percent(*u.AcademicInfo.GraduationRate)
	}
	p.Requirements = lo.Map(u.ApplicationRequirements.List(), func(r model.Requirement, _ int) types.Badge {
		return types.Badge{
			Key:    r.Key,
			Label:  loc.T("requirement.label." + r.Key),
			Status: loc.RequirementStatus(r.Status),
			Kind:   string(i18n.ClassifyRequirement(r.Status)),
		}
	})
	return p
}

func comparisonOf(m *compare.Manager, loc *i18n.Localizer) types.Comparison {
	return types.Comparison{
		Count:      m.Len(),
		Limit:      compare.Limit,
		CanCompare: m.CanCompare(),
		CanAdd:     m.CanAdd(),
		OpenSlots:  m.OpenSlots(),
		Items:      cardsOf(m.Selection(), loc),
	}
}
