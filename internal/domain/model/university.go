// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"strings"
)

// Default SAT bounds used when a range string cannot be parsed.
const (
	DefaultSATMin = 800
	DefaultSATMax = 1600
)

// University is one catalog record. Records are read-only once loaded.
// Both name fields are kept; the caller chooses which one to display.
type University struct {
	ID                      string                   `json:"id"`
	Name                    string                   `json:"name"`
	EnglishName             string                   `json:"englishName"`
	Location                string                   `json:"location"`
	Tuition                 float64                  `json:"tuition"`
	AcceptanceRate          float64                  `json:"acceptanceRate"`
	SATRange                string                   `json:"satRange"`
	ACTRange                string                   `json:"actRange"`
	Image                   string                   `json:"image"`
	Type                    string                   `json:"type"`
	Size                    string                   `json:"size"`
	EstimatedGPA            *float64                 `json:"estimatedGPA,omitempty"`
	AcademicInfo            AcademicInfo             `json:"academicInfo"`
	ApplicationRequirements *ApplicationRequirements `json:"applicationRequirements,omitempty"`
	Programs                []string                 `json:"programs,omitempty"`
}

// AcademicInfo holds outcome data.
type AcademicInfo struct {
	GraduationRate *float64    `json:"graduationRate,omitempty"`
	DegreeTypes    DegreeTypes `json:"degreeTypes"`
}

// DegreeTypes flags which degree levels are offered.
type DegreeTypes struct {
	Bachelors bool `json:"bachelors"`
	Masters   bool `json:"masters"`
	Doctoral  bool `json:"doctoral"`
}

// ApplicationRequirements holds free-text status per admission criterion,
// e.g. "Required", "Not required", "Not considered".
type ApplicationRequirements struct {
	GPA                string `json:"gpa,omitempty"`
	Rank               string `json:"rank,omitempty"`
	Record             string `json:"record,omitempty"`
	PrepProgram        string `json:"prepProgram,omitempty"`
	Recommendations    string `json:"recommendations,omitempty"`
	Competencies       string `json:"competencies,omitempty"`
	WorkExperience     string `json:"workExperience,omitempty"`
	Essay              string `json:"essay,omitempty"`
	LegacyStatus       string `json:"legacyStatus,omitempty"`
	TestScores         string `json:"testScores,omitempty"`
	EnglishProficiency string `json:"englishProficiency,omitempty"`
}

// Requirement is one named admission criterion with its raw status.
type Requirement struct {
	Key    string
	Status string
}

// List returns the non-empty criteria in display order.
func (r *ApplicationRequirements) List() []Requirement {
	if r == nil {
		return nil
	}
	all := []Requirement{
		{Key: "gpa", Status: r.GPA},
		{Key: "rank", Status: r.Rank},
		{Key: "record", Status: r.Record},
		{Key: "prepProgram", Status: r.PrepProgram},
		{Key: "recommendations", Status: r.Recommendations},
		{Key: "competencies", Status: r.Competencies},
		{Key: "workExperience", Status: r.WorkExperience},
		{Key: "essay", Status: r.Essay},
		{Key: "legacyStatus", Status: r.LegacyStatus},
		{Key: "testScores", Status: r.TestScores},
		{Key: "englishProficiency", Status: r.EnglishProficiency},
	}
	out := all[:0]
	for _, req := range all {
		if req.Status != "" {
			out = append(out, req)
		}
	}
	return out
}

// SATBounds parses SATRange, substituting DefaultSATMin/DefaultSATMax for
// any half that is missing, non-numeric or zero.
func (u University) SATBounds() (lo, hi int) {
	return ParseRange(u.SATRange, DefaultSATMin, DefaultSATMax)
}

// ParseRange splits "<min>-<max>" and reads a leading integer from each half.
func ParseRange(s string, defMin, defMax int) (lo, hi int) {
	first, second, _ := strings.Cut(s, "-")
	return leadingInt(first, defMin), leadingInt(second, defMax)
}

// leadingInt reads optional sign and digits after trimming spaces. Zero is
// treated as unparsed.
func leadingInt(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return def
	}
	return n
}
