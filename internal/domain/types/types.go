// Package types contains view types shared by the service, the HTTP API
// and the CLI.
package types

// Card is the list view of one university, localized for display.
type Card struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EnglishName    string  `json:"english_name"`
	Location       string  `json:"location"`
	Tuition        float64 `json:"tuition"`
	TuitionLabel   string  `json:"tuition_label"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	SATRange       string  `json:"sat_range"`
	ACTRange       string  `json:"act_range"`
	Image          string  `json:"image"`
	Type           string  `json:"type"`
	Size           string  `json:"size"`
	OfficialLogo   bool    `json:"official_logo"`
}

// Page is one browse response: the visible prefix of the matching records.
type Page struct {
	Total   int    `json:"total"`
	Matched int    `json:"matched"`
	Visible int    `json:"visible"`
	HasMore bool   `json:"has_more"`
	Pending bool   `json:"pending"`
	Items   []Card `json:"items"`
}

// Badge is one admission requirement with its classification.
type Badge struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Status string `json:"status"`
	Kind   string `json:"kind"`
}

// Profile is the detail view of one university.
type Profile struct {
	Card
	EstimatedGPA   string   `json:"estimated_gpa"`
	GraduationRate string   `json:"graduation_rate"`
	DegreeTypes    string   `json:"degree_types"`
	Requirements   []Badge  `json:"requirements"`
	Programs       []string `json:"programs"`
	InComparison   bool     `json:"in_comparison"`
	CanAdd         bool     `json:"can_add"`
}

// Comparison is the state of a session's comparison list.
type Comparison struct {
	Count      int    `json:"count"`
	Limit      int    `json:"limit"`
	CanCompare bool   `json:"can_compare"`
	CanAdd     bool   `json:"can_add"`
	OpenSlots  int    `json:"open_slots"`
	Items      []Card `json:"items"`
}

// Outcome is the result of a comparison list mutation.
type Outcome struct {
	Message    string     `json:"message"`
	Comparison Comparison `json:"comparison"`
}
