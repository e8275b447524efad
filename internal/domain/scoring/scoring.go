// Package scoring computes the academic profile score from GPA and one
// standardized test.
package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default scoring configuration constants.
const (
	defaultGPAWeight  = 40
	defaultTestWeight = 40
	// DisplayMax is the ceiling shown next to the score. The formula itself
	// tops out at the sum of the two weights.
	DisplayMax = 100

	gpaScale = 4.0
	satScale = 1600.0
	actScale = 36.0
)

// Validation rules for each academic input.
const (
	gpaRule     = "gte=0,lte=4"
	satPartRule = "gte=200,lte=800"
	actRule     = "gte=1,lte=36"
)

// TestType selects which standardized test feeds the score.
type TestType string

// Test types.
const (
	TestNone TestType = ""
	TestSAT  TestType = "SAT"
	TestACT  TestType = "ACT"
)

// ParseTestType normalizes s. Unknown values mean no test.
func ParseTestType(s string) TestType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SAT":
		return TestSAT
	case "ACT":
		return TestACT
	default:
		return TestNone
	}
}

// Input is the typed academic profile. Nil fields are absent.
type Input struct {
	GPA     *float64 `json:"gpa,omitempty"`
	Test    TestType `json:"test_type,omitempty"`
	SATMath *int     `json:"sat_math,omitempty"`
	SATEBRW *int     `json:"sat_ebrw,omitempty"`
	ACT     *int     `json:"act,omitempty"`
}

// Form is the raw form state as typed by the user.
type Form struct {
	GPA      string `json:"gpa"`
	TestType string `json:"test_type"`
	SATMath  string `json:"sat_math"`
	SATEBRW  string `json:"sat_ebrw"`
	ACT      string `json:"act"`
}

// Input converts the form, dropping values that do not parse.
// Range checks happen at scoring time.
func (f Form) Input() Input {
	return Input{
		GPA:     parseFloat(f.GPA),
		Test:    ParseTestType(f.TestType),
		SATMath: parseInt(f.SATMath),
		SATEBRW: parseInt(f.SATEBRW),
		ACT:     parseInt(f.ACT),
	}
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// Result contains the computed score and its parts.
type Result struct {
	Score      int     `json:"score"`
	GPAPoints  float64 `json:"gpa_points"`
	TestPoints float64 `json:"test_points"`
	Ceiling    int     `json:"ceiling"`
	Max        int     `json:"max"`
}

// Scorer computes a profile score.
type Scorer interface {
	Score(in Input) Result
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithGPAWeight sets the points awarded for a perfect GPA.
func WithGPAWeight(w float64) Option {
	return func(c *Calculator) {
		if w > 0 {
			c.gpaWeight = w
		}
	}
}

// WithTestWeight sets the points awarded for a perfect test score.
func WithTestWeight(w float64) Option {
	return func(c *Calculator) {
		if w > 0 {
			c.testWeight = w
		}
	}
}

// Calculator implements Scorer with a fixed linear weighting.
type Calculator struct {
	gpaWeight  float64
	testWeight float64
	validate   *validator.Validate
}

// NewCalculator creates a calculator with configuration options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		gpaWeight:  defaultGPAWeight,
		testWeight: defaultTestWeight,
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score computes the rounded score. Out of range inputs count as absent.
// SAT needs both sections; otherwise ACT is used when chosen.
func (c *Calculator) Score(in Input) Result {
	var r Result
	if in.GPA != nil && c.valid(*in.GPA, gpaRule) {
		r.GPAPoints = *in.GPA / gpaScale * c.gpaWeight
	}
	switch {
	case in.Test == TestSAT && in.SATMath != nil && in.SATEBRW != nil &&
		c.valid(*in.SATMath, satPartRule) && c.valid(*in.SATEBRW, satPartRule):
		r.TestPoints = float64(*in.SATMath+*in.SATEBRW) / satScale * c.testWeight
	case in.Test == TestACT && in.ACT != nil && c.valid(*in.ACT, actRule):
		r.TestPoints = float64(*in.ACT) / actScale * c.testWeight
	}
	// math.Round rounds half away from zero.
	r.Score = int(math.Round(r.GPAPoints + r.TestPoints))
	r.Ceiling = int(math.Round(c.gpaWeight + c.testWeight))
	r.Max = DisplayMax
	return r
}

func (c *Calculator) valid(v any, rule string) bool {
	return c.validate.Var(v, rule) == nil
}

//nolint:gochecknoglobals // default calculator shared by Score
var defaultCalculator = NewCalculator()

// Score computes the score with the default weights.
func Score(in Input) Result {
	return defaultCalculator.Score(in)
}
