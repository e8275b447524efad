package api

import (
	"net/http"

	"github.com/okian/campus/internal/domain/scoring"
)

// ScoreDependencies defines the score calculation.
type ScoreDependencies interface {
	Score(in scoring.Input) scoring.Result
}

// ScoreHandler handles profile score requests.
type ScoreHandler struct {
	handlerBase
	deps ScoreDependencies
}

// scoreRequest mirrors the OpenAPI schema for POST /score. Out of range
// numbers are accepted and count as absent.
type scoreRequest struct {
	GPA     *float64 `json:"gpa"`
	Test    string   `json:"test" validate:"omitempty,oneof=SAT ACT sat act"`
	SATMath *int     `json:"sat_math"`
	SATEBRW *int     `json:"sat_ebrw"`
	ACT     *int     `json:"act"`
}

// HandleScore handles POST /score requests.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.score"
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Score(scoring.Input{
		GPA:     req.GPA,
		Test:    scoring.ParseTestType(req.Test),
		SATMath: req.SATMath,
		SATEBRW: req.SATEBRW,
		ACT:     req.ACT,
	}))
}
