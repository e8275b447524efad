package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/types"
)

// CompareDependencies defines the comparison list operations.
type CompareDependencies interface {
	Comparison(ctx context.Context, sessionID string, loc *i18n.Localizer) (types.Comparison, error)
	Add(ctx context.Context, sessionID, id string, loc *i18n.Localizer) (types.Outcome, error)
	Remove(ctx context.Context, sessionID, id string, loc *i18n.Localizer) (types.Comparison, bool, error)
	Table(ctx context.Context, sessionID string, loc *i18n.Localizer) (compare.Table, error)
	Candidates(ctx context.Context, sessionID, term string, loc *i18n.Localizer) ([]types.Card, error)
}

// CompareHandler handles the session's comparison list.
type CompareHandler struct {
	handlerBase
	deps CompareDependencies
}

// addRequest mirrors the OpenAPI schema for POST /compare.
type addRequest struct {
	ID string `json:"id" validate:"required,max=128"`
}

// HandleList handles GET /compare requests.
func (h *CompareHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_list"
	out, err := h.deps.Comparison(r.Context(), SessionID(r.Context()), h.localizer(r))
	if err != nil {
		h.fail(r.Context(), w, op, err, errorResponse{})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleAdd handles POST /compare requests.
func (h *CompareHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_add"
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	out, err := h.deps.Add(r.Context(), SessionID(r.Context()), req.ID, h.localizer(r))
	if err != nil {
		var body errorResponse
		var cerr *compare.Error
		if errors.As(err, &cerr) {
			body = errorResponse{Message: out.Message, Comparison: out.Comparison}
		}
		h.fail(r.Context(), w, op, err, body)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// HandleRemove handles DELETE /compare/{id} requests.
func (h *CompareHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_remove"
	out, _, err := h.deps.Remove(r.Context(), SessionID(r.Context()), r.PathValue("id"), h.localizer(r))
	if err != nil {
		h.fail(r.Context(), w, op, err, errorResponse{})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleTable handles GET /compare/table requests.
func (h *CompareHandler) HandleTable(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_table"
	loc := h.localizer(r)
	table, err := h.deps.Table(r.Context(), SessionID(r.Context()), loc)
	if err != nil {
		var body errorResponse
		if errors.Is(err, compare.ErrNotEnoughSelected) {
			body.Message = loc.T("compare.toast.not-enough")
		}
		h.fail(r.Context(), w, op, err, body)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// HandleCandidates handles GET /compare/candidates requests.
func (h *CompareHandler) HandleCandidates(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_candidates"
	cards, err := h.deps.Candidates(r.Context(), SessionID(r.Context()), r.URL.Query().Get("q"), h.localizer(r))
	if err != nil {
		h.fail(r.Context(), w, op, err, errorResponse{})
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
