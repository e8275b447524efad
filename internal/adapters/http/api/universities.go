package api

import (
	"context"
	"net/http"

	"github.com/okian/campus/internal/domain/filter"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/reveal"
	"github.com/okian/campus/internal/domain/types"
)

// UniversityDependencies defines the browse and profile operations.
type UniversityDependencies interface {
	Browse(ctx context.Context, sessionID string, c filter.Criteria, loc *i18n.Localizer) (types.Page, error)
	More(ctx context.Context, sessionID string) (reveal.State, bool, error)
	Profile(ctx context.Context, sessionID, id string, loc *i18n.Localizer) (types.Profile, error)
}

// UniversitiesHandler handles catalog browsing.
type UniversitiesHandler struct {
	handlerBase
	deps UniversityDependencies
}

// HandleBrowse handles GET /universities requests.
func (h *UniversitiesHandler) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	const op = "api.browse"
	c, err := criteriaFrom(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	page, err := h.deps.Browse(r.Context(), SessionID(r.Context()), c, h.localizer(r))
	if err != nil {
		h.fail(r.Context(), w, op, err, errorResponse{})
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HandleMore handles POST /universities/more requests.
func (h *UniversitiesHandler) HandleMore(w http.ResponseWriter, r *http.Request) {
	const op = "api.more"
	state, scheduled, err := h.deps.More(r.Context(), SessionID(r.Context()))
	if err != nil {
		h.fail(r.Context(), w, op, err, errorResponse{})
		return
	}
	if scheduled {
		writeJSON(w, http.StatusAccepted, state)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// HandleProfile handles GET /universities/{id} requests.
func (h *UniversitiesHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.profile"
	p, err := h.deps.Profile(r.Context(), SessionID(r.Context()), r.PathValue("id"), h.localizer(r))
	if err != nil {
		h.fail(r.Context(), w, op, err, errorResponse{})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
