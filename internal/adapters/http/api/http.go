// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	service "github.com/okian/campus/internal/app"
	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/pkg/logger"
)

//nolint:gochecknoglobals // shared codec config
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	UniversityDependencies
	CompareDependencies
	ScoreDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	universitiesHandler *UniversitiesHandler
	compareHandler      *CompareHandler
	scoreHandler        *ScoreHandler
}

// Option configures the Server.
type Option func(*options)

type options struct {
	locale i18n.Locale
	log    logger.Logger
}

// WithDefaultLocale sets the locale used when a request has no lang parameter.
func WithDefaultLocale(loc i18n.Locale) Option {
	return func(o *options) {
		if loc != "" {
			o.locale = loc
		}
	}
}

// WithLogger sets the logger for failed requests.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := options{locale: i18n.Korean, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	base := handlerBase{locale: o.locale, log: o.log.Named("api")}
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		universitiesHandler: &UniversitiesHandler{handlerBase: base, deps: deps},
		compareHandler:      &CompareHandler{handlerBase: base, deps: deps},
		scoreHandler:        &ScoreHandler{handlerBase: base, deps: deps},
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /universities", MetricsMiddleware(SessionMiddleware(s.universitiesHandler.HandleBrowse), "universities"))
	mux.HandleFunc("POST /universities/more", MetricsMiddleware(SessionMiddleware(s.universitiesHandler.HandleMore), "universities_more"))
	mux.HandleFunc("GET /universities/{id}", MetricsMiddleware(SessionMiddleware(s.universitiesHandler.HandleProfile), "university"))

	mux.HandleFunc("GET /compare", MetricsMiddleware(SessionMiddleware(s.compareHandler.HandleList), "compare"))
	mux.HandleFunc("POST /compare", MetricsMiddleware(SessionMiddleware(s.compareHandler.HandleAdd), "compare"))
	mux.HandleFunc("DELETE /compare/{id}", MetricsMiddleware(SessionMiddleware(s.compareHandler.HandleRemove), "compare_item"))
	mux.HandleFunc("GET /compare/table", MetricsMiddleware(SessionMiddleware(s.compareHandler.HandleTable), "compare_table"))
	mux.HandleFunc("GET /compare/candidates", MetricsMiddleware(SessionMiddleware(s.compareHandler.HandleCandidates), "compare_candidates"))

	mux.HandleFunc("POST /score", MetricsMiddleware(s.scoreHandler.HandleScore, "score"))
}

// handlerBase holds what every session handler shares.
type handlerBase struct {
	locale i18n.Locale
	log    logger.Logger
}

// localizer resolves the lang query parameter, falling back to the default.
func (h handlerBase) localizer(r *http.Request) *i18n.Localizer {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.Lookup(lang)
	}
	return i18n.For(h.locale)
}

// fail maps err to a status and writes it. Server errors are logged.
func (h handlerBase) fail(ctx context.Context, w http.ResponseWriter, op string, err error, body errorResponse) {
	status, code := statusOf(err)
	if status >= statusInternalError {
		h.log.Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
	}
	body.Code = code
	if body.Message == "" {
		body.Message = Wrap(op, err).Error()
	}
	writeJSON(w, status, body)
}

type errorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Comparison any    `json:"comparison,omitempty"`
}

// statusOf maps domain and service error kinds to an HTTP status and code.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, compare.ErrAlreadyAdded):
		return http.StatusConflict, "already_added"
	case errors.Is(err, compare.ErrNotEnoughSelected):
		return http.StatusConflict, "not_enough_selected"
	case errors.Is(err, compare.ErrLimitReached):
		return http.StatusUnprocessableEntity, "limit_reached"
	case errors.Is(err, compare.ErrUnknownUniversity), errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrBackpressure), errors.Is(err, ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, service.ErrStopped), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
