package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"singmeasong/pkg/logging"
	"singmeasong/pkg/metrics"
	"singmeasong/pkg/validator"
	"singmeasong/recommendation/internal/controller/recommendation"
	"singmeasong/recommendation/pkg/model"
)

// Handler defines a recommendation HTTP handler.
type Handler struct {
	ctrl   *recommendation.Controller
	logger *zap.Logger
	scope  tally.Scope
}

// Options configures the router built by Routes.
type Options struct {
	// TestMode exposes POST /test/reset.
	TestMode    bool
	CORSOrigins []string
	// Limiter, when set, wraps every route.
	Limiter func(http.Handler) http.Handler
}

// New creates a new recommendation HTTP handler.
func New(ctrl *recommendation.Controller, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	return &Handler{ctrl: ctrl, logger: logger, scope: scope}
}

// Routes builds the router serving the recommendation API.
func (h *Handler) Routes(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if opts.Limiter != nil {
		r.Use(opts.Limiter)
	}

	r.Route("/recommendations", func(r chi.Router) {
		r.Post("/", h.instrument("Insert", h.Insert))
		r.Get("/", h.instrument("GetAll", h.GetAll))
		r.Get("/random", h.instrument("GetRandom", h.GetRandom))
		r.Get("/top/{amount}", h.instrument("GetTop", h.GetTop))
		r.Get("/{id}", h.instrument("Get", h.Get))
		r.Post("/{id}/upvote", h.instrument("Upvote", h.Upvote))
		r.Post("/{id}/downvote", h.instrument("Downvote", h.Downvote))
	})
	if opts.TestMode {
		r.Post("/test/reset", h.instrument("Reset", h.Reset))
	}
	return r
}

// handlerFunc returns the status written to the client and the error
// that produced it, if any.
type handlerFunc func(w http.ResponseWriter, req *http.Request) (int, error)

func (h *Handler) instrument(endpoint string, fn handlerFunc) http.HandlerFunc {
	m := metrics.NewEndpointMetrics(h.scope, "http", endpoint)
	return func(w http.ResponseWriter, req *http.Request) {
		m.Calls.Inc(1)
		start := time.Now()
		status, err := fn(w, req)
		m.Latency.Record(time.Since(start))
		switch {
		case status < 400:
			m.Successes.Inc(1)
		case status == http.StatusNotFound:
			m.NotFoundErrors.Inc(1)
		case status == http.StatusConflict:
			m.ConflictErrors.Inc(1)
		case status < 500:
			m.InvalidArgumentErrors.Inc(1)
		default:
			m.InternalErrors.Inc(1)
			h.logger.Warn("Request failed",
				zap.String(logging.FieldEndpoint, endpoint),
				zap.String("request_id", middleware.GetReqID(req.Context())),
				zap.Error(err),
			)
		}
	}
}

// Insert handles POST /recommendations requests.
func (h *Handler) Insert(w http.ResponseWriter, req *http.Request) (int, error) {
	var data model.NewRecommendation
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		return h.respondError(w, http.StatusUnprocessableEntity, "malformed body", err)
	}
	rec, err := h.ctrl.Insert(req.Context(), data)
	if err != nil {
		return h.respondControllerError(w, err)
	}
	return h.respondJSON(w, http.StatusCreated, rec)
}

// Upvote handles POST /recommendations/{id}/upvote requests.
func (h *Handler) Upvote(w http.ResponseWriter, req *http.Request) (int, error) {
	id, err := recommendationID(req)
	if err != nil {
		return h.respondError(w, http.StatusBadRequest, "invalid id", err)
	}
	if _, err := h.ctrl.Upvote(req.Context(), id); err != nil {
		return h.respondControllerError(w, err)
	}
	w.WriteHeader(http.StatusOK)
	return http.StatusOK, nil
}

// Downvote handles POST /recommendations/{id}/downvote requests.
func (h *Handler) Downvote(w http.ResponseWriter, req *http.Request) (int, error) {
	id, err := recommendationID(req)
	if err != nil {
		return h.respondError(w, http.StatusBadRequest, "invalid id", err)
	}
	if _, err := h.ctrl.Downvote(req.Context(), id); err != nil {
		return h.respondControllerError(w, err)
	}
	w.WriteHeader(http.StatusOK)
	return http.StatusOK, nil
}

// GetAll handles GET /recommendations requests.
func (h *Handler) GetAll(w http.ResponseWriter, req *http.Request) (int, error) {
	recs, err := h.ctrl.GetAll(req.Context())
	if err != nil {
		return h.respondControllerError(w, err)
	}
	return h.respondJSON(w, http.StatusOK, nonNil(recs))
}

// Get handles GET /recommendations/{id} requests.
func (h *Handler) Get(w http.ResponseWriter, req *http.Request) (int, error) {
	id, err := recommendationID(req)
	if err != nil {
		return h.respondError(w, http.StatusBadRequest, "invalid id", err)
	}
	rec, err := h.ctrl.Get(req.Context(), id)
	if err != nil {
		return h.respondControllerError(w, err)
	}
	return h.respondJSON(w, http.StatusOK, rec)
}

// GetTop handles GET /recommendations/top/{amount} requests.
func (h *Handler) GetTop(w http.ResponseWriter, req *http.Request) (int, error) {
	amount, err := strconv.Atoi(chi.URLParam(req, "amount"))
	if err != nil {
		return h.respondError(w, http.StatusUnprocessableEntity, "amount must be a positive integer", err)
	}
	recs, err := h.ctrl.GetTop(req.Context(), amount)
	if err != nil {
		return h.respondControllerError(w, err)
	}
	return h.respondJSON(w, http.StatusOK, nonNil(recs))
}

// GetRandom handles GET /recommendations/random requests.
func (h *Handler) GetRandom(w http.ResponseWriter, req *http.Request) (int, error) {
	rec, err := h.ctrl.GetRandom(req.Context())
	if err != nil {
		return h.respondControllerError(w, err)
	}
	return h.respondJSON(w, http.StatusOK, rec)
}

// Reset handles POST /test/reset requests.
func (h *Handler) Reset(w http.ResponseWriter, req *http.Request) (int, error) {
	if err := h.ctrl.DeleteAll(req.Context()); err != nil {
		return h.respondControllerError(w, err)
	}
	w.WriteHeader(http.StatusOK)
	return http.StatusOK, nil
}

func recommendationID(req *http.Request) (model.RecommendationID, error) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return model.RecommendationID(id), nil
}

func nonNil(recs []*model.Recommendation) []*model.Recommendation {
	if recs == nil {
		return []*model.Recommendation{}
	}
	return recs
}

type errorResponse struct {
	Error  string                 `json:"error"`
	Fields []validator.FieldError `json:"fields,omitempty"`
}

func (h *Handler) respondControllerError(w http.ResponseWriter, err error) (int, error) {
	switch {
	case errors.Is(err, recommendation.ErrNotFound):
		return h.respondError(w, http.StatusNotFound, recommendation.ErrNotFound.Error(), err)
	case errors.Is(err, recommendation.ErrConflict):
		return h.respondError(w, http.StatusConflict, recommendation.ErrConflict.Error(), err)
	case errors.Is(err, recommendation.ErrUnprocessable):
		var verr *validator.Error
		if errors.As(err, &verr) {
			status, _ := h.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Fields: verr.Fields})
			return status, err
		}
		return h.respondError(w, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		return h.respondError(w, http.StatusInternalServerError, "internal error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) (int, error) {
	h.respondJSON(w, status, errorResponse{Error: message})
	return status, err
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Response encode error", zap.Error(err))
		return status, err
	}
	return status, nil
}
