package grpc

import (
	"context"
	"errors"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"singmeasong/gen"
	"singmeasong/pkg/logging"
	"singmeasong/pkg/metrics"
	"singmeasong/recommendation/internal/controller/recommendation"
	"singmeasong/recommendation/pkg/model"
)

// Handler defines a recommendation gRPC handler.
type Handler struct {
	gen.UnimplementedRecommendationServiceServer
	ctrl             *recommendation.Controller
	logger           *zap.Logger
	insertMetrics    *metrics.EndpointMetrics
	upvoteMetrics    *metrics.EndpointMetrics
	downvoteMetrics  *metrics.EndpointMetrics
	getMetrics       *metrics.EndpointMetrics
	getAllMetrics    *metrics.EndpointMetrics
	getTopMetrics    *metrics.EndpointMetrics
	getRandomMetrics *metrics.EndpointMetrics
}

// New creates a new recommendation gRPC handler.
func New(ctrl *recommendation.Controller, logger *zap.Logger, scope tally.Scope) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "grpc"),
	)
	return &Handler{
		ctrl:             ctrl,
		logger:           logger,
		insertMetrics:    metrics.NewEndpointMetrics(scope, "grpc", "Insert"),
		upvoteMetrics:    metrics.NewEndpointMetrics(scope, "grpc", "Upvote"),
		downvoteMetrics:  metrics.NewEndpointMetrics(scope, "grpc", "Downvote"),
		getMetrics:       metrics.NewEndpointMetrics(scope, "grpc", "Get"),
		getAllMetrics:    metrics.NewEndpointMetrics(scope, "grpc", "GetAll"),
		getTopMetrics:    metrics.NewEndpointMetrics(scope, "grpc", "GetTop"),
		getRandomMetrics: metrics.NewEndpointMetrics(scope, "grpc", "GetRandom"),
	}
}

// Insert creates a recommendation.
func (h *Handler) Insert(ctx context.Context, req *gen.InsertRequest) (*gen.InsertResponse, error) {
	h.insertMetrics.Calls.Inc(1)
	if req == nil {
		h.insertMetrics.InvalidArgumentErrors.Inc(1)
		return nil, status.Error(codes.InvalidArgument, "nil req")
	}
	rec, err := h.ctrl.Insert(ctx, model.NewRecommendation{Name: req.Name, YoutubeLink: req.YoutubeLink})
	if err != nil {
		return nil, h.statusError(h.insertMetrics, err)
	}
	h.insertMetrics.Successes.Inc(1)
	return &gen.InsertResponse{Recommendation: model.RecommendationToWire(rec)}, nil
}

// Upvote increments the score of a recommendation.
func (h *Handler) Upvote(ctx context.Context, req *gen.VoteRequest) (*gen.VoteResponse, error) {
	h.upvoteMetrics.Calls.Inc(1)
	if req.GetRecommendationId() <= 0 {
		h.upvoteMetrics.InvalidArgumentErrors.Inc(1)
		return nil, status.Error(codes.InvalidArgument, "nil req or empty id")
	}
	rec, err := h.ctrl.Upvote(ctx, model.RecommendationID(req.RecommendationId))
	if err != nil {
		return nil, h.statusError(h.upvoteMetrics, err)
	}
	h.upvoteMetrics.Successes.Inc(1)
	return &gen.VoteResponse{Recommendation: model.RecommendationToWire(rec)}, nil
}

// Downvote decrements the score of a recommendation, removing it below the threshold.
func (h *Handler) Downvote(ctx context.Context, req *gen.VoteRequest) (*gen.VoteResponse, error) {
	h.downvoteMetrics.Calls.Inc(1)
	if req.GetRecommendationId() <= 0 {
		h.downvoteMetrics.InvalidArgumentErrors.Inc(1)
		return nil, status.Error(codes.InvalidArgument, "nil req or empty id")
	}
	rec, err := h.ctrl.Downvote(ctx, model.RecommendationID(req.RecommendationId))
	if err != nil {
		return nil, h.statusError(h.downvoteMetrics, err)
	}
	h.downvoteMetrics.Successes.Inc(1)
	return &gen.VoteResponse{Recommendation: model.RecommendationToWire(rec), Removed: rec == nil}, nil
}

// Get returns a recommendation by id.
func (h *Handler) Get(ctx context.Context, req *gen.GetRequest) (*gen.GetResponse, error) {
	h.getMetrics.Calls.Inc(1)
	if req.GetRecommendationId() <= 0 {
		h.getMetrics.InvalidArgumentErrors.Inc(1)
		return nil, status.Error(codes.InvalidArgument, "nil req or empty id")
	}
	rec, err := h.ctrl.Get(ctx, model.RecommendationID(req.RecommendationId))
	if err != nil {
		return nil, h.statusError(h.getMetrics, err)
	}
	h.getMetrics.Successes.Inc(1)
	return &gen.GetResponse{Recommendation: model.RecommendationToWire(rec)}, nil
}

// GetAll returns every recommendation, most recent first.
func (h *Handler) GetAll(ctx context.Context, _ *gen.GetAllRequest) (*gen.ListResponse, error) {
	h.getAllMetrics.Calls.Inc(1)
	recs, err := h.ctrl.GetAll(ctx)
	if err != nil {
		return nil, h.statusError(h.getAllMetrics, err)
	}
	h.getAllMetrics.Successes.Inc(1)
	return &gen.ListResponse{Recommendations: model.RecommendationsToWire(recs)}, nil
}

// GetTop returns the highest scored recommendations.
func (h *Handler) GetTop(ctx context.Context, req *gen.GetTopRequest) (*gen.ListResponse, error) {
	h.getTopMetrics.Calls.Inc(1)
	recs, err := h.ctrl.GetTop(ctx, int(req.GetAmount()))
	if err != nil {
		return nil, h.statusError(h.getTopMetrics, err)
	}
	h.getTopMetrics.Successes.Inc(1)
	return &gen.ListResponse{Recommendations: model.RecommendationsToWire(recs)}, nil
}

// GetRandom returns a random recommendation.
func (h *Handler) GetRandom(ctx context.Context, _ *gen.GetRandomRequest) (*gen.GetResponse, error) {
	h.getRandomMetrics.Calls.Inc(1)
	rec, err := h.ctrl.GetRandom(ctx)
	if err != nil {
		return nil, h.statusError(h.getRandomMetrics, err)
	}
	h.getRandomMetrics.Successes.Inc(1)
	return &gen.GetResponse{Recommendation: model.RecommendationToWire(rec)}, nil
}

func (h *Handler) statusError(m *metrics.EndpointMetrics, err error) error {
	switch {
	case errors.Is(err, recommendation.ErrNotFound):
		m.NotFoundErrors.Inc(1)
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, recommendation.ErrConflict):
		m.ConflictErrors.Inc(1)
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, recommendation.ErrUnprocessable):
		m.InvalidArgumentErrors.Inc(1)
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		m.InternalErrors.Inc(1)
		h.logger.Warn("Request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}
