package testutil

import (
	"math/rand"
	"time"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"singmeasong/gen"
	"singmeasong/pkg/logging"
	"singmeasong/recommendation/internal/controller/recommendation"
	"singmeasong/recommendation/internal/handler/grpc"
	"singmeasong/recommendation/internal/repository/memory"
)

// NewTestRecommendationGRPCServer returns a gRPC handler backed by the in-memory store.
func NewTestRecommendationGRPCServer(logger *zap.Logger) gen.RecommendationServiceServer {
	logger = logger.With(
		zap.String(logging.FieldService, "recommendation"),
	)
	r := memory.New(logger)
	ctrl := recommendation.New(r, nil, rand.New(rand.NewSource(time.Now().UnixNano())), logger)
	return grpc.New(ctrl, logger, tally.NoopScope)
}
