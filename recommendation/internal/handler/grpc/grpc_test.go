package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"singmeasong/gen"
	"singmeasong/recommendation/internal/controller/recommendation"
	"singmeasong/recommendation/internal/repository/memory"
)

type highTierRandom struct{}

func (highTierRandom) Float64() float64 { return 0 }
func (highTierRandom) Intn(int) int     { return 0 }

func newHandler() *Handler {
	ctrl := recommendation.New(memory.New(zap.NewNop()), nil, highTierRandom{}, zap.NewNop())
	return New(ctrl, zap.NewNop(), tally.NoopScope)
}

func TestHandler(t *testing.T) {
	ctx := context.Background()
	h := newHandler()

	ins, err := h.Insert(ctx, &gen.InsertRequest{Name: "song", YoutubeLink: "https://www.youtube.com/watch?v=1"})
	require.NoError(t, err)
	id := ins.Recommendation.Id
	assert.Equal(t, int64(0), ins.Recommendation.Score)

	_, err = h.Insert(ctx, &gen.InsertRequest{Name: "song", YoutubeLink: "https://www.youtube.com/watch?v=2"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	_, err = h.Insert(ctx, &gen.InsertRequest{Name: "other", YoutubeLink: "invalidurl"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = h.Insert(ctx, nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	up, err := h.Upvote(ctx, &gen.VoteRequest{RecommendationId: id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), up.Recommendation.Score)

	_, err = h.Upvote(ctx, &gen.VoteRequest{RecommendationId: 99})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = h.Downvote(ctx, &gen.VoteRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	got, err := h.Get(ctx, &gen.GetRequest{RecommendationId: id})
	require.NoError(t, err)
	assert.Equal(t, "song", got.Recommendation.Name)

	all, err := h.GetAll(ctx, &gen.GetAllRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Recommendations, 1)

	top, err := h.GetTop(ctx, &gen.GetTopRequest{Amount: 5})
	require.NoError(t, err)
	assert.Len(t, top.Recommendations, 1)
	_, err = h.GetTop(ctx, &gen.GetTopRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	random, err := h.GetRandom(ctx, &gen.GetRandomRequest{})
	require.NoError(t, err)
	assert.Equal(t, id, random.Recommendation.Id)

	for range 6 {
		down, err := h.Downvote(ctx, &gen.VoteRequest{RecommendationId: id})
		require.NoError(t, err)
		assert.False(t, down.Removed)
		require.NotNil(t, down.Recommendation)
	}
	down, err := h.Downvote(ctx, &gen.VoteRequest{RecommendationId: id})
	require.NoError(t, err)
	assert.True(t, down.Removed)
	assert.Nil(t, down.Recommendation)
	_, err = h.Get(ctx, &gen.GetRequest{RecommendationId: id})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = h.GetRandom(ctx, &gen.GetRandomRequest{})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
