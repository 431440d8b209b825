package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"singmeasong/recommendation/internal/repository"
	"singmeasong/recommendation/pkg/model"
)

func seed(t *testing.T, r *Repository, scores ...int) []*model.Recommendation {
	t.Helper()
	ctx := context.Background()
	var res []*model.Recommendation
	for i, s := range scores {
		rec, err := r.Create(ctx, string(rune('A'+i)), "https://www.youtube.com/watch?v="+string(rune('a'+i)))
		require.NoError(t, err)
		if s != 0 {
			rec, err = r.UpdateScore(ctx, rec.ID, s)
			require.NoError(t, err)
		}
		res = append(res, rec)
	}
	return res
}

func ids(recs []*model.Recommendation) []model.RecommendationID {
	res := make([]model.RecommendationID, 0, len(recs))
	for _, r := range recs {
		res = append(res, r.ID)
	}
	return res
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())

	rec, err := r.Create(ctx, "Falamansa - Xote dos Milagres", "https://www.youtube.com/watch?v=chwyjJbcs1Y")
	require.NoError(t, err)
	assert.Equal(t, model.RecommendationID(1), rec.ID)
	assert.Equal(t, 0, rec.Score)

	got, err := r.Find(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	got, err = r.FindByName(ctx, "Falamansa - Xote dos Milagres")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = r.Find(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.FindByName(ctx, "unknown")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got.Score = 100
	stored, err := r.Find(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Score, "returned records must not alias stored ones")
}

func TestFindAllAndCount(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	seed(t, r, 20, 0, 11, 10)

	all, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []model.RecommendationID{4, 3, 2, 1}, ids(all))

	high, err := r.FindAll(ctx, &model.ScoreFilter{Score: 10, Op: model.ScoreOpGreaterThan})
	require.NoError(t, err)
	assert.Equal(t, []model.RecommendationID{3, 1}, ids(high))

	low, err := r.FindAll(ctx, &model.ScoreFilter{Score: 10, Op: model.ScoreOpLessThanOrEqual})
	require.NoError(t, err)
	assert.Equal(t, []model.RecommendationID{4, 2}, ids(low))

	n, err := r.Count(ctx, &model.ScoreFilter{Score: 10, Op: model.ScoreOpGreaterThan})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = r.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestUpdateScoreAndRemove(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	recs := seed(t, r, 0)

	rec, err := r.UpdateScore(ctx, recs[0].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Score)
	rec, err = r.UpdateScore(ctx, recs[0].ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Score)

	_, err = r.UpdateScore(ctx, 99, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, r.Remove(ctx, recs[0].ID))
	_, err = r.Find(ctx, recs[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Remove(ctx, recs[0].ID), repository.ErrNotFound)
}

func TestGetAmountByScore(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	seed(t, r, 5, 20, 10, 10)

	top, err := r.GetAmountByScore(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []model.RecommendationID{2, 4, 3}, ids(top))

	top, err = r.GetAmountByScore(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, top, 4)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	seed(t, r, 1, 2)

	require.NoError(t, r.DeleteAll(ctx))
	all, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	rec, err := r.Create(ctx, "A", "https://www.youtube.com/x")
	require.NoError(t, err)
	assert.Equal(t, model.RecommendationID(1), rec.ID)
}

func TestCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())

	rec, err := r.Create(ctx, "song", "https://www.youtube.com/a")
	require.NoError(t, err)
	_, err = r.Create(ctx, "song", "https://www.youtube.com/b")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	_, err = r.Create(ctx, "Song", "https://www.youtube.com/c")
	assert.NoError(t, err, "names are case sensitive")

	require.NoError(t, r.Remove(ctx, rec.ID))
	_, err = r.Create(ctx, "song", "https://www.youtube.com/d")
	assert.NoError(t, err, "removed names can be reused")
}

func TestConcurrentCreateSameName(t *testing.T) {
	const n = 50
	ctx := context.Background()
	r := New(zap.NewNop())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, "song", "https://www.youtube.com/a")
			if err != nil {
				assert.ErrorIs(t, err, repository.ErrAlreadyExists)
				return
			}
			mu.Lock()
			created++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	count, err := r.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConcurrentUpdateScore(t *testing.T) {
	const n = 200
	ctx := context.Background()
	r := New(zap.NewNop())
	recs := seed(t, r, 0, 0)

	var wg sync.WaitGroup
	for range n {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := r.UpdateScore(ctx, recs[0].ID, 1)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := r.UpdateScore(ctx, recs[1].ID, -1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.Find(ctx, recs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.Score)
	got, err = r.Find(ctx, recs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, -n, got.Score)
}
