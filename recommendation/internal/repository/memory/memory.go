package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"singmeasong/pkg/logging"
	"singmeasong/recommendation/internal/repository"
	"singmeasong/recommendation/pkg/model"
)

const tracerID = "recommendation-repository-memory"

// Repository defines an in-memory recommendation repository.
type Repository struct {
	sync.RWMutex
	data   map[model.RecommendationID]*model.Recommendation
	names  map[string]model.RecommendationID
	lastID model.RecommendationID
	logger *zap.Logger
}

// New creates a new memory repository.
func New(logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Repository{
		data:   map[model.RecommendationID]*model.Recommendation{},
		names:  map[string]model.RecommendationID{},
		logger: logger,
	}
}

// Create stores a new recommendation with a zero score. It returns
// repository.ErrAlreadyExists when the name is taken.
func (r *Repository) Create(ctx context.Context, name string, youtubeLink string) (*model.Recommendation, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()
	r.Lock()
	defer r.Unlock()
	if _, ok := r.names[name]; ok {
		return nil, repository.ErrAlreadyExists
	}
	r.lastID++
	rec := &model.Recommendation{ID: r.lastID, Name: name, YoutubeLink: youtubeLink}
	r.data[rec.ID] = rec
	r.names[name] = rec.ID
	r.logger.Debug("Created recommendation", zap.Int64(logging.FieldID, int64(rec.ID)))
	return copyOf(rec), nil
}

// Find retrieves a recommendation by id.
func (r *Repository) Find(ctx context.Context, id model.RecommendationID) (*model.Recommendation, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Find")
	defer span.End()
	r.RLock()
	defer r.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyOf(rec), nil
}

// FindByName retrieves a recommendation by its unique name.
func (r *Repository) FindByName(ctx context.Context, name string) (*model.Recommendation, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/FindByName")
	defer span.End()
	r.RLock()
	defer r.RUnlock()
	id, ok := r.names[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyOf(r.data[id]), nil
}

// FindAll retrieves the recommendations matching filter, most recent first.
func (r *Repository) FindAll(ctx context.Context, filter *model.ScoreFilter) ([]*model.Recommendation, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/FindAll")
	defer span.End()
	r.RLock()
	defer r.RUnlock()
	res := r.filtered(filter)
	slices.SortFunc(res, func(a, b *model.Recommendation) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return res, nil
}

// Count returns the number of recommendations matching filter.
func (r *Repository) Count(ctx context.Context, filter *model.ScoreFilter) (int, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Count")
	defer span.End()
	r.RLock()
	defer r.RUnlock()
	n := 0
	for _, rec := range r.data {
		if filter.Match(rec.Score) {
			n++
		}
	}
	return n, nil
}

// UpdateScore adds delta to the score of a recommendation and returns the result.
func (r *Repository) UpdateScore(ctx context.Context, id model.RecommendationID, delta int) (*model.Recommendation, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/UpdateScore")
	defer span.End()
	r.Lock()
	defer r.Unlock()
	rec, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	rec.Score += delta
	return copyOf(rec), nil
}

// Remove deletes a recommendation.
func (r *Repository) Remove(ctx context.Context, id model.RecommendationID) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Remove")
	defer span.End()
	r.Lock()
	defer r.Unlock()
	rec, ok := r.data[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.names, rec.Name)
	delete(r.data, id)
	r.logger.Debug("Removed recommendation", zap.Int64(logging.FieldID, int64(id)))
	return nil
}

// GetAmountByScore returns up to amount recommendations with the highest scores.
func (r *Repository) GetAmountByScore(ctx context.Context, amount int) ([]*model.Recommendation, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetAmountByScore")
	defer span.End()
	r.RLock()
	defer r.RUnlock()
	res := r.filtered(nil)
	slices.SortFunc(res, func(a, b *model.Recommendation) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if amount < len(res) {
		res = res[:amount]
	}
	return res, nil
}

// DeleteAll removes every recommendation and restarts the id sequence.
func (r *Repository) DeleteAll(ctx context.Context) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteAll")
	defer span.End()
	r.Lock()
	defer r.Unlock()
	r.data = map[model.RecommendationID]*model.Recommendation{}
	r.names = map[string]model.RecommendationID{}
	r.lastID = 0
	r.logger.Info("Deleted all recommendations")
	return nil
}

// filtered must be called with the lock held.
func (r *Repository) filtered(filter *model.ScoreFilter) []*model.Recommendation {
	res := make([]*model.Recommendation, 0, len(r.data))
	for _, rec := range r.data {
		if filter.Match(rec.Score) {
			res = append(res, copyOf(rec))
		}
	}
	return res
}

func copyOf(rec *model.Recommendation) *model.Recommendation {
	c := *rec
	return &c
}
