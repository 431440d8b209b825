package recommendation

//go:generate mockgen -package=repository -source=controller.go -destination=../../../../gen/mock/recommendation/repository/repository.go

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"singmeasong/pkg/logging"
	"singmeasong/pkg/validator"
	"singmeasong/recommendation/internal/repository"
	"singmeasong/recommendation/pkg/model"
)

var (
	// ErrNotFound is returned when a recommendation does not exist or,
	// for random selection, when there are no recommendations at all.
	ErrNotFound = errors.New("recommendation not found")
	// ErrConflict is returned when inserting a name that is already taken.
	ErrConflict = errors.New("Recommendations names must be unique")
	// ErrUnprocessable is returned for malformed input.
	ErrUnprocessable = errors.New("unprocessable recommendation")
)

const (
	// removalScore is the lowest score a recommendation may keep; a downvote
	// below it deletes the record.
	removalScore = -5
	// tierScore splits recommendations into the high (> tierScore) and
	// low (<= tierScore) tiers used by random selection.
	tierScore = 10
	// highTierChance is the probability of drawing from the high tier.
	highTierChance = 0.7
)

type recommendationRepository interface {
	Create(ctx context.Context, name string, youtubeLink string) (*model.Recommendation, error)
	Find(ctx context.Context, id model.RecommendationID) (*model.Recommendation, error)
	FindByName(ctx context.Context, name string) (*model.Recommendation, error)
	FindAll(ctx context.Context, filter *model.ScoreFilter) ([]*model.Recommendation, error)
	Count(ctx context.Context, filter *model.ScoreFilter) (int, error)
	UpdateScore(ctx context.Context, id model.RecommendationID, delta int) (*model.Recommendation, error)
	Remove(ctx context.Context, id model.RecommendationID) error
	GetAmountByScore(ctx context.Context, amount int) ([]*model.Recommendation, error)
	DeleteAll(ctx context.Context) error
}

type voteIngester interface {
	Ingest(ctx context.Context) (chan model.VoteEvent, error)
}

// RandomSource supplies the randomness used by GetRandom.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a number in [0.0,1.0).
	Float64() float64
	// Intn returns a number in [0,n).
	Intn(n int) int
}

// Controller defines a recommendation service controller.
type Controller struct {
	repo      recommendationRepository
	ingester  voteIngester
	random    RandomSource
	validator *validator.Validator
	logger    *zap.Logger
}

// New creates a recommendation service controller. ingester may be nil
// when votes are only received through the API.
func New(repo recommendationRepository, ingester voteIngester, random RandomSource, logger *zap.Logger) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{
		repo:      repo,
		ingester:  ingester,
		random:    random,
		validator: validator.New(),
		logger:    logger,
	}
}

// Insert creates a recommendation with a zero score. It returns
// ErrUnprocessable for invalid input and ErrConflict for a taken name.
func (c *Controller) Insert(ctx context.Context, data model.NewRecommendation) (*model.Recommendation, error) {
	if err := c.validator.Struct(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnprocessable, err)
	}
	_, err := c.repo.FindByName(ctx, data.Name)
	if err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	// Concurrent inserts may all pass the lookup; the store rejects duplicates.
	rec, err := c.repo.Create(ctx, data.Name, data.YoutubeLink)
	if err != nil && errors.Is(err, repository.ErrAlreadyExists) {
		return nil, ErrConflict
	}
	return rec, err
}

// Upvote increments the score of a recommendation by one.
func (c *Controller) Upvote(ctx context.Context, id model.RecommendationID) (*model.Recommendation, error) {
	return c.vote(ctx, id, 1)
}

// Downvote decrements the score of a recommendation by one and removes it
// once the score drops below removalScore. The returned record is nil when
// it was removed.
func (c *Controller) Downvote(ctx context.Context, id model.RecommendationID) (*model.Recommendation, error) {
	rec, err := c.vote(ctx, id, -1)
	if err != nil {
		return nil, err
	}
	if rec.Score >= removalScore {
		return rec, nil
	}
	c.logger.Info("Removing recommendation below score threshold",
		zap.Int64(logging.FieldID, int64(id)),
		zap.Int("score", rec.Score),
	)
	// A concurrent downvote may have removed it already.
	if err := c.repo.Remove(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return nil, nil
}

func (c *Controller) vote(ctx context.Context, id model.RecommendationID, delta int) (*model.Recommendation, error) {
	rec, err := c.repo.UpdateScore(ctx, id, delta)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns a recommendation by id.
func (c *Controller) Get(ctx context.Context, id model.RecommendationID) (*model.Recommendation, error) {
	rec, err := c.repo.Find(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return rec, err
}

// GetAll returns every recommendation, most recent first.
func (c *Controller) GetAll(ctx context.Context) ([]*model.Recommendation, error) {
	return c.repo.FindAll(ctx, nil)
}

// GetTop returns up to amount recommendations ordered by descending score.
func (c *Controller) GetTop(ctx context.Context, amount int) ([]*model.Recommendation, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", ErrUnprocessable, amount)
	}
	return c.repo.GetAmountByScore(ctx, amount)
}

// GetRandom returns a random recommendation, drawn from the high score tier
// with probability highTierChance and from the low tier otherwise. An empty
// tier falls back to the other one.
func (c *Controller) GetRandom(ctx context.Context) (*model.Recommendation, error) {
	high := &model.ScoreFilter{Score: tierScore, Op: model.ScoreOpGreaterThan}
	low := &model.ScoreFilter{Score: tierScore, Op: model.ScoreOpLessThanOrEqual}
	filter, fallback := low, high
	if c.random.Float64() < highTierChance {
		filter, fallback = high, low
	}

	n, err := c.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		filter = fallback
	}
	pool, err := c.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNotFound
	}
	return pool[c.random.Intn(len(pool))], nil
}

// DeleteAll removes every recommendation.
func (c *Controller) DeleteAll(ctx context.Context) error {
	return c.repo.DeleteAll(ctx)
}

// StartIngestion applies the votes received from the ingester until
// its channel is closed.
func (c *Controller) StartIngestion(ctx context.Context) error {
	if c.ingester == nil {
		return errors.New("no vote ingester configured")
	}
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		c.logger.Debug("Consumed vote", zap.Stringer("event", &e))
		switch e.Direction {
		case model.VoteDirectionUp:
			_, err = c.Upvote(ctx, e.RecommendationID)
		case model.VoteDirectionDown:
			_, err = c.Downvote(ctx, e.RecommendationID)
		default:
			c.logger.Warn("Skipping vote with unknown direction", zap.Stringer("event", &e))
			continue
		}
		if errors.Is(err, ErrNotFound) {
			c.logger.Warn("Skipping vote for unknown recommendation", zap.Int64(logging.FieldID, int64(e.RecommendationID)))
			continue
		} else if err != nil {
			return err
		}
	}
	return nil
}
