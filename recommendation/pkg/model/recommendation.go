package model

import (
	"fmt"

	"singmeasong/gen"
)

// RecommendationID defines a recommendation id assigned by the store.
type RecommendationID int64

// Recommendation defines a song recommendation and its vote score.
type Recommendation struct {
	ID          RecommendationID `json:"id"`
	Name        string           `json:"name"`
	YoutubeLink string           `json:"youtubeLink"`
	Score       int              `json:"score"`
}

func (r *Recommendation) String() string {
	return fmt.Sprintf("Recommendation{id=%d, name=%s, youtubeLink=%s, score=%d}", r.ID, r.Name, r.YoutubeLink, r.Score)
}

// NewRecommendation defines the payload submitted to create a recommendation.
type NewRecommendation struct {
	Name        string `json:"name" validate:"required"`
	YoutubeLink string `json:"youtubeLink" validate:"required,youtube"`
}

// ScoreOp defines a comparison against a score threshold.
type ScoreOp string

// Supported score comparisons.
const (
	ScoreOpGreaterThan     = ScoreOp("gt")
	ScoreOpLessThanOrEqual = ScoreOp("lte")
)

// ScoreFilter restricts a query to recommendations on one side of a threshold.
type ScoreFilter struct {
	Score int
	Op    ScoreOp
}

// Match reports whether a score passes the filter. A nil filter matches everything.
func (f *ScoreFilter) Match(score int) bool {
	if f == nil {
		return true
	}
	switch f.Op {
	case ScoreOpGreaterThan:
		return score > f.Score
	case ScoreOpLessThanOrEqual:
		return score <= f.Score
	default:
		return false
	}
}

// VoteDirection defines the direction of a vote.
type VoteDirection string

// Vote directions.
const (
	VoteDirectionUp   = VoteDirection("up")
	VoteDirectionDown = VoteDirection("down")
)

// VoteEvent defines a vote consumed from the message bus.
type VoteEvent struct {
	RecommendationID RecommendationID `json:"recommendationId"`
	Direction        VoteDirection    `json:"direction"`
}

func (ev *VoteEvent) String() string {
	return fmt.Sprintf("VoteEvent{recommendationId=%d, direction=%s}", ev.RecommendationID, ev.Direction)
}

// RecommendationToWire converts a Recommendation into its gRPC message.
func RecommendationToWire(r *Recommendation) *gen.Recommendation {
	if r == nil {
		return nil
	}
	return &gen.Recommendation{
		Id:          int64(r.ID),
		Name:        r.Name,
		YoutubeLink: r.YoutubeLink,
		Score:       int64(r.Score),
	}
}

// RecommendationFromWire converts a gRPC message into a Recommendation.
func RecommendationFromWire(r *gen.Recommendation) *Recommendation {
	if r == nil {
		return nil
	}
	return &Recommendation{
		ID:          RecommendationID(r.Id),
		Name:        r.Name,
		YoutubeLink: r.YoutubeLink,
		Score:       int(r.Score),
	}
}

// RecommendationsToWire converts a slice of recommendations.
func RecommendationsToWire(rs []*Recommendation) []*gen.Recommendation {
	res := make([]*gen.Recommendation, 0, len(rs))
	for _, r := range rs {
		res = append(res, RecommendationToWire(r))
	}
	return res
}
