package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"singmeasong/recommendation/pkg/model"
)

func TestDecodeVote(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    model.VoteEvent
		wantErr bool
	}{
		{
			name: "upvote",
			data: `{"recommendationId": 3, "direction": "up"}`,
			want: model.VoteEvent{RecommendationID: 3, Direction: model.VoteDirectionUp},
		},
		{
			name: "downvote",
			data: `{"recommendationId": 4, "direction": "down"}`,
			want: model.VoteEvent{RecommendationID: 4, Direction: model.VoteDirectionDown},
		},
		{name: "missing id", data: `{"direction": "up"}`, wantErr: true},
		{name: "unknown direction", data: `{"recommendationId": 3, "direction": "left"}`, wantErr: true},
		{name: "not json", data: `up 3`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeVote([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
