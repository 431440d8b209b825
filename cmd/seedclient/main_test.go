package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"singmeasong/gen"
)

type fakeClient struct {
	gen.RecommendationServiceClient
	names []string
}

func (c *fakeClient) Insert(_ context.Context, in *gen.InsertRequest, _ ...grpc.CallOption) (*gen.InsertResponse, error) {
	for _, n := range c.names {
		if n == in.Name {
			return nil, status.Error(codes.AlreadyExists, "Recommendations names must be unique")
		}
	}
	c.names = append(c.names, in.Name)
	return &gen.InsertResponse{Recommendation: &gen.Recommendation{Id: int64(len(c.names)), Name: in.Name}}, nil
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *gen.InsertRequest
		wantErr bool
	}{
		{
			name: "simple",
			text: "Song, https://www.youtube.com/watch?v=1",
			want: &gen.InsertRequest{Name: "Song", YoutubeLink: "https://www.youtube.com/watch?v=1"},
		},
		{
			name: "comma in name",
			text: "Artist, Song,https://www.youtube.com/watch?v=2",
			want: &gen.InsertRequest{Name: "Artist, Song", YoutubeLink: "https://www.youtube.com/watch?v=2"},
		},
		{
			name:    "missing link",
			text:    "Song",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLine(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	content := "# songs\nA,https://www.youtube.com/a\n\nB,https://www.youtube.com/b\nA,https://www.youtube.com/a\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	client := &fakeClient{}
	n, err := seedFile(context.Background(), client, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"A", "B"}, client.names)
}
