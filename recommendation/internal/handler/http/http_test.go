package http

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"singmeasong/recommendation/internal/controller/recommendation"
	"singmeasong/recommendation/internal/repository/memory"
	"singmeasong/recommendation/pkg/model"
)

const link = "https://www.youtube.com/watch?v=T3Y6RRSDm4o&ab_channel=CanaldoPeric%C3%A3o"

type testServer struct {
	repo   *memory.Repository
	router http.Handler
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	repo := memory.New(zap.NewNop())
	ctrl := recommendation.New(repo, nil, rand.New(rand.NewSource(1)), zap.NewNop())
	h := New(ctrl, zap.NewNop(), tally.NoopScope)
	return &testServer{repo: repo, router: h.Routes(opts)}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) insert(t *testing.T, name string, score int) *model.Recommendation {
	t.Helper()
	ctx := context.Background()
	rec, err := s.repo.Create(ctx, name, link)
	require.NoError(t, err)
	if score != 0 {
		rec, err = s.repo.UpdateScore(ctx, rec.ID, score)
		require.NoError(t, err)
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "created", body: `{"name":"Até que durou","youtubeLink":"` + link + `"}`, wantCode: http.StatusCreated},
		{name: "invalid link", body: `{"name":"name","youtubeLink":"invalidurl"}`, wantCode: http.StatusUnprocessableEntity},
		{name: "empty name", body: `{"name":"","youtubeLink":"` + link + `"}`, wantCode: http.StatusUnprocessableEntity},
		{name: "malformed body", body: `{"name":`, wantCode: http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, Options{})
			rec := s.do(t, http.MethodPost, "/recommendations", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestInsertDuplicate(t *testing.T) {
	s := newTestServer(t, Options{})
	body := `{"name":"Até que durou","youtubeLink":"` + link + `"}`
	rec := s.do(t, http.MethodPost, "/recommendations", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Recommendation](t, rec)
	assert.Equal(t, "Até que durou", created.Name)
	assert.Equal(t, 0, created.Score)

	rec = s.do(t, http.MethodPost, "/recommendations", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInsertValidationFields(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, http.MethodPost, "/recommendations", `{"name":"name","youtubeLink":"invalidurl"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[errorResponse](t, rec)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "youtubeLink", resp.Fields[0].Field)
}

func TestVote(t *testing.T) {
	s := newTestServer(t, Options{})
	r := s.insert(t, "song", -4)

	rec := s.do(t, http.MethodPost, "/recommendations/1/upvote", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/recommendations/1/downvote", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/recommendations/1/downvote", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decode[model.Recommendation](t, s.do(t, http.MethodGet, "/recommendations/1", ""))
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, -5, got.Score)

	rec = s.do(t, http.MethodPost, "/recommendations/1/downvote", "")
	assert.Equal(t, http.StatusOK, rec.Code, "removal is reported as a successful vote")
	rec = s.do(t, http.MethodGet, "/recommendations/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/recommendations/1/upvote", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodPost, "/recommendations/abc/downvote", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAll(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, http.MethodGet, "/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	s.insert(t, "first", 0)
	s.insert(t, "second", 0)
	got := decode[[]model.Recommendation](t, s.do(t, http.MethodGet, "/recommendations", ""))
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Name)
	assert.Equal(t, "first", got[1].Name)
}

func TestGetTop(t *testing.T) {
	s := newTestServer(t, Options{})
	s.insert(t, "five", 5)
	s.insert(t, "twenty", 20)
	s.insert(t, "ten", 10)

	rec := s.do(t, http.MethodGet, "/recommendations/top/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]model.Recommendation](t, rec)
	var scores []int
	for _, r := range got {
		scores = append(scores, r.Score)
	}
	assert.Equal(t, []int{20, 10, 5}, scores)

	rec = s.do(t, http.MethodGet, "/recommendations/top/0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec = s.do(t, http.MethodGet, "/recommendations/top/many", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetRandom(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, http.MethodGet, "/recommendations/random", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.insert(t, "only", 0)
	rec = s.do(t, http.MethodGet, "/recommendations/random", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "only", decode[model.Recommendation](t, rec).Name)
}

func TestReset(t *testing.T) {
	s := newTestServer(t, Options{})
	rec := s.do(t, http.MethodPost, "/test/reset", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "reset is only routed in test mode")

	s = newTestServer(t, Options{TestMode: true})
	s.insert(t, "song", 0)
	rec = s.do(t, http.MethodPost, "/test/reset", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, s.do(t, http.MethodGet, "/recommendations", "").Body.String())
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, Options{CORSOrigins: []string{"http://localhost:3000"}})
	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
