package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/adapter/api"
	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/domain/entity"
	"moviehub/internal/infrastructure/tmdb"
	"moviehub/internal/usecase"
)

type stubRatingRepo struct {
	upserts int
}

func (r *stubRatingRepo) Upsert(ctx context.Context, userID string, rating *entity.Rating) error {
	r.upserts++
	return nil
}

func (r *stubRatingRepo) Watch(ctx context.Context, userID string, onChange func([]entity.Rating)) (func(), error) {
	return func() {}, nil
}

type stubReviewRepo struct{}

func (r *stubReviewRepo) Create(ctx context.Context, userID string, review *entity.Review) error {
	return nil
}

func (r *stubReviewRepo) UpdateContent(ctx context.Context, userID, reviewID, content string) error {
	return nil
}

func (r *stubReviewRepo) Delete(ctx context.Context, userID, reviewID string) error {
	return nil
}

func (r *stubReviewRepo) Watch(ctx context.Context, userID string, onChange func([]entity.Review)) (func(), error) {
	return func() {}, nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")
	h := handler.NewHealthHandler()

	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestSubmitRatingRejectsOutOfRangeScore(t *testing.T) {
	ratings := &stubRatingRepo{}
	h := handler.NewActivityHandler(usecase.NewActivityUseCase(ratings, &stubReviewRepo{}))

	c, rec := newTestContext(t, http.MethodPut, "/v1/me/ratings/603", `{"score": 11}`)
	c.SetParamNames("movieId")
	c.SetParamValues("603")
	c.Set("uid", "u1")

	require.NoError(t, h.SubmitRating(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Equal(t, 0, ratings.upserts)
}

func TestSubmitRatingAcceptsValidScore(t *testing.T) {
	ratings := &stubRatingRepo{}
	h := handler.NewActivityHandler(usecase.NewActivityUseCase(ratings, &stubReviewRepo{}))

	c, rec := newTestContext(t, http.MethodPut, "/v1/me/ratings/603", `{"score": 8, "title": "The Matrix"}`)
	c.SetParamNames("movieId")
	c.SetParamValues("603")
	c.Set("uid", "u1")

	require.NoError(t, h.SubmitRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ratings.upserts)
}

func TestSubmitReviewRequiresContent(t *testing.T) {
	h := handler.NewActivityHandler(usecase.NewActivityUseCase(&stubRatingRepo{}, &stubReviewRepo{}))

	c, rec := newTestContext(t, http.MethodPost, "/v1/me/reviews", `{"movie_title": "Alien"}`)
	c.Set("uid", "u1")
	c.Set("displayName", "Ada")

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestVoteWithoutLiveSession(t *testing.T) {
	liveSessions := usecase.NewLiveSessionUseCase(nil, nil, nil, nil, nil, nil)
	h := handler.NewMovieHandler(usecase.NewMovieUseCase(nil), liveSessions)

	c, rec := newTestContext(t, http.MethodPost, "/v1/movies/603/reviews/0/upvote", "")
	c.SetParamNames("id", "index")
	c.SetParamValues("603", "0")
	c.Set("uid", "u1")

	require.NoError(t, h.UpvoteReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "live session")
}

type stubWatchlistRepo struct{}

func (r *stubWatchlistRepo) Add(ctx context.Context, userID string, entry *entity.WatchlistEntry) error {
	return nil
}

func (r *stubWatchlistRepo) Remove(ctx context.Context, userID, entryID string) error {
	return nil
}

func (r *stubWatchlistRepo) Watch(ctx context.Context, userID string, onChange func([]entity.WatchlistEntry)) (func(), error) {
	return func() {}, nil
}

type stubUserRepo struct{}

func (r *stubUserRepo) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	return &entity.Profile{}, nil
}

func (r *stubUserRepo) UpdateProfile(ctx context.Context, userID string, profile *entity.Profile) error {
	return nil
}

func (r *stubUserRepo) Watch(ctx context.Context, userID string, onChange func(*entity.Profile)) (func(), error) {
	return func() {}, nil
}

type stubCatalog struct{}

func (p *stubCatalog) GetMovie(ctx context.Context, id string) (*tmdb.Movie, error) {
	return &tmdb.Movie{
		ID:    603,
		Title: "The Matrix",
		Reviews: tmdb.ReviewList{Results: []tmdb.Review{
			{ID: "r1", Author: "one", Content: "great"},
			{ID: "r2", Author: "two", Content: "fine"},
		}},
	}, nil
}

func (p *stubCatalog) GetPerson(ctx context.Context, id string) (*tmdb.Person, error) {
	return &tmdb.Person{}, nil
}

func (p *stubCatalog) GetPersonCredits(ctx context.Context, id string) (*tmdb.PersonCredits, error) {
	return &tmdb.PersonCredits{}, nil
}

func (p *stubCatalog) DiscoverByGenres(ctx context.Context, genreIDs []int, page int) (*tmdb.MovieList, error) {
	return &tmdb.MovieList{}, nil
}

func (p *stubCatalog) GetTrending(ctx context.Context, window string) (*tmdb.MovieList, error) {
	return &tmdb.MovieList{}, nil
}

func (p *stubCatalog) GetUpcoming(ctx context.Context) (*tmdb.MovieList, error) {
	return &tmdb.MovieList{}, nil
}

func (p *stubCatalog) GetPopular(ctx context.Context, page int) (*tmdb.MovieList, error) {
	return &tmdb.MovieList{}, nil
}

func (p *stubCatalog) ImageURL(path string) string { return path }

func attachedLiveSessions(t *testing.T, userID string) *usecase.LiveSessionUseCase {
	t.Helper()
	liveSessions := usecase.NewLiveSessionUseCase(
		&stubRatingRepo{},
		&stubReviewRepo{},
		&stubWatchlistRepo{},
		&stubUserRepo{},
		nil,
		usecase.NewRecommendationUseCase(&stubCatalog{}, &stubUserRepo{}),
	)
	require.NoError(t, liveSessions.Attach(context.Background(), userID))
	return liveSessions
}

func TestDetailShowsSessionVoteTallies(t *testing.T) {
	liveSessions := attachedLiveSessions(t, "u1")
	defer liveSessions.Detach("u1")
	h := handler.NewMovieHandler(usecase.NewMovieUseCase(&stubCatalog{}), liveSessions)

	// Vote first; the overlay is seeded from the catalog on the way.
	c, rec := newTestContext(t, http.MethodPost, "/v1/movies/603/reviews/1/upvote", "")
	c.SetParamNames("id", "index")
	c.SetParamValues("603", "1")
	c.Set("uid", "u1")
	require.NoError(t, h.UpvoteReview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// A detail re-fetch by the identified session keeps the tally.
	c, rec = newTestContext(t, http.MethodGet, "/v1/movies/603", "")
	c.SetParamNames("id")
	c.SetParamValues("603")
	c.Set("uid", "u1")
	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Reviews []entity.MovieReview `json:"reviews"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Reviews, 2)
	assert.Equal(t, 0, body.Data.Reviews[0].Likes)
	assert.Equal(t, 1, body.Data.Reviews[1].Likes)
}

func TestDetailAnonymousStartsFromZero(t *testing.T) {
	liveSessions := attachedLiveSessions(t, "u1")
	defer liveSessions.Detach("u1")
	h := handler.NewMovieHandler(usecase.NewMovieUseCase(&stubCatalog{}), liveSessions)

	c, rec := newTestContext(t, http.MethodGet, "/v1/movies/603", "")
	c.SetParamNames("id")
	c.SetParamValues("603")

	require.NoError(t, h.Detail(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Reviews []entity.MovieReview `json:"reviews"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, review := range body.Data.Reviews {
		assert.Equal(t, 0, review.Likes)
		assert.Equal(t, 0, review.Dislikes)
	}
}
