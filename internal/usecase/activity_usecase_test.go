package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/domain/entity"
	"moviehub/internal/usecase"
	"moviehub/pkg/errors"
)

type fakeRatingRepo struct {
	upserts []entity.Rating
}

func (r *fakeRatingRepo) Upsert(ctx context.Context, userID string, rating *entity.Rating) error {
	r.upserts = append(r.upserts, *rating)
	return nil
}

func (r *fakeRatingRepo) Watch(ctx context.Context, userID string, onChange func([]entity.Rating)) (func(), error) {
	return func() {}, nil
}

type fakeReviewRepo struct {
	created []entity.Review
	edits   map[string]string
	deleted []string
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{edits: make(map[string]string)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, userID string, review *entity.Review) error {
	review.ID = "generated-id"
	r.created = append(r.created, *review)
	return nil
}

func (r *fakeReviewRepo) UpdateContent(ctx context.Context, userID, reviewID, content string) error {
	r.edits[reviewID] = content
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, userID, reviewID string) error {
	// Deletes are idempotent at the store; unknown ids succeed too.
	r.deleted = append(r.deleted, reviewID)
	return nil
}

func (r *fakeReviewRepo) Watch(ctx context.Context, userID string, onChange func([]entity.Review)) (func(), error) {
	return func() {}, nil
}

func TestSubmitRatingValidScores(t *testing.T) {
	ratings := &fakeRatingRepo{}
	uc := usecase.NewActivityUseCase(ratings, newFakeReviewRepo())

	for _, score := range []int{0, 5, 10} {
		err := uc.SubmitRating(context.Background(), "u1", usecase.SubmitRatingInput{
			MovieID: "603",
			Title:   "The Matrix",
			Score:   score,
		})
		require.NoError(t, err)
	}

	assert.Len(t, ratings.upserts, 3)
	assert.Equal(t, "603", ratings.upserts[0].MovieID)
	assert.False(t, ratings.upserts[0].CreatedAt.IsZero())
}

func TestSubmitRatingOutOfRange(t *testing.T) {
	ratings := &fakeRatingRepo{}
	uc := usecase.NewActivityUseCase(ratings, newFakeReviewRepo())

	for _, score := range []int{-1, 11, 100} {
		err := uc.SubmitRating(context.Background(), "u1", usecase.SubmitRatingInput{
			MovieID: "603",
			Score:   score,
		})
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"), "score %d should be rejected", score)
	}

	// Nothing reached the store.
	assert.Empty(t, ratings.upserts)
}

func TestSubmitRatingRequiresUser(t *testing.T) {
	ratings := &fakeRatingRepo{}
	uc := usecase.NewActivityUseCase(ratings, newFakeReviewRepo())

	err := uc.SubmitRating(context.Background(), "", usecase.SubmitRatingInput{MovieID: "603", Score: 7})

	assert.True(t, errors.Is(err, "AUTH_REQUIRED"))
	assert.Empty(t, ratings.upserts)
}

func TestSubmitReviewRejectsEmptyContent(t *testing.T) {
	reviews := newFakeReviewRepo()
	uc := usecase.NewActivityUseCase(&fakeRatingRepo{}, reviews)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := uc.SubmitReview(context.Background(), "u1", "Ada", usecase.SubmitReviewInput{Content: content})
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	}
	assert.Empty(t, reviews.created)
}

func TestSubmitReviewDefaultsAuthor(t *testing.T) {
	reviews := newFakeReviewRepo()
	uc := usecase.NewActivityUseCase(&fakeRatingRepo{}, reviews)

	review, err := uc.SubmitReview(context.Background(), "u1", "", usecase.SubmitReviewInput{
		MovieTitle: "Alien",
		Content:    "Great film",
	})

	require.NoError(t, err)
	assert.Equal(t, "Anonymous", review.Author)
	assert.Equal(t, "generated-id", review.ID)
	require.Len(t, reviews.created, 1)
	assert.Equal(t, "Alien", reviews.created[0].Title)
}

func TestSubmitReviewRequiresUser(t *testing.T) {
	uc := usecase.NewActivityUseCase(&fakeRatingRepo{}, newFakeReviewRepo())

	_, err := uc.SubmitReview(context.Background(), "", "Ada", usecase.SubmitReviewInput{Content: "Great film"})

	assert.True(t, errors.Is(err, "AUTH_REQUIRED"))
}

func TestEditReviewUpdatesContentOnly(t *testing.T) {
	reviews := newFakeReviewRepo()
	uc := usecase.NewActivityUseCase(&fakeRatingRepo{}, reviews)

	require.NoError(t, uc.EditReview(context.Background(), "u1", "r1", "Changed my mind"))

	assert.Equal(t, "Changed my mind", reviews.edits["r1"])
}

func TestDeleteReviewTwiceIsNoError(t *testing.T) {
	reviews := newFakeReviewRepo()
	uc := usecase.NewActivityUseCase(&fakeRatingRepo{}, reviews)

	require.NoError(t, uc.DeleteReview(context.Background(), "u1", "r1"))
	require.NoError(t, uc.DeleteReview(context.Background(), "u1", "r1"))

	assert.Equal(t, []string{"r1", "r1"}, reviews.deleted)
}
