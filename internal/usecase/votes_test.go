package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/domain/entity"
	"moviehub/internal/usecase"
)

func threeReviews() []entity.MovieReview {
	return []entity.MovieReview{
		{ID: "a", Author: "one"},
		{ID: "b", Author: "two"},
		{ID: "c", Author: "three"},
	}
}

func TestUpvoteIncrementsOnlyTargetIndex(t *testing.T) {
	reviews := threeReviews()

	out := usecase.Upvote(reviews, 2)

	assert.Equal(t, 1, out[2].Likes)
	assert.Equal(t, 0, out[0].Likes)
	assert.Equal(t, 0, out[1].Likes)
	for _, r := range out {
		assert.Equal(t, 0, r.Dislikes)
	}
	// The input stays untouched.
	assert.Equal(t, 0, reviews[2].Likes)
}

func TestDownvoteIncrementsOnlyTargetIndex(t *testing.T) {
	out := usecase.Downvote(threeReviews(), 0)

	assert.Equal(t, 1, out[0].Dislikes)
	assert.Equal(t, 0, out[1].Dislikes)
	assert.Equal(t, 0, out[0].Likes)
}

func TestVoteOutOfRangeIsNoOp(t *testing.T) {
	reviews := threeReviews()

	assert.Equal(t, reviews, usecase.Upvote(reviews, -1))
	assert.Equal(t, reviews, usecase.Upvote(reviews, 3))
	assert.Equal(t, reviews, usecase.Downvote(reviews, 99))
}

func TestVoteOverlayAccumulatesPerSession(t *testing.T) {
	overlay := usecase.NewVoteOverlay()
	overlay.Seed("603", threeReviews())

	_, ok := overlay.Upvote("603", 1)
	require.True(t, ok)
	got, ok := overlay.Upvote("603", 1)
	require.True(t, ok)

	assert.Equal(t, 2, got[1].Likes)
	assert.Equal(t, 0, got[0].Likes)
}

func TestVoteOverlaySeedKeepsExistingTallies(t *testing.T) {
	overlay := usecase.NewVoteOverlay()
	overlay.Seed("603", threeReviews())
	overlay.Upvote("603", 0)

	// Re-seeding (revisiting the page in the same session) keeps tallies.
	got := overlay.Seed("603", threeReviews())
	assert.Equal(t, 1, got[0].Likes)
}

func TestVoteOverlayUnknownMovie(t *testing.T) {
	overlay := usecase.NewVoteOverlay()

	_, ok := overlay.Upvote("unknown", 0)
	assert.False(t, ok)
}

func TestFreshOverlayStartsAtZero(t *testing.T) {
	// A new session (page reload) gets a fresh overlay with zero counters.
	overlay := usecase.NewVoteOverlay()
	got := overlay.Seed("603", threeReviews())
	for _, r := range got {
		assert.Equal(t, 0, r.Likes)
		assert.Equal(t, 0, r.Dislikes)
	}
}
