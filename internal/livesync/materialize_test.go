package livesync_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/domain/entity"
	"moviehub/internal/livesync"
)

func TestMaterializeRatingsDedupesByTitle(t *testing.T) {
	items := []entity.Rating{
		{MovieID: "100", Title: "Alien", Score: 7},
		{MovieID: "200", Title: "Heat", Score: 9},
		{MovieID: "101", Title: "Alien", Score: 4},
	}

	out := livesync.MaterializeRatings(items)

	assert.Len(t, out, 2)
	assert.Equal(t, "Alien", out[0].Title)
	// Most recently seen entry per title wins.
	assert.Equal(t, 4, out[0].Score)
	assert.Equal(t, "101", out[0].MovieID)
	assert.Equal(t, "Heat", out[1].Title)
}

func TestMaterializeRatingsFallsBackToMovieID(t *testing.T) {
	items := []entity.Rating{
		{MovieID: "100", Score: 5},
		{MovieID: "100", Score: 8},
		{MovieID: "200", Score: 6},
	}

	out := livesync.MaterializeRatings(items)

	assert.Len(t, out, 2)
	assert.Equal(t, 8, out[0].Score)
}

func TestMaterializeReviewsOrdersNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []entity.Review{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Minute)},
	}

	out := livesync.MaterializeReviews(items)

	assert.Equal(t, []string{"new", "mid", "old"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestMaterializeReviewsSortsMissingTimestampsLast(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []entity.Review{
		{ID: "untimed"},
		{ID: "newer", CreatedAt: base.Add(time.Hour)},
		{ID: "older", CreatedAt: base},
	}

	out := livesync.MaterializeReviews(items)

	assert.Equal(t, "newer", out[0].ID)
	assert.Equal(t, "older", out[1].ID)
	assert.Equal(t, "untimed", out[2].ID)
}

func TestMaterializeReviewsDoesNotMutateInput(t *testing.T) {
	items := []entity.Review{
		{ID: "a"},
		{ID: "b", CreatedAt: time.Now()},
	}

	livesync.MaterializeReviews(items)

	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestMaterializeWatchlistPreservesDuplicates(t *testing.T) {
	in := []entity.WatchlistEntry{
		{ID: "w1", MovieID: "603", Title: "The Matrix"},
		{ID: "w2", MovieID: "603", Title: "The Matrix"},
	}

	out := livesync.MaterializeWatchlist(in)

	require.Len(t, out, 2)
	assert.Equal(t, "w1", out[0].ID)
	assert.Equal(t, "w2", out[1].ID)

	out[0].Title = "changed"
	assert.Equal(t, "The Matrix", in[0].Title)
}
