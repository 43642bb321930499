package usecase

import (
	"sync"

	"moviehub/internal/domain/entity"
)

// Upvote returns a copy of reviews with only index i's like counter
// incremented. The input slice is left untouched; an out-of-range index is a
// no-op.
func Upvote(reviews []entity.MovieReview, i int) []entity.MovieReview {
	if i < 0 || i >= len(reviews) {
		return reviews
	}
	out := append([]entity.MovieReview(nil), reviews...)
	out[i].Likes++
	return out
}

// Downvote mirrors Upvote for the dislike counter.
func Downvote(reviews []entity.MovieReview, i int) []entity.MovieReview {
	if i < 0 || i >= len(reviews) {
		return reviews
	}
	out := append([]entity.MovieReview(nil), reviews...)
	out[i].Dislikes++
	return out
}

// VoteOverlay holds a session's transient vote tallies per movie. Nothing
// here is persisted or shared between users; the tallies vanish with the
// session, so a fresh view always starts from zero.
type VoteOverlay struct {
	mu      sync.Mutex
	byMovie map[string][]entity.MovieReview
}

func NewVoteOverlay() *VoteOverlay {
	return &VoteOverlay{
		byMovie: make(map[string][]entity.MovieReview),
	}
}

// Seed installs the provider-supplied reviews for a movie unless the session
// already has tallies for it, and returns the current view.
func (o *VoteOverlay) Seed(movieID string, reviews []entity.MovieReview) []entity.MovieReview {
	o.mu.Lock()
	defer o.mu.Unlock()

	if existing, ok := o.byMovie[movieID]; ok {
		return append([]entity.MovieReview(nil), existing...)
	}
	o.byMovie[movieID] = append([]entity.MovieReview(nil), reviews...)
	return append([]entity.MovieReview(nil), reviews...)
}

func (o *VoteOverlay) Upvote(movieID string, i int) ([]entity.MovieReview, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	reviews, ok := o.byMovie[movieID]
	if !ok {
		return nil, false
	}
	updated := Upvote(reviews, i)
	o.byMovie[movieID] = updated
	return append([]entity.MovieReview(nil), updated...), true
}

func (o *VoteOverlay) Downvote(movieID string, i int) ([]entity.MovieReview, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	reviews, ok := o.byMovie[movieID]
	if !ok {
		return nil, false
	}
	updated := Downvote(reviews, i)
	o.byMovie[movieID] = updated
	return append([]entity.MovieReview(nil), updated...), true
}
