package usecase

import (
	"context"
	"strings"
	"time"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
)

// ActivityUseCase owns a user's ratings and reviews. All mutations write
// through to the user store; the updated state is observed only via the next
// live snapshot, never echoed back optimistically.
type ActivityUseCase struct {
	ratingRepo repository.RatingRepository
	reviewRepo repository.ReviewRepository
}

func NewActivityUseCase(
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
) *ActivityUseCase {
	return &ActivityUseCase{
		ratingRepo: ratingRepo,
		reviewRepo: reviewRepo,
	}
}

type SubmitRatingInput struct {
	MovieID    string
	Title      string
	PosterPath string
	Score      int
}

func (u *ActivityUseCase) SubmitRating(ctx context.Context, userID string, input SubmitRatingInput) error {
	if userID == "" {
		return errors.AuthRequired("Log in to rate this movie")
	}
	if input.Score < 0 || input.Score > 10 {
		return errors.Validation("Rating must be between 0 and 10", nil)
	}
	if input.MovieID == "" {
		return errors.Validation("Movie id is required", nil)
	}

	rating := &entity.Rating{
		MovieID:    input.MovieID,
		Title:      input.Title,
		PosterPath: input.PosterPath,
		Score:      input.Score,
		CreatedAt:  time.Now(),
	}

	logger.Debug("Submitting rating %d for movie %s by user %s", input.Score, input.MovieID, userID)
	return u.ratingRepo.Upsert(ctx, userID, rating)
}

type SubmitReviewInput struct {
	MovieTitle string
	Content    string
}

func (u *ActivityUseCase) SubmitReview(ctx context.Context, userID, displayName string, input SubmitReviewInput) (*entity.Review, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to submit a review")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.Validation("Review cannot be empty", nil)
	}

	author := displayName
	if author == "" {
		author = "Anonymous"
	}

	review := &entity.Review{
		Author:    author,
		Content:   input.Content,
		Title:     input.MovieTitle,
		CreatedAt: time.Now(),
	}

	if err := u.reviewRepo.Create(ctx, userID, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (u *ActivityUseCase) EditReview(ctx context.Context, userID, reviewID, newContent string) error {
	if userID == "" {
		return errors.AuthRequired("Log in to edit a review")
	}
	if strings.TrimSpace(newContent) == "" {
		return errors.Validation("Review cannot be empty", nil)
	}
	if reviewID == "" {
		return errors.Validation("Review id is required", nil)
	}

	return u.reviewRepo.UpdateContent(ctx, userID, reviewID, newContent)
}

// DeleteReview removes by id. Deleting an already-deleted review succeeds.
func (u *ActivityUseCase) DeleteReview(ctx context.Context, userID, reviewID string) error {
	if userID == "" {
		return errors.AuthRequired("Log in to delete a review")
	}
	if reviewID == "" {
		return errors.Validation("Review id is required", nil)
	}

	return u.reviewRepo.Delete(ctx, userID, reviewID)
}
