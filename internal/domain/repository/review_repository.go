package repository

import (
	"context"

	"moviehub/internal/domain/entity"
)

type ReviewRepository interface {
	// Create appends a new review document, assigning its id.
	Create(ctx context.Context, userID string, review *entity.Review) error

	// UpdateContent replaces only the content field, leaving the rest of the
	// document untouched.
	UpdateContent(ctx context.Context, userID, reviewID, content string) error

	// Delete removes by id. Deleting an id that no longer exists is not an
	// error.
	Delete(ctx context.Context, userID, reviewID string) error

	Watch(ctx context.Context, userID string, onChange func(reviews []entity.Review)) (func(), error)
}
