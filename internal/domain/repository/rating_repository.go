package repository

import (
	"context"

	"moviehub/internal/domain/entity"
)

type RatingRepository interface {
	// Upsert writes the rating keyed by movie id: a later write for the same
	// movie replaces the earlier one.
	Upsert(ctx context.Context, userID string, rating *entity.Rating) error

	// Watch opens the live subscription on the user's ratings collection and
	// invokes onChange with the materialized view of every full snapshot.
	// The returned func tears the subscription down.
	Watch(ctx context.Context, userID string, onChange func(ratings []entity.Rating)) (func(), error)
}
