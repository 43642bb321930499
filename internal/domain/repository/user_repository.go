package repository

import (
	"context"

	"moviehub/internal/domain/entity"
)

type UserRepository interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)

	// UpdateProfile writes the full profile state: username, picture and
	// preferences are all replaced by the given values. Fields outside the
	// profile shape are left untouched by the merge.
	UpdateProfile(ctx context.Context, userID string, profile *entity.Profile) error

	Watch(ctx context.Context, userID string, onChange func(profile *entity.Profile)) (func(), error)
}
