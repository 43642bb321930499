package usecase

import (
	"context"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/pkg/errors"
)

type ProfileUseCase struct {
	userRepo repository.UserRepository
}

func NewProfileUseCase(userRepo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo: userRepo,
	}
}

// Get loads the profile, returning an empty one for users who have not saved
// anything yet.
func (u *ProfileUseCase) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to view your profile")
	}

	profile, err := u.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.Profile{Preferences: []string{}}, nil
		}
		return nil, err
	}
	return profile, nil
}

type UpdateProfileInput struct {
	Username       string
	ProfilePicture string
	Preferences    []string
}

// Update merge-writes the profile document. Unknown genre names are stored as
// given; the recommendation engine drops them at mapping time.
func (u *ProfileUseCase) Update(ctx context.Context, userID string, input UpdateProfileInput) (*entity.Profile, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to update your profile")
	}

	profile := &entity.Profile{
		Username:       input.Username,
		ProfilePicture: input.ProfilePicture,
		Preferences:    input.Preferences,
	}

	if err := u.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}

	// Echo back the collapsed set the way a fresh read would see it.
	profile.Preferences = entity.SplitPreferences(entity.JoinPreferences(input.Preferences))
	return profile, nil
}
