package usecase

import (
	"context"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
)

type WatchlistUseCase struct {
	watchlistRepo repository.WatchlistRepository
}

func NewWatchlistUseCase(watchlistRepo repository.WatchlistRepository) *WatchlistUseCase {
	return &WatchlistUseCase{
		watchlistRepo: watchlistRepo,
	}
}

type AddWatchlistInput struct {
	MovieID     string
	Title       string
	Genres      []string
	PosterPath  string
	ReleaseDate string
}

// Add appends a watchlist entry. Adding the same movie again creates a
// second, independent entry; there is no uniqueness constraint per movie.
func (u *WatchlistUseCase) Add(ctx context.Context, userID string, input AddWatchlistInput) (*entity.WatchlistEntry, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to manage your watchlist")
	}
	if input.MovieID == "" {
		return nil, errors.Validation("Movie id is required", nil)
	}

	entry := &entity.WatchlistEntry{
		MovieID:     input.MovieID,
		Title:       input.Title,
		Genres:      input.Genres,
		PosterPath:  input.PosterPath,
		ReleaseDate: input.ReleaseDate,
	}

	if err := u.watchlistRepo.Add(ctx, userID, entry); err != nil {
		return nil, err
	}

	logger.Debug("Added movie %s to watchlist for user %s", input.MovieID, userID)
	return entry, nil
}

func (u *WatchlistUseCase) Remove(ctx context.Context, userID, entryID string) error {
	if userID == "" {
		return errors.AuthRequired("Log in to manage your watchlist")
	}
	if entryID == "" {
		return errors.Validation("Entry id is required", nil)
	}

	return u.watchlistRepo.Remove(ctx, userID, entryID)
}
