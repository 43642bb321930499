package usecase

import (
	"context"

	"moviehub/internal/infrastructure/tmdb"
)

// CatalogProvider is the read-only movie metadata service.
type CatalogProvider interface {
	GetMovie(ctx context.Context, id string) (*tmdb.Movie, error)
	GetPerson(ctx context.Context, id string) (*tmdb.Person, error)
	GetPersonCredits(ctx context.Context, id string) (*tmdb.PersonCredits, error)
	DiscoverByGenres(ctx context.Context, genreIDs []int, page int) (*tmdb.MovieList, error)
	GetTrending(ctx context.Context, window string) (*tmdb.MovieList, error)
	GetUpcoming(ctx context.Context) (*tmdb.MovieList, error)
	GetPopular(ctx context.Context, page int) (*tmdb.MovieList, error)
	ImageURL(path string) string
}

// IdentityClient resolves authenticated users. The user id is opaque and
// constant for a session; nothing here manages accounts.
type IdentityClient interface {
	VerifyToken(ctx context.Context, idToken string) (uid string, displayName string, err error)
	GetDisplayName(ctx context.Context, uid string) (string, error)
}
