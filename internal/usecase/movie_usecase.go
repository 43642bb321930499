package usecase

import (
	"context"
	"math/rand"
	"strconv"

	"golang.org/x/sync/errgroup"

	"moviehub/internal/domain/entity"
	"moviehub/internal/infrastructure/tmdb"
	"moviehub/pkg/logger"
)

// MovieUseCase aggregates catalog provider data into view models. Provider
// failures degrade the affected section to an empty placeholder instead of
// failing the whole view.
type MovieUseCase struct {
	provider CatalogProvider
}

func NewMovieUseCase(provider CatalogProvider) *MovieUseCase {
	return &MovieUseCase{
		provider: provider,
	}
}

type CastInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

type TrailerInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type MovieDetail struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Overview       string               `json:"overview"`
	Language       string               `json:"language"`
	Director       string               `json:"director"`
	BoxOffice      int64                `json:"box_office"`
	ReleaseDate    string               `json:"release_date"`
	Runtime        int                  `json:"runtime"`
	VoteAverage    float64              `json:"vote_average"`
	PosterPath     string               `json:"poster_path"`
	Genres         []string             `json:"genres"`
	Cast           []CastInfo           `json:"cast"`
	Reviews        []entity.MovieReview `json:"reviews"`
	Trailers       []TrailerInfo        `json:"trailers"`
	Backdrops      []string             `json:"backdrops"`
	StreamingLinks []string             `json:"streaming_links"`
}

func (u *MovieUseCase) GetDetail(ctx context.Context, movieID string) (*MovieDetail, error) {
	movie, err := u.provider.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	director := "Unknown Director"
	for _, member := range movie.Credits.Crew {
		if member.Job == "Director" {
			director = member.Name
			break
		}
	}

	cast := make([]CastInfo, 0, 4)
	for _, member := range movie.Credits.Cast {
		if len(cast) == 4 {
			break
		}
		cast = append(cast, CastInfo{
			ID:          strconv.Itoa(member.ID),
			Name:        member.Name,
			ProfilePath: u.provider.ImageURL(member.ProfilePath),
		})
	}

	genres := make([]string, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		genres = append(genres, g.Name)
	}

	// Provider reviews start with zeroed vote counters; the session overlay
	// layers its tallies on top.
	reviews := make([]entity.MovieReview, 0, len(movie.Reviews.Results))
	for _, review := range movie.Reviews.Results {
		reviews = append(reviews, entity.MovieReview{
			ID:      review.ID,
			Author:  review.Author,
			Content: review.Content,
		})
	}

	trailers := make([]TrailerInfo, 0, len(movie.Videos.Results))
	for _, video := range movie.Videos.Results {
		if video.Site == "YouTube" {
			trailers = append(trailers, TrailerInfo{Key: video.Key, Name: video.Name})
		}
	}

	backdrops := make([]string, 0, len(movie.Images.Backdrops))
	for _, image := range movie.Images.Backdrops {
		backdrops = append(backdrops, u.provider.ImageURL(image.FilePath))
	}

	var streaming []string
	if us, ok := movie.WatchProviders.Results["US"]; ok {
		for _, p := range us.Flatrate {
			streaming = append(streaming, p.ProviderName)
		}
	}

	return &MovieDetail{
		ID:             strconv.Itoa(movie.ID),
		Title:          movie.Title,
		Overview:       movie.Overview,
		Language:       movie.OriginalLanguage,
		Director:       director,
		BoxOffice:      movie.Revenue,
		ReleaseDate:    movie.ReleaseDate,
		Runtime:        movie.Runtime,
		VoteAverage:    movie.VoteAverage,
		PosterPath:     u.provider.ImageURL(movie.PosterPath),
		Genres:         genres,
		Cast:           cast,
		Reviews:        reviews,
		Trailers:       trailers,
		Backdrops:      backdrops,
		StreamingLinks: streaming,
	}, nil
}

type HomeFeed struct {
	Trending []MovieCard `json:"trending"`
	Upcoming []MovieCard `json:"upcoming"`
}

type MovieCard struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

func (u *MovieUseCase) cards(list *tmdb.MovieList) []MovieCard {
	if list == nil {
		return []MovieCard{}
	}
	cards := make([]MovieCard, 0, len(list.Results))
	for _, movie := range list.Results {
		cards = append(cards, MovieCard{
			ID:          strconv.Itoa(movie.ID),
			Title:       movie.Title,
			PosterPath:  u.provider.ImageURL(movie.PosterPath),
			ReleaseDate: movie.ReleaseDate,
			VoteAverage: movie.VoteAverage,
		})
	}
	return cards
}

// HomeFeed fetches the trending and upcoming rails concurrently. A failed
// rail comes back empty.
func (u *MovieUseCase) HomeFeed(ctx context.Context) (*HomeFeed, error) {
	var trending, upcoming *tmdb.MovieList

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := u.provider.GetTrending(gctx, "week")
		if err != nil {
			logger.Error("Trending fetch failed: %v", err)
			return nil
		}
		trending = list
		return nil
	})
	g.Go(func() error {
		list, err := u.provider.GetUpcoming(gctx)
		if err != nil {
			logger.Error("Upcoming fetch failed: %v", err)
			return nil
		}
		upcoming = list
		return nil
	})
	g.Wait()

	return &HomeFeed{
		Trending: u.cards(trending),
		Upcoming: u.cards(upcoming),
	}, nil
}

func (u *MovieUseCase) Trending(ctx context.Context, window string) ([]MovieCard, error) {
	list, err := u.provider.GetTrending(ctx, window)
	if err != nil {
		return nil, err
	}
	return u.cards(list), nil
}

func (u *MovieUseCase) Upcoming(ctx context.Context) ([]MovieCard, error) {
	list, err := u.provider.GetUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	return u.cards(list), nil
}

func (u *MovieUseCase) Popular(ctx context.Context, page int) ([]MovieCard, error) {
	list, err := u.provider.GetPopular(ctx, page)
	if err != nil {
		return nil, err
	}
	return u.cards(list), nil
}

// RandomBackdrop picks a backdrop from a random popular page for the hero
// banner. Failures yield an empty URL, not an error.
func (u *MovieUseCase) RandomBackdrop(ctx context.Context) string {
	list, err := u.provider.GetPopular(ctx, rand.Intn(10)+1)
	if err != nil || len(list.Results) == 0 {
		if err != nil {
			logger.Error("Backdrop fetch failed: %v", err)
		}
		return ""
	}
	movie := list.Results[rand.Intn(len(list.Results))]
	return u.provider.ImageURL(movie.BackdropPath)
}

type PersonDetail struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Biography    string `json:"biography"`
	Birthday     string `json:"birthday"`
	PlaceOfBirth string `json:"place_of_birth"`
	ProfilePath  string `json:"profile_path"`
}

func (u *MovieUseCase) GetPerson(ctx context.Context, personID string) (*PersonDetail, error) {
	person, err := u.provider.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return &PersonDetail{
		ID:           strconv.Itoa(person.ID),
		Name:         person.Name,
		Biography:    person.Biography,
		Birthday:     person.Birthday,
		PlaceOfBirth: person.PlaceOfBirth,
		ProfilePath:  u.provider.ImageURL(person.ProfilePath),
	}, nil
}

func (u *MovieUseCase) GetPersonCredits(ctx context.Context, personID string) ([]MovieCard, error) {
	credits, err := u.provider.GetPersonCredits(ctx, personID)
	if err != nil {
		return nil, err
	}
	return u.cards(&tmdb.MovieList{Results: credits.Cast}), nil
}
