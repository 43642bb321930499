package usecase

import (
	"context"
	"strconv"
	"sync"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/internal/infrastructure/tmdb"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
)

const (
	initialVisible = 6
	revealStep     = 9
)

// RecommendationUseCase derives a ranked movie list from a user's preferred
// genres. The full fetched set and a visible-count cursor are kept per user:
// "show more" reveals already-fetched items first and only fetches the next
// discovery page when the current ones are exhausted. Overlapping refreshes
// are resolved last-write-wins; a superseded fetch's result is discarded on
// arrival.
type RecommendationUseCase struct {
	provider CatalogProvider
	userRepo repository.UserRepository

	mu     sync.Mutex
	states map[string]*recommendState
}

type recommendState struct {
	generation int
	genreIDs   []int
	fetched    []entity.RecommendationItem
	visible    int
	page       int
	totalPages int
}

func NewRecommendationUseCase(provider CatalogProvider, userRepo repository.UserRepository) *RecommendationUseCase {
	return &RecommendationUseCase{
		provider: provider,
		userRepo: userRepo,
		states:   make(map[string]*recommendState),
	}
}

// state must be called with u.mu held.
func (u *RecommendationUseCase) state(userID string) *recommendState {
	st, ok := u.states[userID]
	if !ok {
		st = &recommendState{}
		u.states[userID] = st
	}
	return st
}

// visibleLocked must be called with u.mu held.
func (st *recommendState) visibleLocked() []entity.RecommendationItem {
	n := st.visible
	if n > len(st.fetched) {
		n = len(st.fetched)
	}
	return append([]entity.RecommendationItem(nil), st.fetched[:n]...)
}

func (u *RecommendationUseCase) mapResults(results []tmdb.MovieSummary) []entity.RecommendationItem {
	items := make([]entity.RecommendationItem, 0, len(results))
	for _, movie := range results {
		items = append(items, entity.RecommendationItem{
			MovieID:    strconv.Itoa(movie.ID),
			Title:      movie.Title,
			PosterPath: u.provider.ImageURL(movie.PosterPath),
		})
	}
	return items
}

// Refresh recomputes recommendations for a preference set. Unknown genre
// names are dropped before the provider call; an empty id set skips the call
// entirely and yields an empty list. Provider failures degrade to an empty
// list rather than failing the view.
func (u *RecommendationUseCase) Refresh(ctx context.Context, userID string, genreNames []string) ([]entity.RecommendationItem, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to see recommendations")
	}

	ids := entity.GenreIDsFor(genreNames)

	u.mu.Lock()
	st := u.state(userID)
	st.generation++
	gen := st.generation
	st.genreIDs = ids

	if len(ids) == 0 {
		st.fetched = nil
		st.visible = 0
		st.page = 0
		st.totalPages = 0
		u.mu.Unlock()
		return []entity.RecommendationItem{}, nil
	}
	u.mu.Unlock()

	list, err := u.provider.DiscoverByGenres(ctx, ids, 1)

	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != st.generation {
		// A newer preference set superseded this fetch; drop the result.
		return st.visibleLocked(), nil
	}

	if err != nil {
		logger.Error("Recommendation fetch failed for user %s: %v", userID, err)
		st.fetched = nil
		st.visible = 0
		st.page = 0
		st.totalPages = 0
		return []entity.RecommendationItem{}, nil
	}

	st.fetched = u.mapResults(list.Results)
	st.page = list.Page
	st.totalPages = list.TotalPages
	st.visible = initialVisible
	return st.visibleLocked(), nil
}

// Get returns the currently visible recommendations, computing them from the
// stored preference set on first use.
func (u *RecommendationUseCase) Get(ctx context.Context, userID string) ([]entity.RecommendationItem, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to see recommendations")
	}

	u.mu.Lock()
	st, ok := u.states[userID]
	if ok && st.generation > 0 {
		items := st.visibleLocked()
		u.mu.Unlock()
		return items, nil
	}
	u.mu.Unlock()

	profile, err := u.userRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return []entity.RecommendationItem{}, nil
		}
		return nil, err
	}
	return u.Refresh(ctx, userID, profile.Preferences)
}

// ShowMore widens the visible window. Already-fetched items are revealed
// without a provider call; when the window would pass the fetched set and
// more discovery pages exist, the next page is fetched and appended.
func (u *RecommendationUseCase) ShowMore(ctx context.Context, userID string) ([]entity.RecommendationItem, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Log in to see recommendations")
	}

	u.mu.Lock()
	st := u.state(userID)
	want := st.visible + revealStep

	if want > len(st.fetched) && st.page > 0 && st.page < st.totalPages {
		gen := st.generation
		ids := append([]int(nil), st.genreIDs...)
		next := st.page + 1
		u.mu.Unlock()

		list, err := u.provider.DiscoverByGenres(ctx, ids, next)

		u.mu.Lock()
		if gen == st.generation {
			if err != nil {
				logger.Error("Recommendation page %d fetch failed for user %s: %v", next, userID, err)
			} else {
				st.fetched = append(st.fetched, u.mapResults(list.Results)...)
				st.page = next
				st.totalPages = list.TotalPages
			}
		}
		want = st.visible + revealStep
	}

	if want > len(st.fetched) {
		want = len(st.fetched)
	}
	st.visible = want
	items := st.visibleLocked()
	u.mu.Unlock()
	return items, nil
}

// Current returns the visible set without triggering any fetch.
func (u *RecommendationUseCase) Current(userID string) []entity.RecommendationItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	st, ok := u.states[userID]
	if !ok {
		return []entity.RecommendationItem{}
	}
	return st.visibleLocked()
}

// Forget drops a user's recommendation state when their session ends.
func (u *RecommendationUseCase) Forget(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.states, userID)
}
