package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/internal/infrastructure/websocket"
	"moviehub/pkg/logger"
)

// LiveSessionUseCase keeps an attached client in sync with its user record.
// Attaching opens live subscriptions on the ratings, reviews and watchlist
// collections plus the profile document; every full snapshot is pushed to
// the client as an authoritative replacement for what it had. Detaching
// releases every subscription and drops the session's transient vote
// tallies.
type LiveSessionUseCase struct {
	ratingRepo    repository.RatingRepository
	reviewRepo    repository.ReviewRepository
	watchlistRepo repository.WatchlistRepository
	userRepo      repository.UserRepository
	hub           *websocket.Hub
	recommender   *RecommendationUseCase

	mu       sync.Mutex
	sessions map[string]*liveSession
}

type liveSession struct {
	userID  string
	cancels []func()
	overlay *VoteOverlay
}

func NewLiveSessionUseCase(
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
	watchlistRepo repository.WatchlistRepository,
	userRepo repository.UserRepository,
	hub *websocket.Hub,
	recommender *RecommendationUseCase,
) *LiveSessionUseCase {
	return &LiveSessionUseCase{
		ratingRepo:    ratingRepo,
		reviewRepo:    reviewRepo,
		watchlistRepo: watchlistRepo,
		userRepo:      userRepo,
		hub:           hub,
		recommender:   recommender,
		sessions:      make(map[string]*liveSession),
	}
}

func (u *LiveSessionUseCase) push(userID, kind string, data interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"type": kind,
		"data": data,
	})
	if err != nil {
		logger.Error("Failed to encode %s update for %s: %v", kind, userID, err)
		return
	}
	u.hub.SendToUser(userID, message)
}

// Attach starts a live session. An existing session for the same user is
// torn down first, so each user record has exactly one subscription owner.
func (u *LiveSessionUseCase) Attach(ctx context.Context, userID string) error {
	u.Detach(userID)

	session := &liveSession{
		userID:  userID,
		overlay: NewVoteOverlay(),
	}

	cancelRatings, err := u.ratingRepo.Watch(ctx, userID, func(ratings []entity.Rating) {
		u.push(userID, "ratings", ratings)
	})
	if err != nil {
		return err
	}
	session.cancels = append(session.cancels, cancelRatings)

	cancelReviews, err := u.reviewRepo.Watch(ctx, userID, func(reviews []entity.Review) {
		u.push(userID, "reviews", reviews)
	})
	if err != nil {
		session.teardown()
		return err
	}
	session.cancels = append(session.cancels, cancelReviews)

	cancelWatchlist, err := u.watchlistRepo.Watch(ctx, userID, func(entries []entity.WatchlistEntry) {
		u.push(userID, "watchlist", entries)
	})
	if err != nil {
		session.teardown()
		return err
	}
	session.cancels = append(session.cancels, cancelWatchlist)

	cancelProfile, err := u.userRepo.Watch(ctx, userID, func(profile *entity.Profile) {
		u.push(userID, "profile", profile)

		// A preference change regenerates recommendations. Stale overlapping
		// refreshes are discarded by the engine, so firing on every profile
		// snapshot is safe.
		go func() {
			items, err := u.recommender.Refresh(context.Background(), userID, profile.Preferences)
			if err != nil {
				logger.Error("Recommendation refresh failed for %s: %v", userID, err)
				return
			}
			u.push(userID, "recommendations", items)
		}()
	})
	if err != nil {
		session.teardown()
		return err
	}
	session.cancels = append(session.cancels, cancelProfile)

	u.mu.Lock()
	u.sessions[userID] = session
	u.mu.Unlock()

	logger.Info("Live session attached for user %s", userID)
	return nil
}

// Detach ends a user's live session: every subscription is released and the
// transient vote tallies are dropped. Safe to call when no session exists.
func (u *LiveSessionUseCase) Detach(userID string) {
	u.mu.Lock()
	session, ok := u.sessions[userID]
	delete(u.sessions, userID)
	u.mu.Unlock()

	if !ok {
		return
	}

	session.teardown()
	u.recommender.Forget(userID)
	logger.Info("Live session detached for user %s", userID)
}

// Overlay returns the session's vote overlay, or nil when the user has no
// attached session.
func (u *LiveSessionUseCase) Overlay(userID string) *VoteOverlay {
	u.mu.Lock()
	defer u.mu.Unlock()

	if session, ok := u.sessions[userID]; ok {
		return session.overlay
	}
	return nil
}

func (s *liveSession) teardown() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}
