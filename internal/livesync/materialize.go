package livesync

import (
	"sort"

	"moviehub/internal/domain/entity"
)

// MaterializeRatings collapses a ratings snapshot to one entry per movie.
// The store keys ratings by movie id, but a re-keyed write can transiently
// surface the same movie under two document ids, so the snapshot is deduped
// by title with the most recently seen entry winning.
func MaterializeRatings(items []entity.Rating) []entity.Rating {
	index := make(map[string]int, len(items))
	out := make([]entity.Rating, 0, len(items))
	for _, item := range items {
		key := item.Title
		if key == "" {
			key = item.MovieID
		}
		if i, ok := index[key]; ok {
			out[i] = item
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out
}

// MaterializeReviews orders a reviews snapshot newest first. Server-side
// ordering is requested on the subscription, but a snapshot can still carry
// documents without a timestamp; those sort last.
func MaterializeReviews(items []entity.Review) []entity.Review {
	out := append([]entity.Review(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
	return out
}

// MaterializeWatchlist keeps a watchlist snapshot as delivered. Duplicate
// movies are intentional; each entry is independently removable by id.
func MaterializeWatchlist(items []entity.WatchlistEntry) []entity.WatchlistEntry {
	return append([]entity.WatchlistEntry(nil), items...)
}
