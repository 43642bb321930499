package entity

import (
	"time"
)

// WatchlistEntry is one saved movie. Entries are keyed by a generated id, not
// by movie id: adding the same movie twice creates two distinct entries, and
// each is removable on its own.
type WatchlistEntry struct {
	ID          string    `json:"id" firestore:"id"`
	MovieID     string    `json:"movie_id" firestore:"movieId"`
	Title       string    `json:"title" firestore:"title"`
	Genres      []string  `json:"genres" firestore:"genres"`
	PosterPath  string    `json:"poster_path" firestore:"posterPath"`
	ReleaseDate string    `json:"release_date" firestore:"releaseDate"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
