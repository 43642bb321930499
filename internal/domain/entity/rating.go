package entity

import (
	"time"
)

// Rating is a user's score for one movie. Keyed by movie id in the user's
// ratings collection, so a later submit for the same movie replaces the
// earlier one.
type Rating struct {
	MovieID    string    `json:"movie_id" firestore:"movieId"`
	Title      string    `json:"title" firestore:"title"`
	PosterPath string    `json:"poster_path" firestore:"posterPath"`
	Score      int       `json:"score" firestore:"rating"`
	CreatedAt  time.Time `json:"created_at" firestore:"timestamp"`
}
