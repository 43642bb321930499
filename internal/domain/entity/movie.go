package entity

// MovieReview is a provider-supplied review shown on a movie page, augmented
// with transient vote counters. The counters live only in the viewing
// session; they are never persisted and reset when the session ends.
type MovieReview struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Content  string `json:"content"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

// RecommendationItem is one derived recommendation. Regenerated whenever the
// preference set changes, never persisted.
type RecommendationItem struct {
	MovieID    string `json:"movie_id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}
