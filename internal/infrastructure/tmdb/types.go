package tmdb

// Response schemas for the catalog provider. Every endpoint decodes into an
// explicit struct here; nothing downstream handles untyped payloads.

type MovieSummary struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

type MovieList struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type CrewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type VideoList struct {
	Results []Video `json:"results"`
}

type Image struct {
	FilePath string `json:"file_path"`
}

type ImageList struct {
	Backdrops []Image `json:"backdrops"`
}

type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type ReviewList struct {
	Results []Review `json:"results"`
}

type WatchProvider struct {
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

type CountryWatchProviders struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate"`
}

type WatchProviders struct {
	Results map[string]CountryWatchProviders `json:"results"`
}

// Movie is the full detail payload with credits, reviews, videos, images and
// watch providers appended in a single request.
type Movie struct {
	ID               int            `json:"id"`
	Title            string         `json:"title"`
	Overview         string         `json:"overview"`
	OriginalLanguage string         `json:"original_language"`
	Revenue          int64          `json:"revenue"`
	ReleaseDate      string         `json:"release_date"`
	Runtime          int            `json:"runtime"`
	VoteAverage      float64        `json:"vote_average"`
	PosterPath       string         `json:"poster_path"`
	Genres           []Genre        `json:"genres"`
	Credits          Credits        `json:"credits"`
	Reviews          ReviewList     `json:"reviews"`
	Videos           VideoList      `json:"videos"`
	Images           ImageList      `json:"images"`
	WatchProviders   WatchProviders `json:"watch/providers"`
}

type Person struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Biography    string `json:"biography"`
	Birthday     string `json:"birthday"`
	PlaceOfBirth string `json:"place_of_birth"`
	ProfilePath  string `json:"profile_path"`
}

type PersonCredits struct {
	Cast []MovieSummary `json:"cast"`
}
