package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviehub/pkg/errors"
)

// Client talks to the catalog provider over HTTP. The API key and base URLs
// are injected at construction; there are no embedded credentials.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	imageURL   string
}

func NewClient(apiKey, baseURL, imageURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		imageURL:   strings.TrimRight(imageURL, "/"),
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.ProviderFetch("Failed to build provider request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.ProviderFetch("Provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.ProviderFetch(fmt.Sprintf("Provider returned status %d for %s", resp.StatusCode, path), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.ProviderFetch("Failed to decode provider response", err)
	}
	return nil
}

// GetMovie fetches full movie details with credits, reviews, videos, images
// and watch providers appended in one call.
func (c *Client) GetMovie(ctx context.Context, id string) (*Movie, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,reviews,videos,images,watch/providers")

	var movie Movie
	if err := c.get(ctx, "/movie/"+url.PathEscape(id), params, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) GetPerson(ctx context.Context, id string) (*Person, error) {
	var person Person
	if err := c.get(ctx, "/person/"+url.PathEscape(id), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (c *Client) GetPersonCredits(ctx context.Context, id string) (*PersonCredits, error) {
	var credits PersonCredits
	if err := c.get(ctx, "/person/"+url.PathEscape(id)+"/movie_credits", nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// DiscoverByGenres runs the multi-genre discovery filter. Genre ids are
// comma-joined; pages are 1-based.
func (c *Client) DiscoverByGenres(ctx context.Context, genreIDs []int, page int) (*MovieList, error) {
	joined := make([]string, len(genreIDs))
	for i, id := range genreIDs {
		joined[i] = strconv.Itoa(id)
	}

	params := url.Values{}
	params.Set("with_genres", strings.Join(joined, ","))
	params.Set("page", strconv.Itoa(page))

	var list MovieList
	if err := c.get(ctx, "/discover/movie", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetTrending(ctx context.Context, window string) (*MovieList, error) {
	if window != "day" && window != "week" {
		window = "week"
	}

	var list MovieList
	if err := c.get(ctx, "/trending/movie/"+window, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetUpcoming(ctx context.Context) (*MovieList, error) {
	var list MovieList
	if err := c.get(ctx, "/movie/upcoming", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetPopular(ctx context.Context, page int) (*MovieList, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var list MovieList
	if err := c.get(ctx, "/movie/popular", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ImageURL resolves a provider image path against the configured image host.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.imageURL + path
}
