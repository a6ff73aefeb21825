package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-diary/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// castLimit is how many billed cast names end up on a diary entry.
const castLimit = 5

type tmdbClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewTMDBClient creates a Client backed by The Movie Database API.
// With an empty API key every call returns empty results, the rest of the
// application keeps working without metadata.
func NewTMDBClient(config utils.TMDBConfig, log *zap.Logger) Client {
	return &tmdbClient{
		apiKey:  config.APIKey,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		// TMDB allows ~40 requests per 10 seconds
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		log:     log.With(zap.String("client", "tmdb")),
	}
}

type tmdbSearchResponse struct {
	Results []struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		PosterPath  string `json:"poster_path"`
		ReleaseDate string `json:"release_date"`
	} `json:"results"`
}

type tmdbCreditsResponse struct {
	Cast []struct {
		Name string `json:"name"`
	} `json:"cast"`
	Crew []struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

// get performs one provider call and decodes the body into out.
func (c *tmdbClient) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *tmdbClient) Search(ctx context.Context, query string) []Movie {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if c.apiKey == "" {
		c.log.Warn("TMDB API key is missing, search disabled")
		return nil
	}

	endpoint := fmt.Sprintf(
		"%s/search/movie?api_key=%s&query=%s&include_adult=false&language=en-US&page=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query),
	)

	var data tmdbSearchResponse
	if err := c.get(ctx, endpoint, &data); err != nil {
		c.log.Warn("Movie search failed",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil
	}

	movies := make([]Movie, len(data.Results))
	for i, item := range data.Results {
		movies[i] = Movie{
			ID:          item.ID,
			Title:       item.Title,
			PosterPath:  item.PosterPath,
			ReleaseDate: item.ReleaseDate,
		}
	}

	return movies
}

func (c *tmdbClient) Credits(ctx context.Context, movieID int64) Credits {
	if c.apiKey == "" {
		return Credits{}
	}

	endpoint := fmt.Sprintf(
		"%s/movie/%d/credits?api_key=%s",
		c.baseURL, movieID, url.QueryEscape(c.apiKey),
	)

	var data tmdbCreditsResponse
	if err := c.get(ctx, endpoint, &data); err != nil {
		c.log.Warn("Credits lookup failed",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return Credits{}
	}

	var credits Credits
	for _, member := range data.Crew {
		if member.Job == "Director" {
			credits.Director = member.Name
			break
		}
	}

	names := make([]string, 0, castLimit)
	for _, member := range data.Cast {
		if len(names) == castLimit {
			break
		}
		names = append(names, member.Name)
	}
	credits.Cast = strings.Join(names, ", ")

	return credits
}
