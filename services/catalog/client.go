// Package catalog is the typed client for the external media metadata API.
// It owns the request plumbing (auth, throttling, retry on transient
// failures) and normalizes every list payload into tagged MediaSummary
// values, so the movie-vs-series distinction is decided once at this
// boundary and nowhere else.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	imageBaseURL    = "https://image.tmdb.org/t/p"
	placeholderPath = "/placeholder.svg"
)

var ErrNotConfigured = errors.New("catalog api key not configured")

// StatusError is a non-2xx response from the catalog service.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog request failed: %s", e.Status)
}

// Config carries the client's connection settings.
type Config struct {
	APIKey      string
	BearerToken string
	Language    string
	Region      string
	BaseURL     string // defaults to the public API endpoint
	HTTPClient  *http.Client
}

// Client issues read-only queries against the catalog service.
type Client struct {
	apiKey      string
	bearerToken string
	language    string
	region      string
	baseURL     string
	httpc       *http.Client

	// Rate limiting
	throttleMu  sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// NewClient creates a catalog client from cfg.
func NewClient(cfg Config) *Client {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		bearerToken: strings.TrimSpace(cfg.BearerToken),
		language:    cfg.Language,
		region:      cfg.Region,
		baseURL:     baseURL,
		httpc:       httpc,
		minInterval: 20 * time.Millisecond,
	}
}

func (c *Client) isConfigured() bool {
	return c != nil && c.apiKey != ""
}

// doGET fetches endpoint with the given query params and decodes the JSON
// response into v. Transient failures (network errors, 429, 5xx) are retried
// with exponential backoff; other client errors fail immediately.
func (c *Client) doGET(ctx context.Context, endpoint string, params url.Values, v any) error {
	if !c.isConfigured() {
		return ErrNotConfigured
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" && params.Get("language") == "" {
		params.Set("language", c.language)
	}
	reqURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "?" + params.Encode()

	return retry.Do(
		func() error {
			c.throttle()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Accept", "application/json")
			if c.bearerToken != "" {
				req.Header.Set("Authorization", "Bearer "+c.bearerToken)
			}

			resp, err := c.httpc.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				return &StatusError{Code: resp.StatusCode, Status: resp.Status}
			}
			if resp.StatusCode >= 400 {
				return retry.Unrecoverable(&StatusError{Code: resp.StatusCode, Status: resp.Status})
			}

			if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode catalog response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(300*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

func (c *Client) throttle() {
	c.throttleMu.Lock()
	defer c.throttleMu.Unlock()
	if since := time.Since(c.lastRequest); since < c.minInterval {
		time.Sleep(c.minInterval - since)
	}
	c.lastRequest = time.Now()
}

// ImageURL maps an artwork path to a CDN URL at the requested size
// (w300, w500, w780, w1280, original). An empty path yields the placeholder.
func ImageURL(path, size string) string {
	if path == "" {
		return placeholderPath
	}
	if size == "" {
		size = "w500"
	}
	return imageBaseURL + "/" + size + path
}

func pageParams(page int) url.Values {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	return params
}
