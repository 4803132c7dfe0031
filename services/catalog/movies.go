package catalog

import (
	"context"
	"fmt"
	"net/url"

	"reelview/models"
)

// NowPlayingMovies returns movies currently in theaters.
func (c *Client) NowPlayingMovies(ctx context.Context, page int) (models.PagedResult, error) {
	return c.movieList(ctx, "movie/now_playing", pageParams(page))
}

// PopularMovies returns the popularity-ranked movie list.
func (c *Client) PopularMovies(ctx context.Context, page int) (models.PagedResult, error) {
	return c.movieList(ctx, "movie/popular", pageParams(page))
}

// TopRatedMovies returns the rating-ranked movie list.
func (c *Client) TopRatedMovies(ctx context.Context, page int) (models.PagedResult, error) {
	return c.movieList(ctx, "movie/top_rated", pageParams(page))
}

// UpcomingMovies returns movies with upcoming releases.
func (c *Client) UpcomingMovies(ctx context.Context, page int) (models.PagedResult, error) {
	return c.movieList(ctx, "movie/upcoming", pageParams(page))
}

// AnimatedMovies discovers animated movies sorted by popularity.
func (c *Client) AnimatedMovies(ctx context.Context, page int) (models.PagedResult, error) {
	params := pageParams(page)
	params.Set("with_genres", "16")
	params.Set("sort_by", "popularity.desc")
	return c.movieList(ctx, "discover/movie", params)
}

// SearchMovies searches movies by free-text query.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (models.PagedResult, error) {
	params := pageParams(page)
	params.Set("query", query)
	return c.movieList(ctx, "search/movie", params)
}

// MovieRecommendations returns recommendations for a movie.
func (c *Client) MovieRecommendations(ctx context.Context, id int64, page int) (models.PagedResult, error) {
	return c.movieList(ctx, fmt.Sprintf("movie/%d/recommendations", id), pageParams(page))
}

func (c *Client) movieList(ctx context.Context, endpoint string, params url.Values) (models.PagedResult, error) {
	var env pagedEnvelope
	if err := c.doGET(ctx, endpoint, params, &env); err != nil {
		return models.PagedResult{}, err
	}
	return toPage(env, models.KindMovie), nil
}

type rawMovieDetails struct {
	rawMedia
	Genres  []models.Genre `json:"genres"`
	Runtime int            `json:"runtime"`
	Tagline string         `json:"tagline"`

	ProductionCompanies []struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		LogoPath      string `json:"logo_path"`
		OriginCountry string `json:"origin_country"`
	} `json:"production_companies"`
}

// MovieDetails returns the full detail record for a movie.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*models.MovieDetails, error) {
	var raw rawMovieDetails
	if err := c.doGET(ctx, fmt.Sprintf("movie/%d", id), nil, &raw); err != nil {
		return nil, err
	}

	details := &models.MovieDetails{
		MediaSummary:   summarize(raw.rawMedia, models.KindMovie),
		Genres:         raw.Genres,
		RuntimeMinutes: raw.Runtime,
		Tagline:        raw.Tagline,
	}
	for _, pc := range raw.ProductionCompanies {
		details.ProductionCompanies = append(details.ProductionCompanies, models.ProductionCompany{
			ID:            pc.ID,
			Name:          pc.Name,
			LogoPath:      pc.LogoPath,
			OriginCountry: pc.OriginCountry,
		})
	}
	return details, nil
}

// MovieVideos returns trailers and clips for a movie.
func (c *Client) MovieVideos(ctx context.Context, id int64) ([]models.Video, error) {
	var env videoListEnvelope
	if err := c.doGET(ctx, fmt.Sprintf("movie/%d/videos", id), nil, &env); err != nil {
		return nil, err
	}
	return toVideos(env), nil
}

// MovieCredits returns the billed cast for a movie.
func (c *Client) MovieCredits(ctx context.Context, id int64) (*models.Credits, error) {
	return c.credits(ctx, fmt.Sprintf("movie/%d/credits", id))
}
