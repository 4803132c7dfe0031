package catalog

import (
	"context"
	"fmt"
	"net/url"

	"reelview/models"
)

// PopularSeries returns the popularity-ranked series list.
func (c *Client) PopularSeries(ctx context.Context, page int) (models.PagedResult, error) {
	return c.seriesList(ctx, "tv/popular", pageParams(page))
}

// TopRatedSeries returns the rating-ranked series list.
func (c *Client) TopRatedSeries(ctx context.Context, page int) (models.PagedResult, error) {
	return c.seriesList(ctx, "tv/top_rated", pageParams(page))
}

// OnTheAirSeries returns series currently airing.
func (c *Client) OnTheAirSeries(ctx context.Context, page int) (models.PagedResult, error) {
	return c.seriesList(ctx, "tv/on_the_air", pageParams(page))
}

// KDramas discovers Korean series sorted by popularity.
func (c *Client) KDramas(ctx context.Context, page int) (models.PagedResult, error) {
	params := pageParams(page)
	params.Set("with_origin_country", "KR")
	params.Set("sort_by", "popularity.desc")
	return c.seriesList(ctx, "discover/tv", params)
}

// AnimatedSeries discovers animated series sorted by popularity.
func (c *Client) AnimatedSeries(ctx context.Context, page int) (models.PagedResult, error) {
	params := pageParams(page)
	params.Set("with_genres", "16")
	params.Set("sort_by", "popularity.desc")
	return c.seriesList(ctx, "discover/tv", params)
}

// SearchSeries searches series by free-text query.
func (c *Client) SearchSeries(ctx context.Context, query string, page int) (models.PagedResult, error) {
	params := pageParams(page)
	params.Set("query", query)
	return c.seriesList(ctx, "search/tv", params)
}

// SeriesRecommendations returns recommendations for a series.
func (c *Client) SeriesRecommendations(ctx context.Context, id int64, page int) (models.PagedResult, error) {
	return c.seriesList(ctx, fmt.Sprintf("tv/%d/recommendations", id), pageParams(page))
}

// MediaByProvider discovers items of one kind available on a streaming
// provider in the configured region.
func (c *Client) MediaByProvider(ctx context.Context, providerID string, kind models.MediaKind, page int) (models.PagedResult, error) {
	params := pageParams(page)
	params.Set("with_watch_providers", providerID)
	region := c.region
	if region == "" {
		region = "US"
	}
	params.Set("watch_region", region)

	endpoint := "discover/movie"
	if kind == models.KindSeries {
		endpoint = "discover/tv"
	}

	var env pagedEnvelope
	if err := c.doGET(ctx, endpoint, params, &env); err != nil {
		return models.PagedResult{}, err
	}
	return toPage(env, kind), nil
}

func (c *Client) seriesList(ctx context.Context, endpoint string, params url.Values) (models.PagedResult, error) {
	var env pagedEnvelope
	if err := c.doGET(ctx, endpoint, params, &env); err != nil {
		return models.PagedResult{}, err
	}
	return toPage(env, models.KindSeries), nil
}

type rawSeriesDetails struct {
	rawMedia
	Genres         []models.Genre `json:"genres"`
	EpisodeRunTime []int          `json:"episode_run_time"`
	Tagline        string         `json:"tagline"`
	SeasonCount    int            `json:"number_of_seasons"`

	Networks []struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		LogoPath      string `json:"logo_path"`
		OriginCountry string `json:"origin_country"`
	} `json:"networks"`
	Seasons []rawSeason `json:"seasons"`
}

type rawSeason struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	AirDate      string  `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	SeasonNumber int     `json:"season_number"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}

func (r rawSeason) toModel() models.Season {
	return models.Season{
		ID:           r.ID,
		Name:         r.Name,
		Overview:     r.Overview,
		AirDate:      r.AirDate,
		EpisodeCount: r.EpisodeCount,
		SeasonNumber: r.SeasonNumber,
		PosterPath:   r.PosterPath,
		VoteAverage:  r.VoteAverage,
	}
}

// SeriesDetails returns the full detail record for a series.
func (c *Client) SeriesDetails(ctx context.Context, id int64) (*models.SeriesDetails, error) {
	var raw rawSeriesDetails
	if err := c.doGET(ctx, fmt.Sprintf("tv/%d", id), nil, &raw); err != nil {
		return nil, err
	}

	details := &models.SeriesDetails{
		MediaSummary:    summarize(raw.rawMedia, models.KindSeries),
		Genres:          raw.Genres,
		EpisodeRuntimes: raw.EpisodeRunTime,
		Tagline:         raw.Tagline,
		NumberOfSeasons: raw.SeasonCount,
	}
	for _, n := range raw.Networks {
		details.Networks = append(details.Networks, models.Network{
			ID:            n.ID,
			Name:          n.Name,
			LogoPath:      n.LogoPath,
			OriginCountry: n.OriginCountry,
		})
	}
	for _, s := range raw.Seasons {
		details.Seasons = append(details.Seasons, s.toModel())
	}
	return details, nil
}

// SeasonDetails returns one season of a series with its episode list.
func (c *Client) SeasonDetails(ctx context.Context, seriesID int64, seasonNumber int) (*models.SeasonDetails, error) {
	var raw struct {
		rawSeason
		Episodes []struct {
			ID            int64   `json:"id"`
			Name          string  `json:"name"`
			Overview      string  `json:"overview"`
			AirDate       string  `json:"air_date"`
			EpisodeNumber int     `json:"episode_number"`
			StillPath     string  `json:"still_path"`
			VoteAverage   float64 `json:"vote_average"`
			Runtime       int     `json:"runtime"`
		} `json:"episodes"`
	}
	if err := c.doGET(ctx, fmt.Sprintf("tv/%d/season/%d", seriesID, seasonNumber), nil, &raw); err != nil {
		return nil, err
	}

	details := &models.SeasonDetails{Season: raw.rawSeason.toModel()}
	for _, ep := range raw.Episodes {
		details.Episodes = append(details.Episodes, models.Episode{
			ID:             ep.ID,
			Name:           ep.Name,
			Overview:       ep.Overview,
			AirDate:        ep.AirDate,
			EpisodeNumber:  ep.EpisodeNumber,
			StillPath:      ep.StillPath,
			VoteAverage:    ep.VoteAverage,
			RuntimeMinutes: ep.Runtime,
		})
	}
	return details, nil
}

// SeriesVideos returns trailers and clips for a series.
func (c *Client) SeriesVideos(ctx context.Context, id int64) ([]models.Video, error) {
	var env videoListEnvelope
	if err := c.doGET(ctx, fmt.Sprintf("tv/%d/videos", id), nil, &env); err != nil {
		return nil, err
	}
	return toVideos(env), nil
}

// SeriesCredits returns the billed cast for a series.
func (c *Client) SeriesCredits(ctx context.Context, id int64) (*models.Credits, error) {
	return c.credits(ctx, fmt.Sprintf("tv/%d/credits", id))
}
