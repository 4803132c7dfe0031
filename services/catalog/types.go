package catalog

import (
	"reelview/models"
)

// rawMedia is the wire shape shared by movie and series list items. Movies
// carry title/release_date, series carry name/first_air_date; everything else
// overlaps.
type rawMedia struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Popularity   float64 `json:"popularity"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`
}

type pagedEnvelope struct {
	Page         int        `json:"page"`
	Results      []rawMedia `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type videoListEnvelope struct {
	Results []rawVideo `json:"results"`
}

type rawVideo struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

// inferKind applies the one sanctioned structural check: a raw item with a
// name field is a series, one with a title field is a movie. Items exposing
// neither default to movie.
func inferKind(raw rawMedia) models.MediaKind {
	if raw.Name != "" {
		return models.KindSeries
	}
	return models.KindMovie
}

func summarize(raw rawMedia, kind models.MediaKind) models.MediaSummary {
	summary := models.MediaSummary{
		ID:           raw.ID,
		Kind:         kind,
		Overview:     raw.Overview,
		Popularity:   raw.Popularity,
		PosterPath:   raw.PosterPath,
		BackdropPath: raw.BackdropPath,
		VoteAverage:  raw.VoteAverage,
		GenreIDs:     raw.GenreIDs,
	}
	if kind == models.KindSeries {
		summary.Title = raw.Name
		summary.ReleaseDate = raw.FirstAirDate
	} else {
		summary.Title = raw.Title
		summary.ReleaseDate = raw.ReleaseDate
	}
	return summary
}

// toPage converts a wire envelope to a display page. A zero kind means the
// source mixes movies and series and each item is tagged by inference.
func toPage(env pagedEnvelope, kind models.MediaKind) models.PagedResult {
	items := make([]models.MediaSummary, 0, len(env.Results))
	for _, raw := range env.Results {
		itemKind := kind
		if itemKind == "" {
			itemKind = inferKind(raw)
		}
		items = append(items, summarize(raw, itemKind))
	}
	return models.PagedResult{
		Page:         env.Page,
		Items:        items,
		TotalPages:   env.TotalPages,
		TotalResults: env.TotalResults,
	}
}

func toVideos(env videoListEnvelope) []models.Video {
	videos := make([]models.Video, 0, len(env.Results))
	for _, raw := range env.Results {
		videos = append(videos, models.Video{
			ID:          raw.ID,
			Key:         raw.Key,
			Name:        raw.Name,
			Site:        raw.Site,
			Type:        raw.Type,
			Official:    raw.Official,
			PublishedAt: raw.PublishedAt,
		})
	}
	return videos
}
