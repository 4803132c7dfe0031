package catalog

import (
	"context"
	"fmt"

	"reelview/models"
)

type rawCastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

func (c *Client) credits(ctx context.Context, endpoint string) (*models.Credits, error) {
	var raw struct {
		Cast []rawCastMember `json:"cast"`
	}
	if err := c.doGET(ctx, endpoint, nil, &raw); err != nil {
		return nil, err
	}

	credits := &models.Credits{Cast: make([]models.CastMember, 0, len(raw.Cast))}
	for _, member := range raw.Cast {
		credits.Cast = append(credits.Cast, models.CastMember{
			ID:          member.ID,
			Name:        member.Name,
			Character:   member.Character,
			ProfilePath: member.ProfilePath,
			Order:       member.Order,
		})
	}
	return credits, nil
}

// PersonDetails returns the biography record for a person.
func (c *Client) PersonDetails(ctx context.Context, id int64) (*models.PersonDetails, error) {
	var raw struct {
		ID                 int64   `json:"id"`
		Name               string  `json:"name"`
		Biography          string  `json:"biography"`
		Birthday           string  `json:"birthday"`
		Deathday           string  `json:"deathday"`
		KnownForDepartment string  `json:"known_for_department"`
		PlaceOfBirth       string  `json:"place_of_birth"`
		ProfilePath        string  `json:"profile_path"`
		Popularity         float64 `json:"popularity"`
	}
	if err := c.doGET(ctx, fmt.Sprintf("person/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	return &models.PersonDetails{
		ID:                 raw.ID,
		Name:               raw.Name,
		Biography:          raw.Biography,
		Birthday:           raw.Birthday,
		Deathday:           raw.Deathday,
		KnownForDepartment: raw.KnownForDepartment,
		PlaceOfBirth:       raw.PlaceOfBirth,
		ProfilePath:        raw.ProfilePath,
		Popularity:         raw.Popularity,
	}, nil
}

type rawPersonCredit struct {
	rawMedia
	Character string `json:"character"`
	Job       string `json:"job"`
}

func toPersonCredits(raws []rawPersonCredit) []models.PersonCredit {
	credits := make([]models.PersonCredit, 0, len(raws))
	for _, raw := range raws {
		credits = append(credits, models.PersonCredit{
			MediaSummary: summarize(raw.rawMedia, inferKind(raw.rawMedia)),
			Character:    raw.Character,
			Job:          raw.Job,
		})
	}
	return credits
}

// PersonCombinedCredits returns a person's movie and series appearances.
func (c *Client) PersonCombinedCredits(ctx context.Context, id int64) (*models.PersonCredits, error) {
	var raw struct {
		Cast []rawPersonCredit `json:"cast"`
		Crew []rawPersonCredit `json:"crew"`
	}
	if err := c.doGET(ctx, fmt.Sprintf("person/%d/combined_credits", id), nil, &raw); err != nil {
		return nil, err
	}
	return &models.PersonCredits{
		Cast: toPersonCredits(raw.Cast),
		Crew: toPersonCredits(raw.Crew),
	}, nil
}

type rawImage struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
}

func toImages(raws []rawImage) []models.ProfileImage {
	images := make([]models.ProfileImage, 0, len(raws))
	for _, raw := range raws {
		images = append(images, models.ProfileImage{
			FilePath:    raw.FilePath,
			Width:       raw.Width,
			Height:      raw.Height,
			AspectRatio: raw.AspectRatio,
			VoteAverage: raw.VoteAverage,
		})
	}
	return images
}

// PersonImages returns a person's profile images.
func (c *Client) PersonImages(ctx context.Context, id int64) ([]models.ProfileImage, error) {
	var raw struct {
		Profiles []rawImage `json:"profiles"`
	}
	if err := c.doGET(ctx, fmt.Sprintf("person/%d/images", id), nil, &raw); err != nil {
		return nil, err
	}
	return toImages(raw.Profiles), nil
}

// MediaImages returns the artwork available for a movie or series.
func (c *Client) MediaImages(ctx context.Context, kind models.MediaKind, id int64) (*models.MediaImages, error) {
	endpoint := fmt.Sprintf("movie/%d/images", id)
	if kind == models.KindSeries {
		endpoint = fmt.Sprintf("tv/%d/images", id)
	}

	var raw struct {
		ID        int64      `json:"id"`
		Backdrops []rawImage `json:"backdrops"`
		Posters   []rawImage `json:"posters"`
		Logos     []rawImage `json:"logos"`
	}
	if err := c.doGET(ctx, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return &models.MediaImages{
		ID:        raw.ID,
		Backdrops: toImages(raw.Backdrops),
		Posters:   toImages(raw.Posters),
		Logos:     toImages(raw.Logos),
	}, nil
}
