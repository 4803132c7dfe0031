package discover_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelview/models"
	"reelview/services/discover"
)

type fakeCatalog struct {
	popularMovies  models.PagedResult
	popularSeries  models.PagedResult
	upcomingMovies models.PagedResult
	topRatedSeries models.PagedResult
	byProvider     map[models.MediaKind]models.PagedResult

	popularMoviesErr error
	popularSeriesErr error

	lastProviderID string
	pages          []int
}

func (f *fakeCatalog) PopularMovies(_ context.Context, page int) (models.PagedResult, error) {
	f.pages = append(f.pages, page)
	return f.popularMovies, f.popularMoviesErr
}

func (f *fakeCatalog) PopularSeries(_ context.Context, page int) (models.PagedResult, error) {
	f.pages = append(f.pages, page)
	return f.popularSeries, f.popularSeriesErr
}

func (f *fakeCatalog) UpcomingMovies(_ context.Context, page int) (models.PagedResult, error) {
	return f.upcomingMovies, nil
}

func (f *fakeCatalog) TopRatedMovies(_ context.Context, page int) (models.PagedResult, error) {
	return models.PagedResult{Page: page, TotalPages: 7, TotalResults: 140}, nil
}

func (f *fakeCatalog) TopRatedSeries(_ context.Context, page int) (models.PagedResult, error) {
	return f.topRatedSeries, nil
}

func (f *fakeCatalog) KDramas(_ context.Context, page int) (models.PagedResult, error) {
	return models.PagedResult{Page: page}, nil
}

func (f *fakeCatalog) AnimatedMovies(_ context.Context, page int) (models.PagedResult, error) {
	return models.PagedResult{Page: page}, nil
}

func (f *fakeCatalog) AnimatedSeries(_ context.Context, page int) (models.PagedResult, error) {
	return models.PagedResult{Page: page}, nil
}

func (f *fakeCatalog) MediaByProvider(_ context.Context, providerID string, kind models.MediaKind, page int) (models.PagedResult, error) {
	f.lastProviderID = providerID
	return f.byProvider[kind], nil
}

func movie(id int64, popularity float64) models.MediaSummary {
	return models.MediaSummary{ID: id, Kind: models.KindMovie, Popularity: popularity}
}

func series(id int64, popularity float64) models.MediaSummary {
	return models.MediaSummary{ID: id, Kind: models.KindSeries, Popularity: popularity}
}

func TestTrendingNowMergesBothSources(t *testing.T) {
	cat := &fakeCatalog{
		popularMovies: models.PagedResult{
			Page:         1,
			Items:        []models.MediaSummary{movie(1, 50), movie(2, 10)},
			TotalPages:   500,
			TotalResults: 10000,
		},
		popularSeries: models.PagedResult{
			Page:         1,
			Items:        []models.MediaSummary{series(3, 80), series(4, 10)},
			TotalPages:   300,
			TotalResults: 6000,
		},
	}
	svc := discover.NewService(cat)

	result, err := svc.Media(context.Background(), "trending-now", 1)
	require.NoError(t, err)

	assert.Equal(t, 300, result.TotalPages, "merged totalPages is the min of both sources")
	assert.Equal(t, 16000, result.TotalResults, "merged totalResults is the sum of both sources")
	assert.Equal(t, 1, result.Page)

	// Sorted by descending popularity; the tie between movie 2 and series 4
	// keeps concatenation order (movies first).
	ids := make([]int64, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int64{3, 1, 2, 4}, ids)
	assert.Equal(t, models.KindMovie, result.Items[2].Kind)
	assert.Equal(t, models.KindSeries, result.Items[3].Kind)
}

func TestMergeIsStableAcrossEqualPopularity(t *testing.T) {
	first := models.PagedResult{
		Items: []models.MediaSummary{movie(1, 5), movie(2, 5), movie(3, 5)},
	}
	second := models.PagedResult{
		Items: []models.MediaSummary{series(4, 5), series(5, 5)},
	}

	merged := discover.MergePages(first, second)

	ids := make([]int64, 0, len(merged.Items))
	for _, item := range merged.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids)
}

func TestMediaFailsWhenEitherBranchFails(t *testing.T) {
	upstreamErr := errors.New("upstream down")
	cat := &fakeCatalog{popularSeriesErr: upstreamErr}
	svc := discover.NewService(cat)

	result, err := svc.Media(context.Background(), "trending-now", 1)
	require.ErrorIs(t, err, upstreamErr)
	assert.Empty(t, result.Items, "no partial data on failure")
	assert.Zero(t, result.TotalResults)
}

func TestMediaUnknownSlug(t *testing.T) {
	svc := discover.NewService(&fakeCatalog{})

	_, err := svc.Media(context.Background(), "not-a-real-category", 1)
	assert.ErrorIs(t, err, discover.ErrUnknownCategory)
}

func TestMediaNormalizesPage(t *testing.T) {
	cat := &fakeCatalog{}
	svc := discover.NewService(cat)

	_, err := svc.Media(context.Background(), "trending-now", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, cat.pages)
}

func TestProviderCategoriesRegistered(t *testing.T) {
	cat := &fakeCatalog{
		byProvider: map[models.MediaKind]models.PagedResult{
			models.KindMovie:  {Page: 1, Items: []models.MediaSummary{movie(1, 9)}, TotalPages: 4, TotalResults: 70},
			models.KindSeries: {Page: 1, Items: []models.MediaSummary{series(2, 11)}, TotalPages: 6, TotalResults: 110},
		},
	}
	svc := discover.NewService(cat)

	result, err := svc.Media(context.Background(), "8", 1)
	require.NoError(t, err)
	assert.Equal(t, "8", cat.lastProviderID)
	assert.Equal(t, "Available on Netflix", svc.Title("8"))
	assert.Equal(t, 4, result.TotalPages)
	assert.Equal(t, 180, result.TotalResults)
	require.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Items[0].ID, "series outranks movie on popularity")
}

func TestTitleFallsBackToDiscover(t *testing.T) {
	svc := discover.NewService(&fakeCatalog{})

	assert.Equal(t, "Trending Now", svc.Title("trending-now"))
	assert.Equal(t, "Discover", svc.Title("nope"))
}

func TestSlugsIncludeStaticAndProviderCategories(t *testing.T) {
	svc := discover.NewService(&fakeCatalog{})

	slugs := svc.Slugs()
	assert.Contains(t, slugs, "trending-now")
	assert.Contains(t, slugs, "new-this-week")
	assert.Contains(t, slugs, "top-rated-movies")
	for id := range discover.Providers {
		assert.Contains(t, slugs, id)
	}
}
