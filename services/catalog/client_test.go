package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelview/models"
	"reelview/services/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *catalog.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return catalog.NewClient(catalog.Config{
		APIKey:      "test-key",
		BearerToken: "test-token",
		Language:    "en-US",
		Region:      "US",
		BaseURL:     server.URL,
	})
}

func TestPopularMoviesTagsAndPaginates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 2,
			"results": [{"id": 603, "title": "The Matrix", "release_date": "1999-03-30", "popularity": 88.5, "vote_average": 8.2}],
			"total_pages": 500,
			"total_results": 10000
		}`))
	})

	result, err := client.PopularMovies(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 500, result.TotalPages)
	assert.Equal(t, 10000, result.TotalResults)
	require.Len(t, result.Items, 1)
	assert.Equal(t, models.KindMovie, result.Items[0].Kind)
	assert.Equal(t, "The Matrix", result.Items[0].Title)
	assert.Equal(t, "1999-03-30", result.Items[0].ReleaseDate)
}

func TestPopularSeriesUsesNameAndFirstAirDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/popular", r.URL.Path)
		w.Write([]byte(`{
			"page": 1,
			"results": [{"id": 1399, "name": "Game of Thrones", "first_air_date": "2011-04-17", "popularity": 120.1}],
			"total_pages": 300,
			"total_results": 6000
		}`))
	})

	result, err := client.PopularSeries(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, models.KindSeries, result.Items[0].Kind)
	assert.Equal(t, "Game of Thrones", result.Items[0].Title)
	assert.Equal(t, "2011-04-17", result.Items[0].ReleaseDate)
}

func TestListEndpoints(t *testing.T) {
	var lastPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		lastPath = r.URL.Path
		w.Write([]byte(`{"page":1,"results":[],"total_pages":1,"total_results":0}`))
	})

	cases := []struct {
		call func() error
		path string
	}{
		{func() error { _, err := client.NowPlayingMovies(context.Background(), 1); return err }, "/movie/now_playing"},
		{func() error { _, err := client.TopRatedMovies(context.Background(), 1); return err }, "/movie/top_rated"},
		{func() error { _, err := client.UpcomingMovies(context.Background(), 1); return err }, "/movie/upcoming"},
		{func() error { _, err := client.OnTheAirSeries(context.Background(), 1); return err }, "/tv/on_the_air"},
		{func() error { _, err := client.TopRatedSeries(context.Background(), 1); return err }, "/tv/top_rated"},
		{func() error { _, err := client.KDramas(context.Background(), 1); return err }, "/discover/tv"},
		{func() error { _, err := client.AnimatedMovies(context.Background(), 1); return err }, "/discover/movie"},
	}
	for _, tc := range cases {
		require.NoError(t, tc.call())
		assert.Equal(t, tc.path, lastPath)
	}
}

func TestMediaByProviderSetsDiscoverParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/tv", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("with_watch_providers"))
		assert.Equal(t, "US", r.URL.Query().Get("watch_region"))
		w.Write([]byte(`{"page":1,"results":[],"total_pages":1,"total_results":0}`))
	})

	_, err := client.MediaByProvider(context.Background(), "8", models.KindSeries, 1)
	require.NoError(t, err)
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.MovieDetails(context.Background(), 1)
	require.Error(t, err)

	var statusErr *catalog.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServerErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"page":1,"results":[],"total_pages":1,"total_results":0}`))
	})

	_, err := client.PopularMovies(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestUnconfiguredClientFails(t *testing.T) {
	client := catalog.NewClient(catalog.Config{})

	_, err := client.PopularMovies(context.Background(), 1)
	assert.ErrorIs(t, err, catalog.ErrNotConfigured)
}

func TestMovieDetailsMapsRuntime(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Write([]byte(`{"id":603,"title":"The Matrix","runtime":136,"tagline":"Free your mind","genres":[{"id":28,"name":"Action"}]}`))
	})

	details, err := client.MovieDetails(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, 136, details.RuntimeMinutes)
	assert.Equal(t, "Free your mind", details.Tagline)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "Action", details.Genres[0].Name)
	assert.Equal(t, models.KindMovie, details.Kind)
}

func TestSeriesDetailsMapsEpisodeRuntimes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)
		w.Write([]byte(`{"id":1399,"name":"Game of Thrones","episode_run_time":[55,60],"number_of_seasons":8,"seasons":[{"id":1,"season_number":1,"episode_count":10}]}`))
	})

	details, err := client.SeriesDetails(context.Background(), 1399)
	require.NoError(t, err)

	assert.Equal(t, []int{55, 60}, details.EpisodeRuntimes)
	assert.Equal(t, 8, details.NumberOfSeasons)
	require.Len(t, details.Seasons, 1)
	assert.Equal(t, 10, details.Seasons[0].EpisodeCount)
	assert.Equal(t, models.KindSeries, details.Kind)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", catalog.ImageURL("/abc.jpg", ""))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/abc.jpg", catalog.ImageURL("/abc.jpg", "original"))
	assert.Equal(t, "/placeholder.svg", catalog.ImageURL("", "w500"))
}
