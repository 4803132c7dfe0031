// Package api wires the HTTP surface onto the services.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"reelview/handlers"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Discover         *handlers.DiscoverHandler
	Search           *handlers.SearchHandler
	Watchlist        *handlers.WatchlistHandler
	Progress         *handlers.ProgressHandler
	ContinueWatching *handlers.ContinueWatchingHandler
	Playback         *handlers.PlaybackHandler
	Media            *handlers.MediaHandler
}

// NewRouter builds the application router.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger())

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/discover/{slug}", h.Discover.Category).Methods(http.MethodGet)

	apiRouter.HandleFunc("/search", h.Search.Results).Methods(http.MethodGet)
	apiRouter.HandleFunc("/search/history", h.Search.History).Methods(http.MethodGet)

	apiRouter.HandleFunc("/watchlist", h.Watchlist.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/watchlist", h.Watchlist.Add).Methods(http.MethodPost)
	apiRouter.HandleFunc("/watchlist/{kind}/{id}", h.Watchlist.Contains).Methods(http.MethodGet)
	apiRouter.HandleFunc("/watchlist/{kind}/{id}", h.Watchlist.Remove).Methods(http.MethodDelete)

	apiRouter.HandleFunc("/progress", h.Progress.Snapshot).Methods(http.MethodGet)
	apiRouter.HandleFunc("/progress/{key}", h.Progress.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/progress/{key}", h.Progress.Set).Methods(http.MethodPut)
	apiRouter.HandleFunc("/continue-watching", h.ContinueWatching.List).Methods(http.MethodGet)

	apiRouter.HandleFunc("/playback/{key}/start", h.Playback.Start).Methods(http.MethodPost)
	apiRouter.HandleFunc("/playback/{key}/visibility", h.Playback.Visibility).Methods(http.MethodPost)
	apiRouter.HandleFunc("/playback/{key}/stop", h.Playback.Stop).Methods(http.MethodPost)

	apiRouter.HandleFunc("/movies/{id}", h.Media.MovieDetails).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{id}/videos", h.Media.MovieVideos).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{id}/credits", h.Media.MovieCredits).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{id}/recommendations", h.Media.MovieRecommendations).Methods(http.MethodGet)

	apiRouter.HandleFunc("/series/{id}", h.Media.SeriesDetails).Methods(http.MethodGet)
	apiRouter.HandleFunc("/series/{id}/seasons/{season}", h.Media.SeasonDetails).Methods(http.MethodGet)
	apiRouter.HandleFunc("/series/{id}/videos", h.Media.SeriesVideos).Methods(http.MethodGet)
	apiRouter.HandleFunc("/series/{id}/credits", h.Media.SeriesCredits).Methods(http.MethodGet)
	apiRouter.HandleFunc("/series/{id}/recommendations", h.Media.SeriesRecommendations).Methods(http.MethodGet)

	apiRouter.HandleFunc("/media/{kind}/{id}/images", h.Media.Images).Methods(http.MethodGet)

	apiRouter.HandleFunc("/people/{id}", h.Media.PersonDetails).Methods(http.MethodGet)
	apiRouter.HandleFunc("/people/{id}/credits", h.Media.PersonCredits).Methods(http.MethodGet)
	apiRouter.HandleFunc("/people/{id}/images", h.Media.PersonImages).Methods(http.MethodGet)

	return r
}
