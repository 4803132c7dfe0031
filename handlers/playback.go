package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"reelview/models"
	"reelview/services/progress"
)

type sessionManager interface {
	Start(key string, totalSeconds float64, visible bool) *progress.Session
	SetVisible(key string, visible bool) bool
	Stop(key string) bool
}

// PlaybackHandler drives simulated playback sessions. The client reports
// view lifecycle events (opened, visibility changed, closed); the session's
// clock does the rest.
type PlaybackHandler struct {
	Manager sessionManager
	Catalog detailsCatalog

	DefaultMovieRuntimeMin   int
	DefaultEpisodeRuntimeMin int
}

func NewPlaybackHandler(manager sessionManager, catalog detailsCatalog, movieRuntimeMin, episodeRuntimeMin int) *PlaybackHandler {
	if movieRuntimeMin <= 0 {
		movieRuntimeMin = 90
	}
	if episodeRuntimeMin <= 0 {
		episodeRuntimeMin = 45
	}
	return &PlaybackHandler{
		Manager:                  manager,
		Catalog:                  catalog,
		DefaultMovieRuntimeMin:   movieRuntimeMin,
		DefaultEpisodeRuntimeMin: episodeRuntimeMin,
	}
}

type startPlaybackRequest struct {
	Visible        *bool `json:"visible"`
	RuntimeMinutes int   `json:"runtimeMinutes"`
}

// sessionResponse reports a session's current state and progress.
type sessionResponse struct {
	Key      string  `json:"key"`
	State    string  `json:"state"`
	Progress float64 `json:"progress"`
}

// Start handles POST /api/playback/{key}/start. Progress resumes from the
// persisted value; a fresh view of a finished item reports complete without
// ticking.
func (h *PlaybackHandler) Start(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	info, ok := progress.ParseKey(key)
	if !ok {
		writeJSONError(w, "invalid progress key", http.StatusBadRequest)
		return
	}

	var req startPlaybackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	runtimeMin := req.RuntimeMinutes
	if runtimeMin <= 0 {
		runtimeMin = h.resolveRuntime(r, info)
	}

	session := h.Manager.Start(key, float64(runtimeMin)*60, visible)
	writeJSON(w, http.StatusOK, sessionResponse{
		Key:      key,
		State:    session.State().String(),
		Progress: session.Progress(),
	})
}

type visibilityRequest struct {
	Visible bool `json:"visible"`
}

// Visibility handles POST /api/playback/{key}/visibility.
func (h *PlaybackHandler) Visibility(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !h.Manager.SetVisible(key, req.Visible) {
		writeJSONError(w, "no active session for "+key, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Stop handles POST /api/playback/{key}/stop.
func (h *PlaybackHandler) Stop(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if !h.Manager.Stop(key) {
		writeJSONError(w, "no active session for "+key, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// resolveRuntime looks up the media's runtime, falling back to the
// configured defaults when the catalog does not know it.
func (h *PlaybackHandler) resolveRuntime(r *http.Request, info progress.KeyInfo) int {
	if info.Kind == models.KindSeries {
		details, err := h.Catalog.SeriesDetails(r.Context(), info.ID)
		if err != nil {
			log.Printf("[playback] runtime lookup for series %d failed: %v", info.ID, err)
			return h.DefaultEpisodeRuntimeMin
		}
		if runtime := averageRuntime(details.EpisodeRuntimes); runtime > 0 {
			return runtime
		}
		return h.DefaultEpisodeRuntimeMin
	}

	details, err := h.Catalog.MovieDetails(r.Context(), info.ID)
	if err != nil {
		log.Printf("[playback] runtime lookup for movie %d failed: %v", info.ID, err)
		return h.DefaultMovieRuntimeMin
	}
	if details.RuntimeMinutes > 0 {
		return details.RuntimeMinutes
	}
	return h.DefaultMovieRuntimeMin
}

func averageRuntime(runtimes []int) int {
	sum, count := 0, 0
	for _, runtime := range runtimes {
		if runtime > 0 {
			sum += runtime
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / count
}
