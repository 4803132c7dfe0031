package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"reelview/services/progress"
)

type progressStore interface {
	Get(key string) float64
	Set(key string, value float64) float64
	Snapshot() map[string]float64
	ContinueWatching() []progress.Entry
}

// ProgressHandler serves watch-progress percentages.
type ProgressHandler struct {
	Store progressStore
}

func NewProgressHandler(store progressStore) *ProgressHandler {
	return &ProgressHandler{Store: store}
}

// Snapshot handles GET /api/progress.
func (h *ProgressHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Snapshot())
}

// Get handles GET /api/progress/{key}.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if _, ok := progress.ParseKey(key); !ok {
		writeJSONError(w, "invalid progress key", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"progress": h.Store.Get(key)})
}

// Set handles PUT /api/progress/{key} with a JSON number body. Out-of-range
// values are clamped, matching what a direct write to the store would do.
func (h *ProgressHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if _, ok := progress.ParseKey(key); !ok {
		writeJSONError(w, "invalid progress key", http.StatusBadRequest)
		return
	}

	var value float64
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		writeJSONError(w, "body must be a JSON number", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"progress": h.Store.Set(key, value)})
}
