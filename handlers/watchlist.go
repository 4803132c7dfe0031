package handlers

import (
	"encoding/json"
	"net/http"

	"reelview/models"
)

type watchlistService interface {
	Add(item models.MediaSummary) bool
	Remove(key models.MediaKey) bool
	Contains(key models.MediaKey) bool
	List() []models.MediaSummary
}

// WatchlistHandler serves the user's saved-media set.
type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

// List handles GET /api/watchlist.
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.List())
}

// Add handles POST /api/watchlist with a MediaSummary body. Duplicate adds
// are a no-op and still return 200.
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item models.MediaSummary
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if item.ID <= 0 {
		writeJSONError(w, "id is required", http.StatusBadRequest)
		return
	}
	if _, ok := models.ParseMediaKind(string(item.Kind)); !ok {
		writeJSONError(w, "mediaKind must be movie or series", http.StatusBadRequest)
		return
	}

	added := h.Service.Add(item)
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

// Remove handles DELETE /api/watchlist/{kind}/{id}. Removing an absent entry
// is a no-op and still returns 200.
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	key, ok := mediaKeyVars(r)
	if !ok {
		writeJSONError(w, "invalid media reference", http.StatusBadRequest)
		return
	}
	removed := h.Service.Remove(key)
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// Contains handles GET /api/watchlist/{kind}/{id}.
func (h *WatchlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	key, ok := mediaKeyVars(r)
	if !ok {
		writeJSONError(w, "invalid media reference", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"inList": h.Service.Contains(key)})
}
