// Package handlers exposes the browsing core over a JSON HTTP API. Handlers
// stay thin: parse the request, call one service, translate the error.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"reelview/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a JSON error response
func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// pageParam reads the page query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return page
}

// idVar reads the {id} route variable as a numeric media id.
func idVar(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// mediaKeyVars reads the {kind}/{id} route variables.
func mediaKeyVars(r *http.Request) (models.MediaKey, bool) {
	vars := mux.Vars(r)
	kind, ok := models.ParseMediaKind(vars["kind"])
	if !ok {
		return models.MediaKey{}, false
	}
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		return models.MediaKey{}, false
	}
	return models.MediaKey{Kind: kind, ID: id}, true
}
