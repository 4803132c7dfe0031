package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"reelview/models"
	"reelview/services/search"
)

type searchService interface {
	Combined(ctx context.Context, query string, page int) (models.PagedResult, error)
	History() []string
}

// SearchHandler serves combined search results and the query history.
type SearchHandler struct {
	Service searchService
}

func NewSearchHandler(service searchService) *SearchHandler {
	return &SearchHandler{Service: service}
}

// Results handles GET /api/search?query=&page=.
func (h *SearchHandler) Results(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeJSONError(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := h.Service.Combined(r.Context(), query, pageParam(r))
	if errors.Is(err, search.ErrEmptyQuery) {
		writeJSONError(w, "query parameter is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[search] query %q failed: %v", query, err)
		writeJSONError(w, "upstream catalog request failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// History handles GET /api/search/history.
func (h *SearchHandler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.History())
}
