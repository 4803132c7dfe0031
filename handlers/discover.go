package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"reelview/models"
	"reelview/services/discover"
)

type discoverService interface {
	Title(slug string) string
	Media(ctx context.Context, slug string, page int) (models.PagedResult, error)
}

// DiscoverHandler serves category pages from the aggregator.
type DiscoverHandler struct {
	Service discoverService
}

func NewDiscoverHandler(service discoverService) *DiscoverHandler {
	return &DiscoverHandler{Service: service}
}

// DiscoverResponse is one aggregated category page with its display title.
type DiscoverResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	models.PagedResult
}

// Category handles GET /api/discover/{slug}.
func (h *DiscoverHandler) Category(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.Service.Media(r.Context(), slug, pageParam(r))
	if errors.Is(err, discover.ErrUnknownCategory) {
		writeJSONError(w, "category not found: "+slug, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[discover] category %s failed: %v", slug, err)
		writeJSONError(w, "upstream catalog request failed", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, DiscoverResponse{
		Slug:        slug,
		Title:       h.Service.Title(slug),
		PagedResult: result,
	})
}
