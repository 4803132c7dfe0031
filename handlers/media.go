package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"reelview/models"
	"reelview/services/catalog"
)

// mediaCatalog is the detail/sub-resource surface of the catalog client.
type mediaCatalog interface {
	MovieDetails(ctx context.Context, id int64) (*models.MovieDetails, error)
	MovieVideos(ctx context.Context, id int64) ([]models.Video, error)
	MovieCredits(ctx context.Context, id int64) (*models.Credits, error)
	MovieRecommendations(ctx context.Context, id int64, page int) (models.PagedResult, error)
	SeriesDetails(ctx context.Context, id int64) (*models.SeriesDetails, error)
	SeasonDetails(ctx context.Context, seriesID int64, seasonNumber int) (*models.SeasonDetails, error)
	SeriesVideos(ctx context.Context, id int64) ([]models.Video, error)
	SeriesCredits(ctx context.Context, id int64) (*models.Credits, error)
	SeriesRecommendations(ctx context.Context, id int64, page int) (models.PagedResult, error)
	MediaImages(ctx context.Context, kind models.MediaKind, id int64) (*models.MediaImages, error)
	PersonDetails(ctx context.Context, id int64) (*models.PersonDetails, error)
	PersonCombinedCredits(ctx context.Context, id int64) (*models.PersonCredits, error)
	PersonImages(ctx context.Context, id int64) ([]models.ProfileImage, error)
}

// MediaHandler passes detail lookups through to the catalog.
type MediaHandler struct {
	Catalog mediaCatalog
}

func NewMediaHandler(c mediaCatalog) *MediaHandler {
	return &MediaHandler{Catalog: c}
}

// respond translates a catalog result into a response, mapping upstream 404s
// through and everything else to a bad gateway.
func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		var statusErr *catalog.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			writeJSONError(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("[media] catalog request failed: %v", err)
		writeJSONError(w, "upstream catalog request failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *MediaHandler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	details, err := h.Catalog.MovieDetails(r.Context(), id)
	respond(w, details, err)
}

func (h *MediaHandler) MovieVideos(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	videos, err := h.Catalog.MovieVideos(r.Context(), id)
	respond(w, videos, err)
}

func (h *MediaHandler) MovieCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	credits, err := h.Catalog.MovieCredits(r.Context(), id)
	respond(w, credits, err)
}

func (h *MediaHandler) MovieRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	result, err := h.Catalog.MovieRecommendations(r.Context(), id, pageParam(r))
	respond(w, result, err)
}

func (h *MediaHandler) SeriesDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	details, err := h.Catalog.SeriesDetails(r.Context(), id)
	respond(w, details, err)
}

func (h *MediaHandler) SeasonDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil || season < 0 {
		writeJSONError(w, "invalid season number", http.StatusBadRequest)
		return
	}
	details, err := h.Catalog.SeasonDetails(r.Context(), id, season)
	respond(w, details, err)
}

func (h *MediaHandler) SeriesVideos(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	videos, err := h.Catalog.SeriesVideos(r.Context(), id)
	respond(w, videos, err)
}

func (h *MediaHandler) SeriesCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	credits, err := h.Catalog.SeriesCredits(r.Context(), id)
	respond(w, credits, err)
}

func (h *MediaHandler) SeriesRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	result, err := h.Catalog.SeriesRecommendations(r.Context(), id, pageParam(r))
	respond(w, result, err)
}

func (h *MediaHandler) Images(w http.ResponseWriter, r *http.Request) {
	key, ok := mediaKeyVars(r)
	if !ok {
		writeJSONError(w, "invalid media reference", http.StatusBadRequest)
		return
	}
	images, err := h.Catalog.MediaImages(r.Context(), key.Kind, key.ID)
	respond(w, images, err)
}

func (h *MediaHandler) PersonDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	details, err := h.Catalog.PersonDetails(r.Context(), id)
	respond(w, details, err)
}

func (h *MediaHandler) PersonCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	credits, err := h.Catalog.PersonCombinedCredits(r.Context(), id)
	respond(w, credits, err)
}

func (h *MediaHandler) PersonImages(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r)
	if !ok {
		writeJSONError(w, "invalid id", http.StatusBadRequest)
		return
	}
	images, err := h.Catalog.PersonImages(r.Context(), id)
	respond(w, images, err)
}
