package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"reelview/models"
	"reelview/services/progress"
)

type detailsCatalog interface {
	MovieDetails(ctx context.Context, id int64) (*models.MovieDetails, error)
	SeriesDetails(ctx context.Context, id int64) (*models.SeriesDetails, error)
}

// ContinueWatchingHandler hydrates in-progress entries with catalog details.
type ContinueWatchingHandler struct {
	Store   progressStore
	Catalog detailsCatalog
}

func NewContinueWatchingHandler(store progressStore, catalog detailsCatalog) *ContinueWatchingHandler {
	return &ContinueWatchingHandler{Store: store, Catalog: catalog}
}

// ContinueWatchingItem is one hydrated continue-watching rail entry.
type ContinueWatchingItem struct {
	models.MediaSummary
	ProgressKey string  `json:"progressKey"`
	Progress    float64 `json:"progress"`
}

// List handles GET /api/continue-watching. Entries are hydrated concurrently;
// a failed detail lookup drops that entry instead of failing the rail.
func (h *ContinueWatchingHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.Store.ContinueWatching()

	items := make([]ContinueWatchingItem, len(entries))
	var mu sync.Mutex
	resolved := make(map[int]bool, len(entries))

	p := pool.New().WithContext(r.Context()).WithMaxGoroutines(4)
	for i, entry := range entries {
		p.Go(func(ctx context.Context) error {
			summary, err := h.resolve(ctx, entry)
			if err != nil {
				log.Printf("[progress] dropping continue-watching entry %s: %v", entry.Key, err)
				return nil
			}
			mu.Lock()
			items[i] = ContinueWatchingItem{
				MediaSummary: summary,
				ProgressKey:  entry.Key,
				Progress:     entry.Progress,
			}
			resolved[i] = true
			mu.Unlock()
			return nil
		})
	}
	_ = p.Wait()

	result := make([]ContinueWatchingItem, 0, len(entries))
	for i := range items {
		if resolved[i] {
			result = append(result, items[i])
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ContinueWatchingHandler) resolve(ctx context.Context, entry progress.Entry) (models.MediaSummary, error) {
	if entry.Kind == models.KindSeries {
		details, err := h.Catalog.SeriesDetails(ctx, entry.ID)
		if err != nil {
			return models.MediaSummary{}, err
		}
		return details.MediaSummary, nil
	}
	details, err := h.Catalog.MovieDetails(ctx, entry.ID)
	if err != nil {
		return models.MediaSummary{}, err
	}
	return details.MediaSummary, nil
}
