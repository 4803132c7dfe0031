// Package search runs the combined movie/series search and keeps the bounded
// recency list of past queries.
package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"reelview/models"
)

var ErrEmptyQuery = errors.New("search query is empty")

// Catalog is the slice of the catalog client the search consumes.
type Catalog interface {
	SearchMovies(ctx context.Context, query string, page int) (models.PagedResult, error)
	SearchSeries(ctx context.Context, query string, page int) (models.PagedResult, error)
}

// Service runs combined searches and records query history.
type Service struct {
	catalog Catalog
	history *History
}

// NewService creates the search service.
func NewService(catalog Catalog, history *History) *Service {
	return &Service{catalog: catalog, history: history}
}

// History returns the recorded past queries, most recent first.
func (s *Service) History() []string {
	return s.history.Entries()
}

// Combined searches movies and series concurrently for the same page and
// merges the results ranked by popularity. The query is recorded to history
// before the fan-out, so failed searches still count as recent searches.
// Unlike the discover merge, totalPages keeps the longer source's page count:
// past the shorter source's last page its branch simply comes back empty.
func (s *Service) Combined(ctx context.Context, query string, page int) (models.PagedResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.PagedResult{}, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}

	s.history.Record(query)

	var moviePage, seriesPage models.PagedResult

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		result, err := s.catalog.SearchMovies(ctx, query, page)
		if err != nil {
			return err
		}
		moviePage = result
		return nil
	})
	p.Go(func(ctx context.Context) error {
		result, err := s.catalog.SearchSeries(ctx, query, page)
		if err != nil {
			return err
		}
		seriesPage = result
		return nil
	})
	if err := p.Wait(); err != nil {
		return models.PagedResult{}, err
	}

	items := make([]models.MediaSummary, 0, len(moviePage.Items)+len(seriesPage.Items))
	items = append(items, moviePage.Items...)
	items = append(items, seriesPage.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Popularity > items[j].Popularity
	})

	return models.PagedResult{
		Page:         moviePage.Page,
		Items:        items,
		TotalPages:   max(moviePage.TotalPages, seriesPage.TotalPages),
		TotalResults: moviePage.TotalResults + seriesPage.TotalResults,
	}, nil
}
