// Package discover resolves named browse categories into display-ready pages,
// fanning out to the catalog for categories backed by more than one upstream
// query and merging the results into a single ranked page.
package discover

import (
	"context"
	"errors"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"reelview/models"
)

var ErrUnknownCategory = errors.New("unknown discover category")

// Catalog is the slice of the catalog client the aggregator consumes.
type Catalog interface {
	PopularMovies(ctx context.Context, page int) (models.PagedResult, error)
	UpcomingMovies(ctx context.Context, page int) (models.PagedResult, error)
	TopRatedMovies(ctx context.Context, page int) (models.PagedResult, error)
	AnimatedMovies(ctx context.Context, page int) (models.PagedResult, error)
	PopularSeries(ctx context.Context, page int) (models.PagedResult, error)
	TopRatedSeries(ctx context.Context, page int) (models.PagedResult, error)
	KDramas(ctx context.Context, page int) (models.PagedResult, error)
	AnimatedSeries(ctx context.Context, page int) (models.PagedResult, error)
	MediaByProvider(ctx context.Context, providerID string, kind models.MediaKind, page int) (models.PagedResult, error)
}

type fetchFunc func(ctx context.Context, page int) (models.PagedResult, error)

type category struct {
	title string
	fetch fetchFunc
}

// Service owns the category registry.
type Service struct {
	categories map[string]category
}

// NewService builds the registry over the given catalog, including one
// synthesized category per streaming provider.
func NewService(catalog Catalog) *Service {
	s := &Service{categories: make(map[string]category)}

	s.register("trending-now", "Trending Now",
		combined(catalog.PopularMovies, catalog.PopularSeries))
	s.register("new-this-week", "New This Week",
		combined(catalog.UpcomingMovies, catalog.TopRatedSeries))
	s.register("k-dramas", "K-Dramas", catalog.KDramas)
	s.register("cartoon-movies", "Cartoon Movies", catalog.AnimatedMovies)
	s.register("animated-shows", "Animated Shows", catalog.AnimatedSeries)
	s.register("top-rated-movies", "Top Rated Movies", catalog.TopRatedMovies)
	s.register("top-rated-tv-shows", "Top Rated TV Shows", catalog.TopRatedSeries)

	for id, name := range Providers {
		providerID := id
		s.register(providerID, "Available on "+name, combined(
			func(ctx context.Context, page int) (models.PagedResult, error) {
				return catalog.MediaByProvider(ctx, providerID, models.KindMovie, page)
			},
			func(ctx context.Context, page int) (models.PagedResult, error) {
				return catalog.MediaByProvider(ctx, providerID, models.KindSeries, page)
			},
		))
	}

	return s
}

func (s *Service) register(slug, title string, fetch fetchFunc) {
	s.categories[slug] = category{title: title, fetch: fetch}
}

// Slugs returns every registered category slug.
func (s *Service) Slugs() []string {
	slugs := make([]string, 0, len(s.categories))
	for slug := range s.categories {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Title returns the display title for a slug, or "Discover" when unknown.
func (s *Service) Title(slug string) string {
	if cat, ok := s.categories[slug]; ok {
		return cat.title
	}
	return "Discover"
}

// Media resolves a category page. Each call is a live fan-out; nothing is
// cached and no cross-page dedup is attempted.
func (s *Service) Media(ctx context.Context, slug string, page int) (models.PagedResult, error) {
	cat, ok := s.categories[slug]
	if !ok {
		return models.PagedResult{}, ErrUnknownCategory
	}
	if page < 1 {
		page = 1
	}
	return cat.fetch(ctx, page)
}

// combined builds a two-source fetcher: both branches are queried
// concurrently for the same page and either failure fails the whole
// operation. Results are concatenated movies-then-series and re-ranked by
// popularity; the merged envelope can only promise as many pages as the
// shorter source.
func combined(movies, series fetchFunc) fetchFunc {
	return func(ctx context.Context, page int) (models.PagedResult, error) {
		var moviePage, seriesPage models.PagedResult

		p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
		p.Go(func(ctx context.Context) error {
			result, err := movies(ctx, page)
			if err != nil {
				return err
			}
			moviePage = result
			return nil
		})
		p.Go(func(ctx context.Context) error {
			result, err := series(ctx, page)
			if err != nil {
				return err
			}
			seriesPage = result
			return nil
		})
		if err := p.Wait(); err != nil {
			return models.PagedResult{}, err
		}

		return MergePages(moviePage, seriesPage), nil
	}
}

// MergePages combines two upstream pages into one ranked page. Items are
// stable-sorted by descending popularity so popularity ties keep their
// concatenation order; totalPages is the minimum of the two sources and
// totalResults their sum.
func MergePages(first, second models.PagedResult) models.PagedResult {
	items := make([]models.MediaSummary, 0, len(first.Items)+len(second.Items))
	items = append(items, first.Items...)
	items = append(items, second.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Popularity > items[j].Popularity
	})

	return models.PagedResult{
		Page:         first.Page,
		Items:        items,
		TotalPages:   min(first.TotalPages, second.TotalPages),
		TotalResults: first.TotalResults + second.TotalResults,
	}
}
