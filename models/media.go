package models

// MediaKind discriminates the two catalog namespaces.
type MediaKind string

const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
)

// ParseMediaKind normalizes a user-supplied kind string. The second return
// value reports whether the input named a known kind.
func ParseMediaKind(s string) (MediaKind, bool) {
	switch MediaKind(s) {
	case KindMovie:
		return KindMovie, true
	case KindSeries:
		return KindSeries, true
	}
	return "", false
}

// MediaKey identifies a catalog item. Movie and series ids come from separate
// upstream namespaces and can collide numerically, so identity is always the
// pair, never the bare id.
type MediaKey struct {
	Kind MediaKind `json:"kind"`
	ID   int64     `json:"id"`
}

// MediaSummary is a single catalog list entry, already tagged with its kind.
type MediaSummary struct {
	ID           int64     `json:"id"`
	Kind         MediaKind `json:"mediaKind"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview,omitempty"`
	ReleaseDate  string    `json:"releaseDate,omitempty"`
	Popularity   float64   `json:"popularity"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	VoteAverage  float64   `json:"voteAverage"`
	GenreIDs     []int64   `json:"genreIds,omitempty"`
}

// Key returns the item's identity pair.
func (m MediaSummary) Key() MediaKey {
	return MediaKey{Kind: m.Kind, ID: m.ID}
}

// PagedResult is one display-ready page of catalog items.
type PagedResult struct {
	Page         int            `json:"page"`
	Items        []MediaSummary `json:"items"`
	TotalPages   int            `json:"totalPages"`
	TotalResults int            `json:"totalResults"`
}
