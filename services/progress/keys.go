package progress

import (
	"fmt"
	"strconv"
	"strings"

	"reelview/models"
)

// storagePrefix is prepended to every media key to form the persisted
// document key (progress-<mediaId> or progress-<showId>-s<season>-e<episode>).
const storagePrefix = "progress-"

// MovieKey returns the progress key for a movie.
func MovieKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// EpisodeKey returns the progress key for one episode of a series.
func EpisodeKey(showID int64, season, episode int) string {
	return fmt.Sprintf("%d-s%d-e%d", showID, season, episode)
}

// KeyInfo is the identity recovered from a progress key.
type KeyInfo struct {
	Kind    models.MediaKind
	ID      int64
	Season  int
	Episode int
}

// MediaKey returns the identity pair for the keyed item. Episodes resolve to
// their parent series.
func (k KeyInfo) MediaKey() models.MediaKey {
	return models.MediaKey{Kind: k.Kind, ID: k.ID}
}

// ParseKey recovers the media identity from a progress key. A key containing
// the season marker is an episode of a series; anything else is a movie.
func ParseKey(key string) (KeyInfo, bool) {
	if base, rest, ok := strings.Cut(key, "-s"); ok {
		id, err := strconv.ParseInt(base, 10, 64)
		if err != nil {
			return KeyInfo{}, false
		}
		seasonPart, episodePart, ok := strings.Cut(rest, "-e")
		if !ok {
			return KeyInfo{}, false
		}
		season, err := strconv.Atoi(seasonPart)
		if err != nil {
			return KeyInfo{}, false
		}
		episode, err := strconv.Atoi(episodePart)
		if err != nil {
			return KeyInfo{}, false
		}
		return KeyInfo{Kind: models.KindSeries, ID: id, Season: season, Episode: episode}, true
	}

	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return KeyInfo{}, false
	}
	return KeyInfo{Kind: models.KindMovie, ID: id}, true
}
