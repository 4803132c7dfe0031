package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelview/models"
	"reelview/services/progress"
)

func TestMovieKeyRoundTrip(t *testing.T) {
	key := progress.MovieKey(603)
	assert.Equal(t, "603", key)

	info, ok := progress.ParseKey(key)
	require.True(t, ok)
	assert.Equal(t, models.KindMovie, info.Kind)
	assert.Equal(t, int64(603), info.ID)
}

func TestEpisodeKeyRoundTrip(t *testing.T) {
	key := progress.EpisodeKey(1399, 3, 9)
	assert.Equal(t, "1399-s3-e9", key)

	info, ok := progress.ParseKey(key)
	require.True(t, ok)
	assert.Equal(t, models.KindSeries, info.Kind)
	assert.Equal(t, int64(1399), info.ID)
	assert.Equal(t, 3, info.Season)
	assert.Equal(t, 9, info.Episode)
	assert.Equal(t, models.MediaKey{Kind: models.KindSeries, ID: 1399}, info.MediaKey())
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	for _, key := range []string{"", "abc", "12-s", "12-sx-e1", "12-s1", "12-s1-ex", "-s1-e1"} {
		_, ok := progress.ParseKey(key)
		assert.False(t, ok, "key %q should not parse", key)
	}
}
