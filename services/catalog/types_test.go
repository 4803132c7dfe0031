package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reelview/models"
)

func TestInferKind(t *testing.T) {
	assert.Equal(t, models.KindSeries, inferKind(rawMedia{Name: "Dark"}))
	assert.Equal(t, models.KindMovie, inferKind(rawMedia{Title: "Heat"}))
	assert.Equal(t, models.KindMovie, inferKind(rawMedia{}), "items with neither field default to movie")
}
