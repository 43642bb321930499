package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviehub/internal/domain/entity"
)

func TestGenreLookups(t *testing.T) {
	id, ok := entity.GenreID("Science Fiction")
	assert.True(t, ok)
	assert.Equal(t, 878, id)

	name, ok := entity.GenreName(9648)
	assert.True(t, ok)
	assert.Equal(t, "Mystery", name)

	_, ok = entity.GenreID("Documentary")
	assert.False(t, ok)
}

func TestGenreIDsForSkipsUnknownNames(t *testing.T) {
	ids := entity.GenreIDsFor([]string{"Horror", "", "Noir", "Western"})
	assert.Equal(t, []int{27, 37}, ids)

	assert.Empty(t, entity.GenreIDsFor(nil))
	assert.Empty(t, entity.GenreIDsFor([]string{"Noir"}))
}

func TestGenreCatalogSize(t *testing.T) {
	names := entity.GenreNames()
	assert.Len(t, names, 10)
	assert.Equal(t, "Action", names[0])
	assert.Equal(t, "Western", names[9])
}
