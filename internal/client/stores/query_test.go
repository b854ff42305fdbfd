package stores

import (
	"testing"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/stretchr/testify/assert"
)

var sampleCourses = []models.Course{
	{ID: 1, Title: "Essence Mascara", Category: "beauty", Price: 10, Rating: 4, Status: models.StatusActive},
	{ID: 2, Title: "Eyeshadow Palette", Category: "beauty", Price: 20, Rating: 3, Status: models.StatusLimited},
	{ID: 3, Title: "Calvin Klein CK One", Category: "fragrances", Price: 50, Rating: 5, Status: models.StatusActive},
	{ID: 4, Title: "Annibale Colombo Bed", Category: "furniture", Price: 1900, Rating: 4.5, Status: models.StatusFull},
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "beauty", "fragrances", "furniture"}, Categories(sampleCourses))
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestFilterCourses(t *testing.T) {
	ids := func(cs []models.Course) []int64 {
		out := []int64{}
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(FilterCourses(sampleCourses, "", "")))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(FilterCourses(sampleCourses, "", AllCategories)))
	assert.Equal(t, []int64{1, 2}, ids(FilterCourses(sampleCourses, "", "beauty")))
	assert.Equal(t, []int64{1}, ids(FilterCourses(sampleCourses, "MASCARA", "")))
	assert.Equal(t, []int64{2}, ids(FilterCourses(sampleCourses, "PALETTE", "beauty")))
	assert.Equal(t, []int64{}, ids(FilterCourses(sampleCourses, "palette", "furniture")))
	assert.Equal(t, []int64{}, ids(FilterCourses(sampleCourses, "", "Beauty")))
}

func TestFavoriteCourses(t *testing.T) {
	favs := models.NewFavoriteSet(3, 1, 99)
	got := FavoriteCourses(sampleCourses, favs)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Empty(t, FavoriteCourses(sampleCourses, nil))
}

func TestSummarizeFavorites(t *testing.T) {
	got := SummarizeFavorites(sampleCourses, models.NewFavoriteSet(1, 2, 4))
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 1, got.Available)
	assert.InDelta(t, 1930, got.TotalValue, 1e-9)
	assert.InDelta(t, 11.5/3, got.MeanRating, 1e-9)
	assert.InDelta(t, 20, got.MedianPrice, 1e-9)

	assert.Equal(t, FavoritesSummary{}, SummarizeFavorites(sampleCourses, models.NewFavoriteSet()))
}
