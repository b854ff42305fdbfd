package stores

import (
	"strings"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/montanaflynn/stats"
)

// AllCategories is the wildcard category.
const AllCategories = "All"

// Categories returns AllCategories followed by the distinct categories of
// courses in first-seen order.
func Categories(courses []models.Course) []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		if c.Category == "" {
			continue
		}
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}

// FilterCourses keeps courses whose title contains query, ignoring case, and
// whose category equals category. An empty query matches every title; an
// empty category or AllCategories matches every category.
func FilterCourses(courses []models.Course, query, category string) []models.Course {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if q != "" && !strings.Contains(strings.ToLower(c.Title), q) {
			continue
		}
		if category != "" && category != AllCategories && c.Category != category {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FavoriteCourses returns the courses in favs, in list order.
func FavoriteCourses(courses []models.Course, favs *models.FavoriteSet) []models.Course {
	out := make([]models.Course, 0, favs.Len())
	for _, c := range courses {
		if favs.Has(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// FavoritesSummary describes the favorite courses present in the list.
type FavoritesSummary struct {
	Count       int
	Available   int
	TotalValue  float64
	MeanRating  float64
	MedianPrice float64
}

// SummarizeFavorites aggregates the favorite courses found in courses.
// Favorites missing from the list are not counted.
func SummarizeFavorites(courses []models.Course, favs *models.FavoriteSet) FavoritesSummary {
	fc := FavoriteCourses(courses, favs)
	sum := FavoritesSummary{Count: len(fc)}
	if len(fc) == 0 {
		return sum
	}

	prices := make(stats.Float64Data, 0, len(fc))
	ratings := make(stats.Float64Data, 0, len(fc))
	for _, c := range fc {
		prices = append(prices, c.Price)
		ratings = append(ratings, c.Rating)
		if c.Status == models.StatusActive {
			sum.Available++
		}
	}

	sum.TotalValue, _ = prices.Sum()
	sum.MeanRating, _ = ratings.Mean()
	sum.MedianPrice, _ = prices.Median()
	return sum
}
