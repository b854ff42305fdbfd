package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/stores"
)

// List fetches the course list and prints it. An optional first argument
// naming a category narrows the list; remaining words filter by title.
// When the server cannot be reached the last loaded list is shown.
func (a *App) List(ctx context.Context, args []string) error {
	a.catalog.FetchList(ctx)
	snap := a.catalog.Snapshot()
	if snap.Error != "" {
		fmt.Fprintf(a.out, "Warning: %s, showing cached courses\n", snap.Error)
		a.catalog.ClearError()
	}

	category := stores.AllCategories
	if len(args) > 0 && slices.Contains(stores.Categories(snap.Courses), args[0]) {
		category, args = args[0], args[1:]
	}
	courses := stores.FilterCourses(snap.Courses, strings.Join(args, " "), category)

	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No courses.")
		return nil
	}
	for _, c := range courses {
		a.printCourse(c, snap.Favorites)
	}
	return nil
}

func (a *App) printCourse(c models.Course, favs *models.FavoriteSet) {
	mark := " "
	if favs.Has(c.ID) {
		mark = "*"
	}
	fmt.Fprintf(a.out, "%s %s\n", mark, c)
}

// Categories prints the category facets of the loaded list.
func (a *App) Categories(ctx context.Context) error {
	snap := a.catalog.Snapshot()
	if len(snap.Courses) == 0 {
		a.catalog.FetchList(ctx)
		snap = a.catalog.Snapshot()
	}
	if snap.Error != "" {
		a.catalog.ClearError()
		return fmt.Errorf("%s", snap.Error)
	}
	fmt.Fprintln(a.out, strings.Join(stores.Categories(snap.Courses), ", "))
	return nil
}

// Show loads and prints one course.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	a.catalog.FetchDetail(ctx, id)
	snap := a.catalog.Snapshot()
	if snap.Error != "" {
		a.catalog.ClearError()
		return fmt.Errorf("%s", snap.Error)
	}
	d := snap.Selected
	if d == nil {
		return fmt.Errorf("course %d not loaded", id)
	}

	fav := ""
	if snap.Favorites.Has(d.ID) {
		fav = " (favorite)"
	}
	fmt.Fprintf(a.out, "#%d %s%s\n", d.ID, d.Title, fav)
	fmt.Fprintf(a.out, "  category: %s\n", d.Category)
	fmt.Fprintf(a.out, "  instructor: %s\n", d.Brand)
	fmt.Fprintf(a.out, "  price: $%.2f  rating: %.1f\n", d.Price, d.Rating)
	fmt.Fprintf(a.out, "  seats: %d (%s)\n", d.Stock, d.Status)
	if d.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", d.Description)
	}
	for _, img := range d.Images {
		fmt.Fprintf(a.out, "  image: %s\n", img)
	}
	return nil
}

// Fav toggles a course in the favorites.
func (a *App) Fav(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if a.catalog.ToggleFavorite(ctx, id) {
		fmt.Fprintf(a.out, "Course %d added to favorites.\n", id)
	} else {
		fmt.Fprintf(a.out, "Course %d removed from favorites.\n", id)
	}
	return nil
}

// Favs prints the favorite courses with a summary line.
func (a *App) Favs(ctx context.Context) error {
	snap := a.catalog.Snapshot()
	if snap.Favorites.Len() == 0 {
		fmt.Fprintln(a.out, "No favorites yet.")
		return nil
	}
	if len(snap.Courses) == 0 {
		a.catalog.FetchList(ctx)
		a.catalog.ClearError()
		snap = a.catalog.Snapshot()
	}

	favCourses := stores.FavoriteCourses(snap.Courses, snap.Favorites)
	for _, c := range favCourses {
		a.printCourse(c, snap.Favorites)
	}
	if missing := snap.Favorites.Len() - len(favCourses); missing > 0 {
		fmt.Fprintf(a.out, "  (%d favorite(s) not in the loaded list)\n", missing)
	}

	sum := stores.SummarizeFavorites(snap.Courses, snap.Favorites)
	fmt.Fprintf(a.out, "Saved: %d  Available: %d  Total value: $%.0f  Mean rating: %.1f  Median price: $%.2f\n",
		sum.Count, sum.Available, sum.TotalValue, sum.MeanRating, sum.MedianPrice)
	return nil
}
