package stores

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/repositories/kv"
	"github.com/dmitrijs2005/coursecatalog/internal/client/state"
	"github.com/dmitrijs2005/coursecatalog/internal/common"
)

// Catalog is a snapshot of the catalog store.
type Catalog struct {
	Courses   []models.Course
	Selected  *models.CourseDetail
	Favorites *models.FavoriteSet
	IsLoading bool
	Error     string
}

func (c Catalog) clone() Catalog {
	out := c
	out.Courses = slices.Clone(c.Courses)
	if c.Selected != nil {
		d := *c.Selected
		d.Images = slices.Clone(c.Selected.Images)
		out.Selected = &d
	}
	out.Favorites = c.Favorites.Clone()
	return out
}

// CatalogStore holds the course list, the selected course and the favorite
// set.
//
// FetchDetail results are applied in completion order: when two calls
// overlap, the one that resolves last decides Selected even if it was
// issued first.
type CatalogStore struct {
	api  CatalogAPI
	repo kv.Repository
	opts options

	// pubMu spans a mutation and its publication, so subscribers see
	// snapshots in the order the state changed.
	pubMu   sync.Mutex
	mu      sync.Mutex
	catalog Catalog
	hub     state.Hub[Catalog]

	// saveMu orders favorite writes so the last write carries the latest set.
	saveMu sync.Mutex
}

func NewCatalogStore(api CatalogAPI, repo kv.Repository, opts ...Option) *CatalogStore {
	return &CatalogStore{
		api:     api,
		repo:    repo,
		opts:    buildOptions(opts),
		catalog: Catalog{Courses: []models.Course{}, Favorites: models.NewFavoriteSet()},
	}
}

// Snapshot returns a deep copy of the current state.
func (s *CatalogStore) Snapshot() Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.clone()
}

// Subscribe calls fn with every new snapshot until cancel is called.
// fn runs while the store publishes and must not call store actions.
func (s *CatalogStore) Subscribe(fn func(Catalog)) (cancel func()) {
	return s.hub.Subscribe(fn)
}

func (s *CatalogStore) update(fn func(Catalog) Catalog) Catalog {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.catalog = fn(s.catalog)
	snap := s.catalog.clone()
	s.mu.Unlock()

	s.hub.Publish(snap)
	return snap
}

// FetchList replaces the course list with a fresh copy from the server. On
// failure the previous list is kept and Error is set.
func (s *CatalogStore) FetchList(ctx context.Context) {
	s.update(func(c Catalog) Catalog { return reduceCourseList(c, state.Pending[[]models.Course]()) })

	courses, err := s.api.FetchCourseList(ctx)
	if err != nil {
		s.opts.logger.Warn(ctx, "course list not refreshed", "error", err)
	} else {
		s.opts.logger.Debug(ctx, "course list loaded", "count", len(courses))
	}

	res := state.From(courses, err)
	s.update(func(c Catalog) Catalog { return reduceCourseList(c, res) })
}

// FetchDetail loads one course into Selected. On failure Selected keeps its
// previous value and Error is set.
func (s *CatalogStore) FetchDetail(ctx context.Context, id int64) {
	s.update(func(c Catalog) Catalog { return reduceCourseDetail(c, state.Pending[*models.CourseDetail]()) })

	detail, err := s.api.FetchCourseDetail(ctx, id)
	if err != nil {
		s.opts.logger.Warn(ctx, "course detail not loaded", "id", id, "error", err)
	}

	res := state.From(detail, err)
	s.update(func(c Catalog) Catalog { return reduceCourseDetail(c, res) })
}

// ClearSelected drops the selected course.
func (s *CatalogStore) ClearSelected() {
	s.update(func(c Catalog) Catalog {
		c.Selected = nil
		return c
	})
}

// ClearError resets Error and nothing else.
func (s *CatalogStore) ClearError() {
	s.update(func(c Catalog) Catalog {
		c.Error = ""
		return c
	})
}

// LoadFavorites replaces the favorite set with the stored one. Missing or
// unreadable data yields an empty set and is never reported in Error.
func (s *CatalogStore) LoadFavorites(ctx context.Context) {
	favs, err := s.readFavorites(ctx)
	if err != nil {
		s.opts.logger.Warn(ctx, "stored favorites ignored", "error", err)
		favs = models.NewFavoriteSet()
	}
	s.update(func(c Catalog) Catalog {
		c.Favorites = favs
		return c
	})
}

func (s *CatalogStore) readFavorites(ctx context.Context) (*models.FavoriteSet, error) {
	b, err := s.repo.Get(ctx, common.StorageKeyFavorites)
	if err != nil {
		return nil, err
	}
	favs := models.NewFavoriteSet()
	if len(b) == 0 {
		return favs, nil
	}
	if err := json.Unmarshal(b, favs); err != nil {
		return nil, &kv.StorageError{Op: "parse", Key: common.StorageKeyFavorites, Err: err}
	}
	return favs, nil
}

// ToggleFavorite flips id in the favorite set and writes the whole set to
// storage. The in-memory set is authoritative: a failed write is logged and
// the toggle stands. It returns whether id is a favorite afterwards.
func (s *CatalogStore) ToggleFavorite(ctx context.Context, id int64) bool {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	var on bool
	snap := s.update(func(c Catalog) Catalog {
		favs := c.Favorites.Clone()
		on = favs.Toggle(id)
		c.Favorites = favs
		return c
	})

	b, err := json.Marshal(snap.Favorites)
	if err == nil {
		err = s.repo.Set(ctx, common.StorageKeyFavorites, b)
	}
	if err != nil {
		s.opts.logger.Warn(ctx, "favorites not saved", "id", id, "error", err)
	}
	return on
}

// IsFavorite reports whether id is in the favorite set.
func (s *CatalogStore) IsFavorite(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Favorites.Has(id)
}

func reduceCourseList(c Catalog, r state.Result[[]models.Course]) Catalog {
	switch r.Phase() {
	case state.PhasePending:
		c.IsLoading = true
		c.Error = ""
	case state.PhaseOk:
		courses, _ := r.Value()
		if courses == nil {
			courses = []models.Course{}
		}
		c.Courses = courses
		c.IsLoading = false
	case state.PhaseErr:
		c.IsLoading = false
		c.Error = errorText(r.Error(), "Failed to fetch courses")
	}
	return c
}

func reduceCourseDetail(c Catalog, r state.Result[*models.CourseDetail]) Catalog {
	switch r.Phase() {
	case state.PhasePending:
		c.IsLoading = true
		c.Error = ""
	case state.PhaseOk:
		c.Selected, _ = r.Value()
		c.IsLoading = false
	case state.PhaseErr:
		c.IsLoading = false
		c.Error = errorText(r.Error(), "Failed to fetch course details")
	}
	return c
}
