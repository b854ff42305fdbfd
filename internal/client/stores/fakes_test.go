package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/coursecatalog/internal/client/api"
	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
)

var errNetwork = errors.New("dial tcp: connection refused")

type fakeAPI struct {
	mu sync.Mutex

	loginFn       func(username, password string) (*models.User, error)
	registerFn    func(req models.RegisterRequest) (*models.RegisteredUser, error)
	currentUserFn func(token string) (*models.User, error)
	listFn        func() ([]models.Course, error)
	detailFn      func(ctx context.Context, id int64) (*models.CourseDetail, error)

	calls []string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.record("login")
	return f.loginFn(username, password)
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisteredUser, error) {
	f.record("register")
	return f.registerFn(req)
}

func (f *fakeAPI) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	f.record("me")
	return f.currentUserFn(token)
}

func (f *fakeAPI) FetchCourseList(ctx context.Context) ([]models.Course, error) {
	f.record("list")
	return f.listFn()
}

func (f *fakeAPI) FetchCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error) {
	f.record("detail")
	return f.detailFn(ctx, id)
}

// gatedDetails hands out detail responses only when released, so tests can
// choose the completion order of overlapping FetchDetail calls.
type gatedDetails struct {
	started chan int64
	release map[int64]chan struct{}
}

func newGatedDetails(ids ...int64) *gatedDetails {
	g := &gatedDetails{started: make(chan int64, len(ids)), release: make(map[int64]chan struct{})}
	for _, id := range ids {
		g.release[id] = make(chan struct{})
	}
	return g
}

func (g *gatedDetails) fetch(ctx context.Context, id int64) (*models.CourseDetail, error) {
	g.started <- id
	select {
	case <-g.release[id]:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &models.CourseDetail{Course: models.Course{ID: id, Title: "course", Status: models.StatusActive}}, nil
}

func authErr(msg string) error {
	return &api.AuthError{Message: msg}
}
