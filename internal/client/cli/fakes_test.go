package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/coursecatalog/internal/client/api"
	"github.com/dmitrijs2005/coursecatalog/internal/client/config"
	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/repositories/kv"
	"github.com/dmitrijs2005/coursecatalog/internal/logging"
)

type fakeClient struct {
	user     *models.User
	loginErr error
	courses  []models.Course
	listErr  error
	details  map[int64]*models.CourseDetail
	online   atomic.Bool
	closed   bool
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u := *f.user
	return &u, nil
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisteredUser, error) {
	if req.Username == "taken" {
		return nil, &api.AuthError{Message: "Username already exists"}
	}
	return &models.RegisteredUser{ID: 209, Username: req.Username, Email: req.Email}, nil
}

func (f *fakeClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	u := *f.user
	u.Phone = "+1 555"
	return &u, nil
}

func (f *fakeClient) FetchCourseList(ctx context.Context) ([]models.Course, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Course(nil), f.courses...), nil
}

func (f *fakeClient) FetchCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, &api.CatalogError{Message: "Course not found", Err: api.ErrCourseNotFound}
	}
	return d, nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	if f.online.Load() {
		return nil
	}
	return api.ErrUnavailable
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func testCourses() []models.Course {
	return []models.Course{
		{ID: 1, Title: "Go Fundamentals", Category: "programming", Price: 20, Rating: 4.5, Status: models.StatusActive},
		{ID: 2, Title: "Advanced Go", Category: "programming", Price: 40, Rating: 4.8, Status: models.StatusLimited},
		{ID: 3, Title: "Watercolor Basics", Category: "art", Price: 15, Rating: 4.1, Status: models.StatusFull},
	}
}

func newFakeClient() *fakeClient {
	f := &fakeClient{
		user:    &models.User{ID: 1, Username: "emilys", FirstName: "Emily", LastName: "Johnson", Email: "emily@x.com", Token: "tok"},
		courses: testCourses(),
		details: map[int64]*models.CourseDetail{
			2: {Course: testCourses()[1], Images: []string{"a.png"}, Stock: 12, Brand: "Gopher Academy"},
		},
	}
	f.online.Store(true)
	return f
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.OnlineCheckInterval = 10 * time.Millisecond
	return c
}

// newTestApp builds an App over fakes. input feeds the interactive prompts.
func newTestApp(t *testing.T, client *fakeClient, input string) (*App, *bytes.Buffer, *kv.MemoryRepository) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	out := &bytes.Buffer{}
	a := newApp(testConfig(), logging.New("error", io.Discard), client, repo, strings.NewReader(input), out)
	return a, out, repo
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
