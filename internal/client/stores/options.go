package stores

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/logging"
)

// ErrNotAuthenticated is returned by actions that need a logged-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthAPI is the part of the remote API the session store calls.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisteredUser, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// CatalogAPI is the part of the remote API the catalog store calls.
type CatalogAPI interface {
	FetchCourseList(ctx context.Context) ([]models.Course, error)
	FetchCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error)
}

type options struct {
	logger        logging.Logger
	now           func() time.Time
	rejectExpired bool
}

// Option configures a store.
type Option func(*options)

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRejectExpiredSession makes CheckSession discard a cached session whose
// token has expired. By default the cache is trusted as is.
func WithRejectExpiredSession(reject bool) Option {
	return func(o *options) { o.rejectExpired = reject }
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}
