package api

import (
	"context"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisteredUser, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	FetchCourseList(ctx context.Context) ([]models.Course, error)
	FetchCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error)
	Ping(ctx context.Context) error
	Close() error
}
