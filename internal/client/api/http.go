package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/common"
	"github.com/dmitrijs2005/coursecatalog/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultListLimit       = 30
	DefaultTokenTTLMinutes = 60
)

// Options configures an HTTPClient. Zero values select the defaults.
type Options struct {
	BaseURL         string
	ListLimit       int
	TokenTTLMinutes int
	// Timeout bounds every request; zero means no client-side timeout.
	Timeout time.Duration
	// HTTPClient overrides the transport, e.g. in tests.
	HTTPClient *http.Client
	Logger     logging.Logger
}

type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	logger    logging.Logger
	listLimit int
	tokenTTL  int
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", opts.BaseURL)
	}

	c := &HTTPClient{
		baseURL:   base,
		http:      opts.HTTPClient,
		logger:    opts.Logger,
		listLimit: opts.ListLimit,
		tokenTTL:  opts.TokenTTLMinutes,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: opts.Timeout}
	}
	if c.logger == nil {
		c.logger = logging.Nop()
	}
	if c.listLimit <= 0 {
		c.listLimit = DefaultListLimit
	}
	if c.tokenTTL <= 0 {
		c.tokenTTL = DefaultTokenTTLMinutes
	}
	return c, nil
}

type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool { return r.status >= 200 && r.status < 300 }

// do sends one request and reads the whole body. Transport failures wrap
// ErrUnavailable; any HTTP status is returned as a response.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in any, header http.Header) (*response, error) {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log := c.logger.With("request_id", requestID, "method", method, "path", u.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err, "took", time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, ctxErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "bytes", len(b), "took", time.Since(start))

	return &response{status: resp.StatusCode, body: b}, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	in := map[string]any{
		"username":      username,
		"password":      password,
		"expiresInMins": c.tokenTTL,
	}
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, nil)
	if err != nil {
		return nil, &AuthError{Message: "Server unavailable", Err: err}
	}
	if !resp.ok() {
		msg := serverMessage(resp.body)
		if msg == "" {
			msg = "Invalid credentials"
		}
		return nil, &AuthError{Message: msg, StatusCode: resp.status, Err: statusError(resp.status)}
	}
	return normalizeLogin(resp.body)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisteredUser, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users/add", nil, req, nil)
	if err != nil {
		return nil, &AuthError{Message: "Server unavailable", Err: err}
	}
	if !resp.ok() {
		msg := serverMessage(resp.body)
		if msg == "" {
			msg = "Registration failed"
		}
		return nil, &AuthError{Message: msg, StatusCode: resp.status, Err: statusError(resp.status)}
	}
	return normalizeRegistered(resp.body)
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	h := http.Header{}
	h.Set(common.AuthorizationHeaderName, "Bearer "+token)

	resp, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, h)
	if err != nil {
		return nil, &AuthError{Message: "Server unavailable", Err: err}
	}
	if !resp.ok() {
		msg := serverMessage(resp.body)
		if msg == "" {
			msg = "Failed to fetch user data"
		}
		return nil, &AuthError{Message: msg, StatusCode: resp.status, Err: statusError(resp.status)}
	}
	return normalizeUser(resp.body)
}

func (c *HTTPClient) FetchCourseList(ctx context.Context) ([]models.Course, error) {
	const op = "fetch course list"

	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.listLimit))

	resp, err := c.do(ctx, http.MethodGet, "/products", q, nil, nil)
	if err != nil {
		return nil, &CatalogError{Op: op, Message: "Failed to fetch courses", Err: err}
	}
	if !resp.ok() {
		return nil, &CatalogError{Op: op, Message: "Failed to fetch courses", StatusCode: resp.status, Err: statusError(resp.status)}
	}

	courses, err := normalizeCourseList(resp.body)
	if err != nil {
		return nil, &CatalogError{Op: op, Message: "Malformed course list", Err: err}
	}
	return courses, nil
}

func (c *HTTPClient) FetchCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error) {
	const op = "fetch course detail"

	resp, err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, nil, nil)
	if err != nil {
		return nil, &CatalogError{Op: op, Message: "Failed to fetch course details", Err: err}
	}
	if resp.status == http.StatusNotFound || isNotFoundMessage(resp) {
		return nil, &CatalogError{
			Op:         op,
			Message:    fmt.Sprintf("Course %d not found", id),
			StatusCode: resp.status,
			Err:        ErrCourseNotFound,
		}
	}
	if !resp.ok() {
		return nil, &CatalogError{Op: op, Message: "Failed to fetch course details", StatusCode: resp.status, Err: statusError(resp.status)}
	}

	detail, err := normalizeCourseDetail(resp.body)
	if err != nil {
		return nil, &CatalogError{Op: op, Message: "Malformed course details", Err: err}
	}
	return detail, nil
}

// isNotFoundMessage catches upstreams that answer a missing id with a
// non-404 error status and a "... not found" message.
func isNotFoundMessage(r *response) bool {
	if r.ok() {
		return false
	}
	return strings.HasSuffix(strings.ToLower(serverMessage(r.body)), "not found")
}

// Ping probes /test and fails with ErrUnavailable unless it answers "ok".
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/test", nil, nil, nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.status)
	}

	var s struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.body, &s); err != nil || !strings.EqualFold(s.Status, "ok") {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
