package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cvdesk/cvdesk/internal/client/models"
	"github.com/cvdesk/cvdesk/internal/logging"
)

// RestyClient is the Client implementation over HTTP/JSON.
type RestyClient struct {
	rc        *resty.Client
	tokens    TokenSource
	onExpired func()
	log       logging.Logger
}

// NewRestyClient builds a gateway bound to baseURL. The token source is
// consulted per request; an empty token means no Authorization header
// (login and register run this way).
func NewRestyClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *RestyClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &RestyClient{rc: rc, tokens: tokens, log: log}
}

// SetSessionExpiredHandler registers the callback fired on any 401. The
// gateway itself performs no navigation or state teardown; that stays with
// the subscriber.
func (c *RestyClient) SetSessionExpiredHandler(fn func()) {
	c.onExpired = fn
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

func (c *RestyClient) newRequest(ctx context.Context) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	req.SetHeader("X-Request-Id", uuid.NewString())
	if token := c.tokens(ctx); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkResponse maps transport failures and non-2xx statuses onto the
// package's error vocabulary. A nil return means the response is usable.
func (c *RestyClient) checkResponse(ctx context.Context, resp *resty.Response, err error, endpoint string) error {
	if err != nil {
		c.log.Error(ctx, "request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%s: %w", endpoint, ErrUnavailable)
	}

	switch {
	case resp.IsSuccess():
		return nil

	case resp.StatusCode() == http.StatusUnauthorized:
		c.log.Warn(ctx, "access token rejected", "endpoint", endpoint)
		if c.onExpired != nil {
			c.onExpired()
		}
		return ErrSessionExpired

	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detailMessage(resp.Body()), ErrNotFound)

	default:
		c.log.Warn(ctx, "request rejected", "endpoint", endpoint, "status", resp.StatusCode())
		return fmt.Errorf("%s", detailMessage(resp.Body()))
	}
}

// detailMessage extracts the backend's human-readable error detail, falling
// back to a generic message for empty or non-JSON bodies.
func detailMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return "request failed"
}

func (c *RestyClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := c.newRequest(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err := c.checkPlainResponse(ctx, resp, err, "/auth/login"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := c.newRequest(ctx).
		SetBody(models.RegisterRequest{Username: username, Email: email, Password: password}).
		SetResult(&out).
		Post("/auth/register")
	if err := c.checkPlainResponse(ctx, resp, err, "/auth/register"); err != nil {
		return nil, err
	}
	return &out, nil
}

// checkPlainResponse differs from checkResponse in one way: it never fires
// the expiry handler. It serves the endpoints where a 401 does not mean an
// expired session: the credential endpoints (wrong credentials) and the
// unauthenticated health probe.
func (c *RestyClient) checkPlainResponse(ctx context.Context, resp *resty.Response, err error, endpoint string) error {
	if err != nil {
		c.log.Error(ctx, "request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%s: %w", endpoint, ErrUnavailable)
	}
	if resp.IsSuccess() {
		return nil
	}
	return fmt.Errorf("%s", detailMessage(resp.Body()))
}

func (c *RestyClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err := c.checkResponse(ctx, resp, err, "/auth/me"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) ListFiles(ctx context.Context, limit int, search string) (*models.FileList, error) {
	var out models.FileList
	req := c.newRequest(ctx).SetResult(&out)
	applyListFilters(req, limit, search)
	resp, err := req.Get("/api/files")
	if err := c.checkResponse(ctx, resp, err, "/api/files"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload sends the CV as a multipart body. resty sets the multipart
// content type itself; only the auth header is added on top.
func (c *RestyClient) Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error) {
	var out models.UploadResult
	resp, err := c.newRequest(ctx).
		SetFileReader("file", filename, file).
		SetResult(&out).
		Post("/api/upload")
	if err := c.checkResponse(ctx, resp, err, "/api/upload"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) DeleteFile(ctx context.Context, cvID int64) (*models.DeleteResult, error) {
	var out models.DeleteResult
	endpoint := "/api/files/" + strconv.FormatInt(cvID, 10)
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Delete(endpoint)
	if err := c.checkResponse(ctx, resp, err, endpoint); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) ViewFile(ctx context.Context, cvID int64) ([]byte, error) {
	return c.fetchBinary(ctx, "/api/files/view/"+strconv.FormatInt(cvID, 10))
}

func (c *RestyClient) DownloadFile(ctx context.Context, cvID int64) ([]byte, error) {
	return c.fetchBinary(ctx, "/api/files/download/"+strconv.FormatInt(cvID, 10))
}

// fetchBinary returns the raw response body. No JSON decoding happens on
// success; error statuses still carry a JSON detail and are decoded as usual.
func (c *RestyClient) fetchBinary(ctx context.Context, endpoint string) ([]byte, error) {
	resp, err := c.newRequest(ctx).Get(endpoint)
	if err := c.checkResponse(ctx, resp, err, endpoint); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *RestyClient) ListCandidates(ctx context.Context, limit int, search string) (*models.CandidateList, error) {
	var out models.CandidateList
	req := c.newRequest(ctx).SetResult(&out)
	applyListFilters(req, limit, search)
	resp, err := req.Get("/candidates")
	if err := c.checkResponse(ctx, resp, err, "/candidates"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) CandidateDetail(ctx context.Context, cvID int64) (*models.CandidateDetail, error) {
	var out models.CandidateDetail
	endpoint := "/candidates/" + strconv.FormatInt(cvID, 10)
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Get(endpoint)
	if err := c.checkResponse(ctx, resp, err, endpoint); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) Query(ctx context.Context, q string) (*models.QueryResponse, error) {
	var out models.QueryResponse
	resp, err := c.newRequest(ctx).
		SetQueryParam("q", q).
		SetResult(&out).
		Get("/query")
	if err := c.checkResponse(ctx, resp, err, "/query"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) ListChats(ctx context.Context, limit int) (*models.ChatList, error) {
	var out models.ChatList
	req := c.newRequest(ctx).SetResult(&out)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := req.Get("/api/chats")
	if err := c.checkResponse(ctx, resp, err, "/api/chats"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Get("/api/dashboard/stats")
	if err := c.checkResponse(ctx, resp, err, "/api/dashboard/stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) DashboardRecent(ctx context.Context) (*models.RecentActivity, error) {
	var out models.RecentActivity
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Get("/api/dashboard/recent")
	if err := c.checkResponse(ctx, resp, err, "/api/dashboard/recent"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) RebuildEmbeddings(ctx context.Context) (*models.MaintenanceResult, error) {
	var out models.MaintenanceResult
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Post("/api/maintenance/rebuild-embeddings")
	if err := c.checkResponse(ctx, resp, err, "/api/maintenance/rebuild-embeddings"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RestyClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	var out models.HealthStatus
	resp, err := c.newRequest(ctx).
		SetResult(&out).
		Get("/health")
	if err := c.checkPlainResponse(ctx, resp, err, "/health"); err != nil {
		return nil, err
	}
	return &out, nil
}

func applyListFilters(req *resty.Request, limit int, search string) {
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if search != "" {
		req.SetQueryParam("search", search)
	}
}
