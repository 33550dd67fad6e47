// Package api is the single choke point for CV-desk backend calls. It owns
// the base URL, bearer-token attachment, and response decoding; callers get
// typed payloads and sentinel errors, never raw HTTP details.
package api

import (
	"context"
	"io"

	"github.com/cvdesk/cvdesk/internal/client/models"
)

// TokenSource supplies the current access token, or "" when no session
// exists. The gateway consults it on every request.
type TokenSource func(ctx context.Context) string

// Client is the backend surface the rest of the application talks to.
//
// Every method honors context cancellation. Authorization failures surface
// as ErrSessionExpired; the registered session-expired handler is notified
// before the method returns.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)

	ListFiles(ctx context.Context, limit int, search string) (*models.FileList, error)
	Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error)
	DeleteFile(ctx context.Context, cvID int64) (*models.DeleteResult, error)
	ViewFile(ctx context.Context, cvID int64) ([]byte, error)
	DownloadFile(ctx context.Context, cvID int64) ([]byte, error)

	ListCandidates(ctx context.Context, limit int, search string) (*models.CandidateList, error)
	CandidateDetail(ctx context.Context, cvID int64) (*models.CandidateDetail, error)

	Query(ctx context.Context, q string) (*models.QueryResponse, error)
	ListChats(ctx context.Context, limit int) (*models.ChatList, error)

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	DashboardRecent(ctx context.Context) (*models.RecentActivity, error)

	RebuildEmbeddings(ctx context.Context) (*models.MaintenanceResult, error)

	// Health probes the backend's health endpoint. It needs no session and
	// never signals session expiry.
	Health(ctx context.Context) (*models.HealthStatus, error)
}
