// Package state persists session credentials between runs. It is the local
// analogue of browser storage: a key-value table holding exactly two keys,
// the access token and the serialized user identity.
package state

import (
	"context"

	"github.com/cvdesk/cvdesk/internal/client/models"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Credentials is the persisted mirror of an authenticated session.
type Credentials struct {
	Token string
	User  models.User
}

// Store reads and writes persisted session credentials.
//
// Contract:
//   - Save replaces any previously stored credentials atomically.
//   - Load returns nil (no error) when no complete credentials are stored.
//   - Clear removes both keys; clearing an empty store is not an error.
type Store interface {
	Save(ctx context.Context, creds Credentials) error
	Load(ctx context.Context) (*Credentials, error)
	Clear(ctx context.Context) error
	Close() error
}
