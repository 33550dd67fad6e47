package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginForm(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{name: "valid", username: "alice", password: "secret1"},
		{name: "short username", username: "al", password: "secret1", wantMsg: "username must be at least 3 characters"},
		{name: "short password", username: "alice", password: "12345", wantMsg: "password must be at least 6 characters"},
		{name: "empty username", username: "", password: "secret1", wantMsg: "username must be at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLoginForm(tt.username, tt.password)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateRegisterForm(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		email   string
		pass    string
		confirm string
		wantMsg string
	}{
		{name: "valid", user: "alice", email: "alice@example.com", pass: "secret1", confirm: "secret1"},
		{name: "mismatched passwords", user: "alice", email: "alice@example.com", pass: "secret1", confirm: "secret2", wantMsg: "passwords do not match"},
		{name: "bad email", user: "alice", email: "not-an-email", pass: "secret1", confirm: "secret1", wantMsg: "a valid email address is required"},
		{name: "missing email", user: "alice", email: "", pass: "secret1", confirm: "secret1", wantMsg: "a valid email address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRegisterForm(tt.user, tt.email, tt.pass, tt.confirm)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateUploadFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		size    int64
		wantErr bool
	}{
		{name: "pdf under limit", path: "cv.pdf", size: 1024},
		{name: "uppercase extension", path: "CV.PDF", size: 1024},
		{name: "exactly at limit", path: "cv.pdf", size: maxUploadSize},
		{name: "over limit", path: "cv.pdf", size: maxUploadSize + 1, wantErr: true},
		{name: "not a pdf", path: "cv.docx", size: 1024, wantErr: true},
		{name: "no extension", path: "cv", size: 1024, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUploadFile(tt.path, tt.size)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
