// Package models defines the request and response payloads exchanged with
// the CV-desk backend. Field names follow the backend's JSON contract.
package models

// User is the minimal identity persisted with the session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// AuthResponse is returned by both the login and register endpoints.
type AuthResponse struct {
	Message     string `json:"message"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
