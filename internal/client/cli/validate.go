package cli

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

// maxUploadSize is the client-side cap on CV uploads.
const maxUploadSize = 50 << 20 // 50MB

var forms = validator.New()

type loginForm struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=6"`
}

type registerForm struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// validateLoginForm checks credentials before any network call is made.
// The returned error carries a user-facing message.
func validateLoginForm(username, password string) error {
	return friendlyError(forms.Struct(loginForm{Username: username, Password: password}))
}

// validateRegisterForm mirrors the backend's registration constraints plus
// the confirmation match, so obviously bad input never leaves the client.
func validateRegisterForm(username, email, password, confirm string) error {
	return friendlyError(forms.Struct(registerForm{
		Username: username,
		Email:    email,
		Password: password,
		Confirm:  confirm,
	}))
}

// validateUploadFile rejects anything that is not a PDF of acceptable size.
// Runs before the file is even opened for sending.
func validateUploadFile(path string, size int64) error {
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return errors.New("only PDF files can be uploaded")
	}
	if size > maxUploadSize {
		return fmt.Errorf("file exceeds the %dMB upload limit", maxUploadSize>>20)
	}
	return nil
}

// friendlyError rewrites the first validator failure as a message fit for
// the terminal.
func friendlyError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "Username" && (fe.Tag() == "min" || fe.Tag() == "required"):
		return errors.New("username must be at least 3 characters")
	case fe.Field() == "Password" && (fe.Tag() == "min" || fe.Tag() == "required"):
		return errors.New("password must be at least 6 characters")
	case fe.Field() == "Email":
		return errors.New("a valid email address is required")
	case fe.Field() == "Confirm" && fe.Tag() == "eqfield":
		return errors.New("passwords do not match")
	case fe.Field() == "Confirm":
		return errors.New("password confirmation is required")
	default:
		return fmt.Errorf("invalid %s", strings.ToLower(fe.Field()))
	}
}
