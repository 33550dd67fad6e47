package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials, validates them locally, and establishes a
// session via the session manager. Failures are printed, never propagated as
// panics; the REPL stays alive.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := validateLoginForm(username, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	user, err := a.session.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}
