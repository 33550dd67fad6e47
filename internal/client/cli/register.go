package cli

import (
	"context"
	"fmt"
)

// Register prompts for the new account's fields, validates them locally
// (nothing is sent when the confirmation does not match), and establishes
// a session on success.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := validateRegisterForm(username, email, password, confirm); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	user, err := a.session.Register(ctx, username, email, password)
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Username)
	return nil
}
