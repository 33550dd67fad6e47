package cli

import (
	"context"
	"fmt"
)

// Logout clears the session and persisted credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
