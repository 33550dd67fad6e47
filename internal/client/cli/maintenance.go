package cli

import (
	"context"
	"fmt"
)

// Rebuild triggers a server-side rebuild of the user's CV embeddings.
func (a *App) Rebuild(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	fmt.Fprintln(a.out, "Rebuilding embeddings...")
	res, err := a.api.RebuildEmbeddings(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return nil
}
