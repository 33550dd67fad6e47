package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// View fetches the CV's PDF and reports its size. The terminal cannot render
// a PDF; this is the smoke-test counterpart of opening the file in a
// browser tab.
func (a *App) View(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: view <id>")
		return nil
	}

	data, err := a.api.ViewFile(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintf(a.out, "cv %d: %d bytes (use 'download %d <dest>' to save)\n", id, len(data), id)
	return nil
}

// Download fetches the CV's PDF and writes it to dest (second argument), or
// to cv_<id>.pdf in the working directory.
func (a *App) Download(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: download <id> [dest]")
		return nil
	}

	dest := "cv_" + strconv.FormatInt(id, 10) + ".pdf"
	if len(args) > 1 {
		dest = args[1]
	}

	data, err := a.api.DownloadFile(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if err := os.WriteFile(dest, data, 0o600); err != nil {
		fmt.Fprintln(a.out, "Cannot write file:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), dest)
	return nil
}
