package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Upload sends a local PDF to the backend's processing pipeline. The file is
// checked client-side (PDF extension, size cap) before any request is made.
func (a *App) Upload(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: upload <path-to-pdf>")
		return nil
	}
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read file:", err.Error())
		return err
	}

	if err := validateUploadFile(path, info.Size()); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot open file:", err.Error())
		return err
	}
	defer f.Close()

	fmt.Fprintln(a.out, "Uploading and processing, this can take a while...")

	res, err := a.api.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	if res.CandidateName != "" {
		fmt.Fprintf(a.out, "Candidate: %s (cv %d, status %s)\n", res.CandidateName, res.CVID, res.Status)
	}
	if res.Reprocessed {
		fmt.Fprintln(a.out, "Note: an earlier incomplete upload of this CV was reprocessed.")
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(a.out, "Warning:", w)
	}
	return nil
}
