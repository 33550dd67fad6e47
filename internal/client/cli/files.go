package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const defaultListLimit = 50

// Files lists the user's uploaded CVs. Any arguments are joined into a
// search filter.
func (a *App) Files(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	list, err := a.api.ListFiles(ctx, defaultListLimit, strings.Join(args, " "))
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if len(list.Files) == 0 {
		fmt.Fprintln(a.out, "No files found.")
		return nil
	}

	for _, f := range list.Files {
		name := f.CandidateName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(a.out, "%4d  %-30s  %-20s  %s\n", f.CVID, f.Filename, name, f.ProcessingStatus)
	}
	fmt.Fprintf(a.out, "%d file(s)\n", list.TotalCount)
	return nil
}

// Delete removes one CV by id.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}

	res, err := a.api.DeleteFile(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.ParseInt(args[0], 10, 64)
}
