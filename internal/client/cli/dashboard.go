package cli

import (
	"context"
	"fmt"
)

// Stats prints the user's aggregate numbers.
func (a *App) Stats(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	stats, err := a.api.DashboardStats(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintf(a.out, "CVs:        %d (%d processed)\n", stats.TotalCVs, stats.ProcessedCVs)
	fmt.Fprintf(a.out, "Embeddings: %d\n", stats.TotalEmbeddings)
	fmt.Fprintf(a.out, "Chats:      %d\n", stats.TotalChats)
	return nil
}

// Recent prints the latest uploads and queries.
func (a *App) Recent(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	recent, err := a.api.DashboardRecent(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintln(a.out, "Recent uploads:")
	if len(recent.RecentFiles) == 0 {
		fmt.Fprintln(a.out, "  none")
	}
	for _, f := range recent.RecentFiles {
		fmt.Fprintf(a.out, "  %4d  %-30s  %s\n", f.CVID, f.Filename, f.Status)
	}

	fmt.Fprintln(a.out, "Recent queries:")
	if len(recent.RecentQueries) == 0 {
		fmt.Fprintln(a.out, "  none")
	}
	for _, q := range recent.RecentQueries {
		fmt.Fprintf(a.out, "  [%s] %s\n", q.Timestamp, q.Query)
	}
	return nil
}
