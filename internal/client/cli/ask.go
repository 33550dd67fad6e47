package cli

import (
	"context"
	"fmt"
	"strings"
)

// Ask sends a natural-language question to the assistant and renders the
// reply. For search-type answers the ranked matches are printed verbatim
// below the response text.
func (a *App) Ask(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: ask <question>")
		return nil
	}

	resp, err := a.api.Query(ctx, strings.Join(args, " "))
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintln(a.out, resp.ResponseText)

	if resp.QueryType == "cv_search" && resp.TotalMatches > 0 {
		fmt.Fprintf(a.out, "\n%d match(es):\n", resp.TotalMatches)
		for _, r := range resp.Results {
			fmt.Fprintf(a.out, "%2d. %-25s  %-30s  score %.2f\n", r.Rank, r.CandidateName, r.Filename, r.SimilarityScore)
			if len(r.Skills) > 0 {
				fmt.Fprintf(a.out, "    skills: %s\n", strings.Join(r.Skills, ", "))
			}
			for _, e := range r.Experience {
				fmt.Fprintf(a.out, "    %s at %s\n", e.Role, e.Company)
			}
		}
	}
	return nil
}

// History prints past assistant exchanges, newest first as served by the
// backend.
func (a *App) History(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	list, err := a.api.ListChats(ctx, defaultListLimit)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if len(list.Chats) == 0 {
		fmt.Fprintln(a.out, "No chat history yet.")
		return nil
	}

	for _, c := range list.Chats {
		fmt.Fprintf(a.out, "[%s] you: %s\n", c.CreatedAt, c.Query)
		fmt.Fprintf(a.out, "assistant: %s\n\n", c.Response)
	}
	return nil
}
