package cli

import (
	"context"
	"fmt"
	"strings"
)

// Candidates lists the candidate directory, optionally filtered.
func (a *App) Candidates(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	list, err := a.api.ListCandidates(ctx, defaultListLimit, strings.Join(args, " "))
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if len(list.Candidates) == 0 {
		fmt.Fprintln(a.out, "No candidates found.")
		return nil
	}

	for _, c := range list.Candidates {
		fmt.Fprintf(a.out, "%4d  %-25s  %-30s  %s\n", c.CVID, c.CandidateName, c.CandidateEmail, c.ProcessingStatus)
		if len(c.Skills) > 0 {
			fmt.Fprintf(a.out, "      skills: %s\n", strings.Join(c.Skills, ", "))
		}
	}
	fmt.Fprintf(a.out, "%d candidate(s)\n", list.TotalCount)
	return nil
}

// Show prints one candidate's full profile.
func (a *App) Show(ctx context.Context, args []string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	c, err := a.api.CandidateDetail(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintf(a.out, "Candidate: %s\n", c.CandidateName)
	fmt.Fprintf(a.out, "File:      %s (cv %d, %s)\n", c.Filename, c.CVID, c.ProcessingStatus)
	if c.CandidateEmail != "" {
		fmt.Fprintf(a.out, "Email:     %s\n", c.CandidateEmail)
	}
	if c.CandidatePhone != "" {
		fmt.Fprintf(a.out, "Phone:     %s\n", c.CandidatePhone)
	}
	fmt.Fprintf(a.out, "Uploaded:  %s\n", c.UploadedDate)
	if c.OriginalTextPreview != "" {
		fmt.Fprintln(a.out, "Preview:")
		fmt.Fprintln(a.out, c.OriginalTextPreview)
	}
	return nil
}
