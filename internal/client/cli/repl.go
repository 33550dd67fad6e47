package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Files(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	View(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Candidates(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Ask(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Recent(ctx context.Context) error
	Rebuild(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: upload <path>, files [search], delete <id>, view <id>, " +
		"download <id> [dest], candidates [search], show <id>, ask <question>, history, " +
		"stats, recent, rebuild, logout, exit"
)

// runREPL starts a read-eval-print loop for the cvdesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "cvdesk %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "files", "ls":
			_ = a.Files(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "view":
			_ = a.View(ctx, args)

		case "download":
			_ = a.Download(ctx, args)

		case "candidates":
			_ = a.Candidates(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "ask":
			_ = a.Ask(ctx, args)

		case "history":
			_ = a.History(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "recent":
			_ = a.Recent(ctx)

		case "rebuild":
			_ = a.Rebuild(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
