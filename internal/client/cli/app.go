package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cvdesk/cvdesk/internal/client/api"
	"github.com/cvdesk/cvdesk/internal/client/config"
	"github.com/cvdesk/cvdesk/internal/client/session"
	"github.com/cvdesk/cvdesk/internal/client/state"
	"github.com/cvdesk/cvdesk/internal/logging"
)

// Mode is the backend reachability indicator shown in the prompt.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

const (
	statusPollInterval = 30 * time.Second
	statusProbeTimeout = 3 * time.Second
)

// App wires the gateway, the session manager, and the interactive shell
// together. All user-facing output goes through a.out so tests can capture
// it.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	store   state.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.Mutex
	mode   Mode
}

// NewApp builds the application: opens the state store, constructs the
// gateway with the session as its token source, and subscribes the session
// teardown to the gateway's expiry notifications.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := state.Open(ctx, c.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	a := &App{
		config: c,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	gateway := api.NewRestyClient(c.BaseURL, c.RequestTimeout, func(ctx context.Context) string {
		return a.session.Token(ctx)
	}, log)

	a.api = gateway
	a.session = session.NewManager(gateway, store, log)

	gateway.SetSessionExpiredHandler(func() {
		a.session.Invalidate(context.Background())
		fmt.Fprintln(a.out, "Session expired, please log in again.")
	})

	return a, nil
}

// Run restores the session and serves the interactive loop until EOF or an
// exit command.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.store.Close() }()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}

	go a.StartStatusWatcher(ctx, statusPollInterval)

	fmt.Fprintln(a.out, "Welcome to cvdesk (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
	return nil
}

// StartStatusWatcher polls the backend's health endpoint and keeps the
// prompt's online/offline indicator current. It returns when ctx is done.
func (a *App) StartStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, statusProbeTimeout)
			_, err := a.api.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "backend status changed", "mode", string(mode))
	}
}

// CurrentMode returns the last observed backend status. The zero value means
// no probe has completed yet.
func (a *App) CurrentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) getStatus() string {
	status := ""
	if user := a.session.User(); user != nil {
		status = fmt.Sprintf("(%s)", user.Username)
	}
	if a.CurrentMode() == ModeOffline {
		status += " [offline]"
	}
	return status
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// requireAuth is the route-guard analogue: protected commands pass only in
// the authenticated state. While startup restore is still resolving it waits
// instead of refusing, so the user never sees a spurious login prompt.
func (a *App) requireAuth(ctx context.Context) bool {
	if a.session.State() == session.StateInitializing {
		fmt.Fprintln(a.out, "Checking session...")
		select {
		case <-a.session.Ready():
		case <-ctx.Done():
			return false
		}
	}
	if a.session.State() != session.StateAuthenticated {
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'register' first.")
		return false
	}
	return true
}

// printAPIError renders a gateway failure for the terminal. Session expiry
// is already announced by the expiry handler, so it is not repeated here.
func (a *App) printAPIError(err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		return
	}
	fmt.Fprintln(a.out, "Error:", err.Error())
}
