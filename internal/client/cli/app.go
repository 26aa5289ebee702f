package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/services"
	"github.com/dmitrijs2005/wevraa-admin/internal/logging"
)

const appName = "wevraa admin"

type App struct {
	svc    *services.Services
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(svc *services.Services, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{svc: svc, log: log, reader: bufio.NewReader(in), out: out}
}

// Run prints the banner and blocks in the REPL until the user exits
// or the input is exhausted.
func (a *App) Run(ctx context.Context) {
	printBanner(a.out, appName)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, err := a.svc.Auth.CurrentUser(ctx)
	return err == nil
}

func (a *App) status() string {
	u, err := a.svc.Auth.CurrentUser(context.Background())
	if err != nil {
		return "guest"
	}
	return u.Email
}

// handleError reports err to the user. A lost session also wipes the
// stored credentials so the next prompt starts logged out.
func (a *App) handleError(ctx context.Context, err error) {
	if apiclient.IsSessionLost(err) {
		if cerr := a.svc.Auth.Logout(ctx); cerr != nil {
			a.log.Error(ctx, "clear credentials", "error", cerr)
		}
		printlnFn("session expired, please login again")
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		a.log.Debug(ctx, "request failed", "status", apiErr.Status, "kind", apiErr.Kind.String())
	}
	printlnFn("Error:", err.Error())
}

func (a *App) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}
