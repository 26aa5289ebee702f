package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
)

// Login prompts for email and password and signs in. The password
// buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	session, err := a.svc.Auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", session.User.FullName(), session.User.Role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the stored user and, when the token carries one,
// the access token expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.svc.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.FullName(), u.Email, u.Role))

	exp, err := a.svc.Auth.SessionExpiry(ctx)
	switch {
	case err == nil:
		printlnFn("Access token expires", exp.Local().Format(time.RFC1123))
	case errors.Is(err, credentials.ErrNoExpiry):
	default:
		a.log.Debug(ctx, "inspect access token", "error", err)
	}
	return nil
}
