package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
	"github.com/dmitrijs2005/wevraa-admin/internal/logging"
)

const LoginPath = "/auth/login"

// ErrNotLoggedIn is returned when the store holds no session.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService signs the operator in and out.
type AuthService struct {
	client *apiclient.Client
	store  credentials.Store
	log    logging.Logger
}

func NewAuthService(c *apiclient.Client, log logging.Logger) *AuthService {
	return &AuthService{client: c, store: c.Store(), log: log}
}

// Login exchanges credentials for a session and persists it.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := Validate(req); err != nil {
		return nil, err
	}

	session, err := apiclient.Call[models.Session](ctx, a.client, apiclient.Request{
		Method:      http.MethodPost,
		Path:        LoginPath,
		Body:        req,
		SkipAuth:    true,
		SkipRefresh: true,
	})
	if err != nil {
		return nil, err
	}

	if err := credentials.SaveSession(ctx, a.store, &session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	a.log.Info(ctx, "logged in", "user", session.User.Email, "role", session.User.Role)
	return &session, nil
}

// Refresh forces a token refresh.
func (a *AuthService) Refresh(ctx context.Context) (*models.Session, error) {
	return a.client.Refresh(ctx)
}

// Logout forgets the stored session. The backend keeps no server-side
// logout endpoint.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// CurrentUser returns the stored user snapshot, or ErrNotLoggedIn.
func (a *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	u, err := a.store.User(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}

// SessionExpiry reads the exp claim of the stored access token.
func (a *AuthService) SessionExpiry(ctx context.Context) (time.Time, error) {
	token, err := a.store.AccessToken(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if token == "" {
		return time.Time{}, ErrNotLoggedIn
	}
	return credentials.AccessTokenExpiry(token)
}
