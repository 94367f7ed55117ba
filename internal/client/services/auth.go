// Package services contains the application services behind the auth
// screens: sign-in and sign-out, registration, email verification and
// password reset.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/session"
	"github.com/dmitrijs2005/doorbell/internal/client/store"
	"github.com/dmitrijs2005/doorbell/internal/client/token"
	"github.com/dmitrijs2005/doorbell/internal/client/validation"
	"github.com/dmitrijs2005/doorbell/internal/logging"
)

// AuthService signs the user in and out.
//
// Contract:
//   - Login: validate the form, confirm the account exists, log in, then
//     persist the credentials, set the token and cache the user.
//   - Logout: forget the token, the cached user and the stored credentials.
type AuthService interface {
	Login(ctx context.Context, form *forms.LoginForm) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api     client.AuthClient
	store   store.CredentialStore
	tokens  *token.Holder
	session *session.Session
	log     logging.Logger
}

func NewAuthService(api client.AuthClient, cs store.CredentialStore, tokens *token.Holder,
	sess *session.Session, log logging.Logger) AuthService {
	return &authService{api: api, store: cs, tokens: tokens, session: sess, log: log.With("component", "auth")}
}

// Login returns the signed-in user. ErrAuthFailure comes with NOT_FOUND set
// on the username field or WRONG_PASSWORD on the password field.
func (a *authService) Login(ctx context.Context, form *forms.LoginForm) (*models.User, error) {
	if !form.ValidateAll() {
		return nil, ErrValidation
	}

	username := form.Username.Text()
	password := form.Password.Text()

	exists, err := a.api.CheckLoginExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check login: %w", classify(err))
	}
	if !exists {
		form.Username.SetCode(validation.CodeNotFound)
		return nil, fmt.Errorf("%w: no such account", ErrAuthFailure)
	}

	resp, err := a.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		if isRejectedCredentials(err) {
			form.Password.SetCode(validation.CodeWrongPassword)
			return nil, fmt.Errorf("%w: %w", ErrAuthFailure, err)
		}
		return nil, fmt.Errorf("login: %w", classify(err))
	}

	if err := a.store.Write(ctx, models.NewCredentials(username, password)); err != nil {
		a.log.Error(ctx, "saving credentials failed", "username", username, "error", err)
	}
	a.tokens.Set(resp.Token)
	a.session.SetUser(resp.User)

	a.log.Info(ctx, "logged in", "username", username, "verified", resp.User.IsEmailVerified)
	user := resp.User
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.tokens.Clear()
	a.session.Clear()
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}
