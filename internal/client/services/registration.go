package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/session"
	"github.com/dmitrijs2005/doorbell/internal/client/store"
	"github.com/dmitrijs2005/doorbell/internal/client/token"
	"github.com/dmitrijs2005/doorbell/internal/logging"
)

// Registrar drives one registration attempt for a form. Signup happens at
// most once per Registrar; retries after a failed OTP dispatch only resend
// the code.
type Registrar struct {
	form    *forms.RegisterForm
	api     client.AuthClient
	otp     *OTPService
	store   store.CredentialStore
	tokens  *token.Holder
	session *session.Session
	log     logging.Logger

	mu         sync.Mutex
	registered bool
}

func NewRegistrar(form *forms.RegisterForm, api client.AuthClient, otp *OTPService, cs store.CredentialStore,
	tokens *token.Holder, sess *session.Session, log logging.Logger) *Registrar {
	return &Registrar{
		form:    form,
		api:     api,
		otp:     otp,
		store:   cs,
		tokens:  tokens,
		session: sess,
		log:     log.With("component", "registrar"),
	}
}

func (r *Registrar) Registered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registered
}

// Register validates the form, signs up (once), stores the credentials and
// sends the verification code. The returned challenge hands control back
// to the registration screen when verified.
func (r *Registrar) Register(ctx context.Context) (nav.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Once signed up, the account itself makes username and email "taken".
	var valid bool
	if r.registered {
		valid = r.form.ValidateLocal()
	} else {
		valid = r.form.ValidateAll(ctx, r.api)
	}
	if !valid {
		return nav.OTP{}, &StageError{Stage: StageValidate, Err: ErrValidation}
	}

	username := r.form.OptionalUsername()
	email := r.form.Email.Text()
	password := r.form.Password.Text()

	if !r.registered {
		user, err := r.api.Signup(ctx, models.RegisterRequest{Username: username, Email: email, Password: password})
		if err != nil {
			return nav.OTP{}, &StageError{Stage: StageSignup, Err: classify(err)}
		}
		if err := r.store.Write(ctx, models.NewCredentials(user.Login(), password)); err != nil {
			r.log.Error(ctx, "saving credentials failed", "email", email, "error", err)
		}
		r.registered = true
		r.log.Info(ctx, "signed up", "email", email)
	}

	challenge := nav.OTP{
		Username:   username,
		Email:      email,
		Purpose:    models.OTPPurposeVerifyEmail,
		WithOrigin: true,
	}
	if err := r.otp.Send(ctx, challenge); err != nil {
		return nav.OTP{}, &StageError{Stage: StageSendOTP, Err: err}
	}
	return challenge, nil
}

// FirstLogin signs in with the form credentials once the email is verified.
func (r *Registrar) FirstLogin(ctx context.Context) (*models.User, error) {
	login := r.form.Email.Text()
	if u := r.form.OptionalUsername(); u != nil {
		login = *u
	}

	resp, err := r.api.Login(ctx, models.LoginRequest{Username: login, Password: r.form.Password.Text()})
	if err != nil {
		r.session.MarkLoginFailedAfterVerify()
		return nil, fmt.Errorf("first login: %w", classify(err))
	}

	r.tokens.Set(resp.Token)
	r.session.SetUser(resp.User)
	r.session.MarkVerified()
	user := resp.User
	return &user, nil
}
