package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/services"
)

var errWrongScreen = errors.New("command not available on this screen")

// Login prompts for credentials and signs in. Verified users go home;
// unverified users are sent a code and shown the OTP screen.
func (a *App) Login(ctx context.Context) error {
	if _, ok := a.stack.Current().(nav.Login); !ok {
		a.println("Sign in from the login screen (use 'back' or 'logout').")
		return errWrongScreen
	}

	username, err := getSimpleText(a.reader, "Username or email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	form := forms.NewLoginForm(a.config.DebounceInterval)
	defer form.Close()
	form.Username.SetText(username)
	form.Password.SetText(string(password))

	user, err := a.auth.Login(ctx, form)
	if err != nil {
		a.reportFields(
			fieldResult{"username", form.Username.Code()},
			fieldResult{"password", form.Password.Code()},
		)
		a.println(services.UserMessage(err))
		return err
	}

	if user.IsEmailVerified {
		a.navigate(nav.Home{})
		return nil
	}

	challenge := nav.OTP{Username: user.Username, Email: user.Email, Purpose: models.OTPPurposeVerifyEmail}
	if err := a.otp.Send(ctx, challenge); err != nil {
		a.println(services.UserMessage(err))
		return err
	}
	a.println("Your email is not verified yet. A code is on its way.")
	a.openOTP(challenge)
	return nil
}

// Register opens the registration screen (if needed), collects the form
// and starts verification. Retrying on the same screen never signs up twice.
// Once the account is verified but could not sign in, it retries that login.
func (a *App) Register(ctx context.Context) error {
	switch a.stack.Current().(type) {
	case nav.Register:
		if a.registrar != nil && a.session.LoginFailedAfterVerify() {
			return a.finishRegistration(ctx)
		}
	case nav.Login:
		a.registerForm = forms.NewRegisterForm(a.config.DebounceInterval)
		a.registrar = services.NewRegistrar(a.registerForm, a.api, a.otp, a.store, a.tokens, a.session, a.log)
		a.push(nav.Register{})
	default:
		a.println("Registration starts from the login screen.")
		return errWrongScreen
	}

	form := a.registerForm
	username, err := getSimpleText(a.reader, "Username (optional)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	form.Username.SetText(username)
	form.Email.SetText(email)
	form.Password.SetText(string(password))
	form.Confirm.SetText(string(confirm))

	challenge, err := a.registrar.Register(ctx)
	if err != nil {
		a.reportFields(
			fieldResult{"username", form.Username.Code()},
			fieldResult{"email", form.Email.Code()},
			fieldResult{"password", form.Password.Code()},
			fieldResult{"confirmation", form.Confirm.Code()},
		)
		a.println(services.UserMessage(err))
		return err
	}

	a.openOTP(challenge)
	return nil
}

// finishRegistration runs after the OTP screen popped back to Register.
// When the first login fails the user stays on Register and can retry it
// with 'register' or go 'back' and sign in manually.
func (a *App) finishRegistration(ctx context.Context) error {
	if _, err := a.registrar.FirstLogin(ctx); err != nil {
		a.println(services.UserMessage(err))
		a.println("Your email is verified, but signing in failed. Type 'register' to retry or 'back' to sign in manually.")
		return err
	}
	a.dropRegistration()
	a.navigate(nav.Home{})
	return nil
}

func (a *App) dropRegistration() {
	if a.registerForm != nil {
		a.registerForm.Close()
	}
	a.registerForm, a.registrar = nil, nil
}

// Logout forgets the session and the stored credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.println(services.UserMessage(err))
		return err
	}
	a.dropRegistration()
	a.println("Signed out.")
	a.navigate(nav.Login{})
	return nil
}
