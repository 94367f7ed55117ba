package cli

import (
	"context"

	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/services"
)

// Forgot asks for the account email and mails a reset code.
func (a *App) Forgot(ctx context.Context) error {
	switch a.stack.Current().(type) {
	case nav.ForgotPassword:
	case nav.Login:
		a.push(nav.ForgotPassword{})
	default:
		a.println("Password reset starts from the login screen.")
		return errWrongScreen
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	form := forms.NewEmailForm(a.config.DebounceInterval)
	defer form.Close()
	form.Email.SetText(email)

	challenge, err := a.password.RequestReset(ctx, form)
	if err != nil {
		a.reportFields(fieldResult{"email", form.Email.Code()})
		a.println(services.UserMessage(err))
		return err
	}
	a.openOTP(challenge)
	return nil
}

// Reset sets the new password after the reset code was verified.
func (a *App) Reset(ctx context.Context) error {
	screen, ok := a.stack.Current().(nav.ResetPassword)
	if !ok {
		a.println("Verify a reset code first ('forgot').")
		return errWrongScreen
	}

	password, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	form := forms.NewResetPasswordForm(a.config.DebounceInterval)
	defer form.Close()
	form.Password.SetText(string(password))
	form.Confirm.SetText(string(confirm))

	if err := a.password.Reset(ctx, screen.Login, form); err != nil {
		a.reportFields(
			fieldResult{"password", form.Password.Code()},
			fieldResult{"confirmation", form.Confirm.Code()},
		)
		a.println(services.UserMessage(err))
		return err
	}

	a.println("Password changed. Sign in with the new password.")
	a.navigate(nav.Login{})
	return nil
}
