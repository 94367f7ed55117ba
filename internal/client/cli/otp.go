package cli

import (
	"context"

	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/services"
)

// Verify checks code against the pending challenge and routes onward.
func (a *App) Verify(ctx context.Context, code string) error {
	challenge, ok := a.stack.Current().(nav.OTP)
	if !ok {
		a.println("No verification is pending.")
		return errWrongScreen
	}

	if err := a.otp.Verify(ctx, challenge.Email, code); err != nil {
		a.println(services.UserMessage(err))
		return err
	}
	a.println("Verified.")

	a.stack.Resume(challenge, func() { a.stack.Replace(nav.Home{}) })

	dest := a.stack.Current()
	if _, ok := dest.(nav.Register); ok && a.registrar != nil {
		return a.finishRegistration(ctx)
	}
	a.render(dest)
	return nil
}

// Resend mails a new code once the countdown has run out.
func (a *App) Resend(ctx context.Context) error {
	challenge, ok := a.stack.Current().(nav.OTP)
	if !ok {
		a.println("No verification is pending.")
		return errWrongScreen
	}
	if !a.countdown.Expired() {
		a.printf("You can request a new code in %d s.\n", int(a.countdown.Remaining().Seconds()+0.5))
		return nil
	}

	if err := a.otp.Send(ctx, challenge); err != nil {
		a.println(services.UserMessage(err))
		return err
	}
	a.countdown.Start()
	a.println("A new code has been sent.")
	return nil
}
