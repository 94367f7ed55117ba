package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/services"
)

func (a *App) requireHome() bool {
	if _, ok := a.stack.Current().(nav.Home); !ok {
		a.println("Sign in first.")
		return false
	}
	return true
}

// report prints the user-facing text for err and returns it.
func (a *App) report(err error) error {
	a.println(services.UserMessage(err))
	return err
}

// Status prints connectivity, the signed-in user and the current screen.
func (a *App) Status(ctx context.Context) error {
	online := "offline"
	if a.watcher.Online() {
		online = "online"
	}
	a.printf("server:   %s (%s)\n", a.config.ServerBaseURL, online)

	if u, ok := a.session.User(); ok {
		a.printf("user:     %s <%s> verified=%t\n", u.Login(), u.Email, a.session.Verified())
	} else {
		a.println("user:     -")
	}
	if exp, ok := a.tokens.Expiry(); ok {
		a.printf("token:    expires %s\n", exp.Local().Format(time.RFC3339))
	}
	a.printf("screen:   %s\n", a.stack.Current())
	return nil
}

// WhoAmI fetches the account from the server together with its device
// access list.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	me, err := a.api.GetCurrentUser(ctx)
	if err != nil {
		return a.report(err)
	}
	a.session.SetUser(*me)
	a.printf("%s <%s> id=%s verified=%t notifications=%t\n",
		me.Login(), me.Email, me.ID, me.IsEmailVerified, me.NotificationEnabled)

	access, err := a.api.ListUserDevices(ctx, me.ID)
	if err != nil {
		return a.report(err)
	}
	return a.printAccess(access)
}

// Back returns to the previous screen. The OTP screen cannot be left this
// way.
func (a *App) Back(ctx context.Context) error {
	cur := a.stack.Current()
	switch cur.(type) {
	case nav.OTP:
		a.println("Finish the verification first.")
		return errWrongScreen
	case nav.Register:
		a.dropRegistration()
	}

	d, ok := a.stack.Pop()
	if !ok {
		a.println("Nothing to go back to.")
		return nil
	}
	a.render(d)
	return nil
}
