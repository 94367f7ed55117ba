package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/validation"
)

// commandsFor lists what the user can type on each screen.
func commandsFor(d nav.Destination) []string {
	switch d.(type) {
	case nav.Login:
		return []string{"login", "register", "forgot", "status", "exit"}
	case nav.Register:
		return []string{"register", "back", "status", "exit"}
	case nav.ForgotPassword:
		return []string{"forgot", "back", "status", "exit"}
	case nav.ResetPassword:
		return []string{"reset", "back", "status", "exit"}
	case nav.OTP:
		return []string{"verify <code>", "resend", "status", "exit"}
	case nav.Home:
		return []string{"devices [active]", "device <id|add|rename|rm|grant>", "events [n|all|device <id>]",
			"event <id>", "whoami", "status", "logout", "exit"}
	default:
		panic(fmt.Sprintf("unhandled destination %T", d))
	}
}

// render prints the header of screen d.
func (a *App) render(d nav.Destination) {
	switch d := d.(type) {
	case nav.Login:
		a.println("== Sign in ==")
	case nav.Register:
		a.println("== Create account ==")
	case nav.ForgotPassword:
		a.println("== Forgot password ==")
	case nav.ResetPassword:
		a.printf("== New password for %s ==\n", d.Login)
	case nav.OTP:
		a.printf("== Enter the 6-digit code sent to %s ==\n", d.Email)
	case nav.Home:
		if u, ok := a.session.User(); ok {
			a.printf("== Welcome, %s ==\n", u.Login())
		} else {
			a.println("== Home ==")
		}
	}
	a.println("Commands:", strings.Join(commandsFor(d), ", "))
}

// navigate replaces the whole stack with d and renders it.
func (a *App) navigate(d nav.Destination) {
	a.stack.Replace(d)
	a.render(d)
}

func (a *App) push(d nav.Destination) {
	a.stack.Push(d)
	a.render(d)
}

// openOTP shows the verification screen for challenge and arms the resend
// countdown.
func (a *App) openOTP(challenge nav.OTP) {
	a.countdown.Start()
	a.push(challenge)
}

func fieldMessage(c validation.Code) string {
	switch c {
	case validation.CodeEmpty:
		return "must not be empty"
	case validation.CodeTooShort:
		return "is too short"
	case validation.CodeBadLength:
		return fmt.Sprintf("must be %d to %d characters", validation.MinUsernameLength, validation.MaxUsernameLength)
	case validation.CodeBadFormat:
		return "has an invalid format"
	case validation.CodeMismatch:
		return "does not match the password"
	case validation.CodeTaken:
		return "is already taken"
	case validation.CodeNotFound:
		return "does not belong to any account"
	case validation.CodeWrongPassword:
		return "is incorrect"
	case validation.CodeRemoteError:
		return "could not be checked right now"
	default:
		return string(c)
	}
}

type fieldResult struct {
	name string
	code validation.Code
}

// reportFields prints one line per field that carries an error.
func (a *App) reportFields(fields ...fieldResult) {
	for _, f := range fields {
		if !f.code.OK() {
			a.printf("  %s %s\n", f.name, fieldMessage(f.code))
		}
	}
}
