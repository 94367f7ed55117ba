package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/google/uuid"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	current() nav.Destination
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Verify(ctx context.Context, code string) error
	Resend(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Logout(ctx context.Context) error
	Devices(ctx context.Context, activeOnly bool) error
	ShowDevice(ctx context.Context, id uuid.UUID) error
	AddDevice(ctx context.Context, hwID, name string) error
	RenameDevice(ctx context.Context, id uuid.UUID, name string) error
	RemoveDevice(ctx context.Context, id uuid.UUID) error
	GrantAccess(ctx context.Context, id, userID uuid.UUID, role models.UserDeviceRole) error
	Events(ctx context.Context, limit int) error
	AllEvents(ctx context.Context) error
	DeviceEvents(ctx context.Context, deviceID uuid.UUID) error
	ShowEvent(ctx context.Context, id uuid.UUID) error
	WhoAmI(ctx context.Context) error
	Status(ctx context.Context) error
	Back(ctx context.Context) error
}

func (a *App) current() nav.Destination {
	return a.stack.Current()
}

// status is shown in the prompt.
func (a *App) status() string {
	s := ""
	if u, ok := a.session.User(); ok {
		s = u.Login() + " "
	}
	if a.watcher.Online() {
		s += "online"
	} else {
		s += "offline"
	}
	return fmt.Sprintf("(%s)", s)
}

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx is
// done. Errors returned by handlers are ignored here; handlers print their
// own messages.
//
// Commands depend on the current screen; "help" lists them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "doorbell %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands:", strings.Join(commandsFor(a.current()), ", "))

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "verify":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: verify <code>")
				continue
			}
			_ = a.Verify(ctx, args[0])

		case "resend":
			_ = a.Resend(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "devices":
			switch {
			case len(args) == 0:
				_ = a.Devices(ctx, false)
			case len(args) == 1 && args[0] == "active":
				_ = a.Devices(ctx, true)
			default:
				fmt.Fprintln(w, "Usage: devices [active]")
			}

		case "device":
			deviceCommand(ctx, a, args, w)

		case "events":
			eventsCommand(ctx, a, args, w)

		case "event":
			id, ok := parseIDs(args, 1, w, "Usage: event <id>")
			if ok {
				_ = a.ShowEvent(ctx, id[0])
			}

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "status":
			_ = a.Status(ctx)

		case "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

const deviceUsage = "Usage: device <id> | device add <hardware-id> <name> | device rename <id> <name> | device rm <id> | device grant <id> <user-id> [owner|member]"

func deviceCommand(ctx context.Context, a execIface, args []string, w io.Writer) {
	if len(args) == 0 {
		fmt.Fprintln(w, deviceUsage)
		return
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Fprintln(w, deviceUsage)
			return
		}
		_ = a.AddDevice(ctx, args[1], strings.Join(args[2:], " "))

	case "rename":
		if len(args) < 3 {
			fmt.Fprintln(w, deviceUsage)
			return
		}
		id, ok := parseIDs(args[1:2], 1, w, deviceUsage)
		if ok {
			_ = a.RenameDevice(ctx, id[0], strings.Join(args[2:], " "))
		}

	case "rm":
		id, ok := parseIDs(args[1:], 1, w, deviceUsage)
		if ok {
			_ = a.RemoveDevice(ctx, id[0])
		}

	case "grant":
		if len(args) != 3 && len(args) != 4 {
			fmt.Fprintln(w, deviceUsage)
			return
		}
		ids, ok := parseIDs(args[1:3], 2, w, deviceUsage)
		if !ok {
			return
		}
		role := models.UserDeviceRoleMember
		if len(args) == 4 {
			switch models.UserDeviceRole(strings.ToUpper(args[3])) {
			case models.UserDeviceRoleOwner:
				role = models.UserDeviceRoleOwner
			case models.UserDeviceRoleMember:
			default:
				fmt.Fprintln(w, deviceUsage)
				return
			}
		}
		_ = a.GrantAccess(ctx, ids[0], ids[1], role)

	default:
		id, ok := parseIDs(args, 1, w, deviceUsage)
		if ok {
			_ = a.ShowDevice(ctx, id[0])
		}
	}
}

func eventsCommand(ctx context.Context, a execIface, args []string, w io.Writer) {
	const usage = "Usage: events [n] | events all | events device <id>"

	switch {
	case len(args) == 0:
		_ = a.Events(ctx, 0)
	case args[0] == "all" && len(args) == 1:
		_ = a.AllEvents(ctx)
	case args[0] == "device":
		id, ok := parseIDs(args[1:], 1, w, usage)
		if ok {
			_ = a.DeviceEvents(ctx, id[0])
		}
	case len(args) == 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintln(w, usage)
			return
		}
		_ = a.Events(ctx, n)
	default:
		fmt.Fprintln(w, usage)
	}
}

// parseIDs parses exactly n UUID arguments, printing usage otherwise.
func parseIDs(args []string, n int, w io.Writer, usage string) ([]uuid.UUID, bool) {
	if len(args) != n {
		fmt.Fprintln(w, usage)
		return nil, false
	}
	ids := make([]uuid.UUID, n)
	for i, s := range args {
		id, err := uuid.Parse(s)
		if err != nil {
			fmt.Fprintf(w, "Invalid id %q\n", s)
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}
