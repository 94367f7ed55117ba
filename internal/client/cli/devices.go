package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/google/uuid"
)

// Devices lists the devices visible to the user, optionally only the
// active ones.
func (a *App) Devices(ctx context.Context, activeOnly bool) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	list := a.api.ListDevices
	if activeOnly {
		list = a.api.ListActiveDevices
	}
	devices, err := list(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(devices) == 0 {
		a.println("No devices.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tACTIVE\tBATTERY\tLAST ONLINE")
	for _, d := range devices {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%d%%\t%s\n", d.ID, d.DisplayName, d.Active, d.BatteryLevelPercent, orDash(d.LastOnlineAt))
	}
	return tw.Flush()
}

// ShowDevice prints one device and who has access to it.
func (a *App) ShowDevice(ctx context.Context, id uuid.UUID) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	d, err := a.api.GetDevice(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printDevice(d)

	access, err := a.api.ListDeviceAccess(ctx, id)
	if err != nil {
		return a.report(err)
	}
	return a.printAccess(access)
}

// AddDevice registers hardware identifier hwID under name.
func (a *App) AddDevice(ctx context.Context, hwID, name string) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	d, err := a.api.CreateDevice(ctx, models.DeviceRegisterRequest{DeviceID: hwID, DisplayName: name})
	if err != nil {
		return a.report(err)
	}
	a.printf("Device %s added.\n", d.ID)
	return nil
}

func (a *App) RenameDevice(ctx context.Context, id uuid.UUID, name string) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	d, err := a.api.UpdateDevice(ctx, id, models.DeviceUpdateRequest{DisplayName: &name})
	if err != nil {
		return a.report(err)
	}
	a.printf("Device %s is now %q.\n", d.ID, d.DisplayName)
	return nil
}

func (a *App) RemoveDevice(ctx context.Context, id uuid.UUID) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	if err := a.api.DeleteDevice(ctx, id); err != nil {
		return a.report(err)
	}
	a.printf("Device %s removed.\n", id)
	return nil
}

// GrantAccess gives userID the role on device id. The user is looked up
// first so a mistyped id fails before anything changes.
func (a *App) GrantAccess(ctx context.Context, id, userID uuid.UUID, role models.UserDeviceRole) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	u, err := a.api.GetUser(ctx, userID)
	if err != nil {
		return a.report(err)
	}
	if _, err := a.api.GrantDeviceAccess(ctx, id, models.DeviceAccessRequest{UserID: userID, Role: role}); err != nil {
		return a.report(err)
	}
	a.printf("%s is now %s of %s.\n", u.Login(), role, id)
	return nil
}

func (a *App) printDevice(d *models.Device) {
	a.printf("id:        %s\n", d.ID)
	a.printf("hardware:  %s\n", d.DeviceIdentifier)
	a.printf("name:      %s\n", d.DisplayName)
	a.printf("location:  %s\n", orDash(d.LocationDescription))
	a.printf("model:     %s (fw %s)\n", orDash(d.ModelName), orDash(d.FirmwareVersion))
	a.printf("active:    %t, battery %d%%\n", d.Active, d.BatteryLevelPercent)
	if d.SignalStrengthDbm != nil {
		a.printf("signal:    %d dBm\n", *d.SignalStrengthDbm)
	}
	a.printf("online:    %s\n", orDash(d.LastOnlineAt))
}

func (a *App) printAccess(access []models.UserDeviceAccess) error {
	if len(access) == 0 {
		a.println("No device access.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tUSER\tROLE\tSTATUS\tUPDATED")
	for _, x := range access {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", x.DeviceID, x.UserID, x.RoleCode, x.AccessStatusCode, x.UpdatedAt)
	}
	return tw.Flush()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
