package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/google/uuid"
)

const defaultEventLimit = 10

// Events lists the most recent events, limit defaults to 10.
func (a *App) Events(ctx context.Context, limit int) error {
	if !a.requireHome() {
		return errWrongScreen
	}
	if limit <= 0 {
		limit = defaultEventLimit
	}

	events, err := a.api.ListRecentEvents(ctx, limit)
	if err != nil {
		return a.report(err)
	}
	return a.printEvents(events)
}

// AllEvents lists every event the user can see.
func (a *App) AllEvents(ctx context.Context) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	events, err := a.api.ListEvents(ctx)
	if err != nil {
		return a.report(err)
	}
	return a.printEvents(events)
}

func (a *App) DeviceEvents(ctx context.Context, deviceID uuid.UUID) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	events, err := a.api.ListEventsByDevice(ctx, deviceID)
	if err != nil {
		return a.report(err)
	}
	return a.printEvents(events)
}

// ShowEvent prints one event including its response and stream details.
func (a *App) ShowEvent(ctx context.Context, id uuid.UUID) error {
	if !a.requireHome() {
		return errWrongScreen
	}

	e, err := a.api.GetEvent(ctx, id)
	if err != nil {
		return a.report(err)
	}

	a.printf("id:        %s\n", e.ID)
	a.printf("device:    %s\n", e.DeviceID)
	a.printf("when:      %s\n", e.OccurredAt)
	a.printf("event:     %s\n", label(string(e.EventTypeCode), e.EventTypeLabel))
	a.printf("response:  %s at %s by %s\n", label(e.ResponseTypeCode, e.ResponseTypeLabel),
		orDash(e.ResponseTimestamp), orDash(e.ResponderDisplayName))
	if e.StreamStatusCode != nil {
		a.printf("stream:    %s %s..%s\n", *e.StreamStatusCode, orDash(e.StreamStartedAt), orDash(e.StreamEndedAt))
	}
	if e.DurationSeconds != nil {
		a.printf("duration:  %ds\n", *e.DurationSeconds)
	}
	return nil
}

func (a *App) printEvents(events []models.Event) error {
	if len(events) == 0 {
		a.println("No events.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tDEVICE\tEVENT\tRESPONSE")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.OccurredAt, e.DeviceID, e.EventTypeCode, e.ResponseTypeCode)
	}
	return tw.Flush()
}

func label(code, text string) string {
	if text == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", text, code)
}
