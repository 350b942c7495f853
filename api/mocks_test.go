package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/shivamGupta-25/Webster.Shivaji/email"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
	"github.com/shivamGupta-25/Webster.Shivaji/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ events.Repository = &mockCatalog{}

type mockCatalog struct {
	GetEventFunc  func(ctx context.Context, id string) (events.Event, error)
	GetEventsFunc func(ctx context.Context, fest *events.Fest, limit int32, cursor *string) (events.GetEventsResponse, error)
}

func (m *mockCatalog) GetEvent(ctx context.Context, id string) (events.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, id)
	}
	return events.Event{}, events.NewEventDoesNotExistError("no event", nil)
}

func (m *mockCatalog) GetEvents(ctx context.Context, fest *events.Fest, limit int32, cursor *string) (events.GetEventsResponse, error) {
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc(ctx, fest, limit, cursor)
	}
	return events.GetEventsResponse{}, nil
}

var _ registration.Repository = &mockRegistrationRepo{}

type mockRegistrationRepo struct {
	CreateRegistrationFunc       func(ctx context.Context, reg registration.Registration, event events.Event) error
	GetRegistrationsForEventFunc func(ctx context.Context, eventID string, limit int32, cursor *string) (registration.GetRegistrationsResponse, error)
}

func (m *mockRegistrationRepo) CreateRegistration(ctx context.Context, reg registration.Registration, event events.Event) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg, event)
	}
	return nil
}

func (m *mockRegistrationRepo) GetRegistrationsForEvent(ctx context.Context, eventID string, limit int32, cursor *string) (registration.GetRegistrationsResponse, error) {
	if m.GetRegistrationsForEventFunc != nil {
		return m.GetRegistrationsForEventFunc(ctx, eventID, limit, cursor)
	}
	return registration.GetRegistrationsResponse{}, nil
}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) (email.Result, error)
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) (email.Result, error) {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return email.Result{MessageID: "mock-message"}, nil
}

func openTeamEvent(id string, min, max int) events.Event {
	return events.Event{
		ID:                 id,
		Fest:               events.FEST_TECHELONS,
		Name:               "Mock Event",
		TeamSize:           events.Range{Min: min, Max: max},
		Schedule:           events.Schedule{Date: "2025-02-10", Time: "10:00 AM", Venue: "Auditorium"},
		RegistrationStatus: events.STATUS_OPEN,
	}
}

func catalogWith(event events.Event) *mockCatalog {
	return &mockCatalog{
		GetEventFunc: func(ctx context.Context, id string) (events.Event, error) {
			if id == event.ID {
				return event, nil
			}
			return events.Event{}, events.NewEventDoesNotExistError("no event", nil)
		},
	}
}

func newTestAPI(catalog events.Repository, regs registration.Repository, sender email.Sender) *API {
	a := NewAPI(catalog, regs, sender, noopLogger, LOCAL, "noreply@test.com", "https://example.com")
	a.now = func() time.Time { return time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC) }
	return a
}
