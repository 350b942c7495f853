package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
)

type Repository interface {
	CreateRegistration(ctx context.Context, registration Registration, event events.Event) error
	GetRegistrationsForEvent(ctx context.Context, eventID string, limit int32, cursor *string) (GetRegistrationsResponse, error)
}

type GetRegistrationsResponse struct {
	Data        []Registration
	Cursor      *string
	HasNextPage bool
}

type Registration struct {
	ID           uuid.UUID
	Version      int
	EventID      string
	RegisteredAt time.Time
	Registrant   PersonInfo
	Course       string `validate:"required,min=2,max=50"`
	Year         Year   `validate:"required,oneof=1st 2nd 3rd"`
	Query        string `validate:"omitempty,max=500"`
	TeamMembers  []PersonInfo
}

// AttemptRegistration runs the whole submission pipeline short of email:
// catalog lookup, open check, team-size alignment through the TeamForm
// machine, shared-schema validation of registrant and members, and the
// conditional write. Nothing is persisted on any failure.
func AttemptRegistration(ctx context.Context, reg Registration, eventRepo events.Repository, registrationRepo Repository) (events.Event, error) {
	event, err := eventRepo.GetEvent(ctx, reg.EventID)
	if err != nil {
		var eventErr *events.Error
		if errors.As(err, &eventErr) && eventErr.Reason == events.REASON_EVENT_DOES_NOT_EXIST {
			return events.Event{}, NewAssociatedEventDoesNotExistError(fmt.Sprintf("Event does not exist with ID %q", reg.EventID), err)
		}
		return events.Event{}, NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", reg.EventID), err)
	}

	if event.RegistrationStatus != events.STATUS_OPEN {
		return events.Event{}, NewRegistrationClosedError(fmt.Sprintf("Registration for %q is %s", event.Name, event.RegistrationStatus))
	}

	form := NewTeamForm()
	form.SelectEvent(event)

	// Align the form's slot count with what was actually submitted. The
	// machine clamps at the event's bounds, so a mismatch after alignment
	// means the submission is outside them.
	for form.MemberCount() > len(reg.TeamMembers) {
		if !form.RemoveMember() {
			break
		}
	}
	for form.MemberCount() < len(reg.TeamMembers) {
		if !form.AddMember() {
			break
		}
	}
	if form.MemberCount() != len(reg.TeamMembers) {
		minMembers, maxMembers := event.TeamSize.MemberBounds()
		return events.Event{}, NewTeamSizeNotAllowedError(len(reg.TeamMembers), minMembers, maxMembers)
	}

	if err := reg.validate(); err != nil {
		return events.Event{}, err
	}

	for i, member := range reg.TeamMembers {
		if err := form.SetMember(i, member); err != nil {
			return events.Event{}, NewValidationFailedError("", err.Error())
		}
	}
	if err := form.Validate(); err != nil {
		return events.Event{}, err
	}
	reg.TeamMembers = form.Members()

	err = registrationRepo.CreateRegistration(ctx, reg, event)
	if err != nil {
		return events.Event{}, err
	}

	return event, nil
}

// validate covers the registrant and the registration-only fields. Team
// members are the TeamForm's responsibility. TeamMembers carries no dive
// tag, so the struct walk stops at the registrant.
func (r *Registration) validate() error {
	r.Registrant.Normalize()

	err := personValidator.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return NewValidationFailedError(first.Field(), registrationFieldMessage(first))
	}
	return NewValidationFailedError("", err.Error())
}

func registrationFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Course":
		return "Course must be between 2 and 50 characters"
	case "Year":
		return "Select your year of study"
	case "Query":
		return "Query must be 500 characters or fewer"
	default:
		return personFieldMessage(fe)
	}
}
