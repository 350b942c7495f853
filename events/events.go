package events

import (
	"context"
)

// Fest identifies which of the two festival tracks an event belongs to.
type Fest string

const (
	FEST_WORKSHOP  Fest = "workshop"
	FEST_TECHELONS Fest = "techelons"
)

// RegistrationStatus is the catalog-owned switch for whether an event is
// currently accepting submissions.
type RegistrationStatus string

const (
	STATUS_OPEN        RegistrationStatus = "open"
	STATUS_COMING_SOON RegistrationStatus = "coming-soon"
	STATUS_CLOSED      RegistrationStatus = "closed"
)

type Event struct {
	ID                 string
	Fest               Fest
	Name               string
	Tagline            string
	Description        string
	TeamSize           Range
	Schedule           Schedule
	Prizes             []string
	WhatsAppGroupLink  string
	RegistrationStatus RegistrationStatus
	Coordinators       []Coordinator
}

// Range bounds the total team size, registrant included.
// Invariant: Min <= Max. Max == 1 means a solo event.
type Range struct {
	Min int
	Max int
}

// MemberBounds translates total team size into how many team members beyond
// the registrant a submission may carry: [max(0, Min-1), Max-1].
func (r Range) MemberBounds() (min, max int) {
	min = r.Min - 1
	if min < 0 {
		min = 0
	}
	return min, r.Max - 1
}

// Solo reports whether the event has no team-member section at all.
func (r Range) Solo() bool {
	return r.Max <= 1
}

type Schedule struct {
	Date  string
	Time  string
	Venue string
}

type Coordinator struct {
	Name  string
	Phone string
}

type GetEventsResponse struct {
	Data        []Event
	Cursor      *string
	HasNextPage bool
}

type Repository interface {
	GetEvent(ctx context.Context, id string) (Event, error)
	GetEvents(ctx context.Context, fest *Fest, limit int32, cursor *string) (GetEventsResponse, error)
}
