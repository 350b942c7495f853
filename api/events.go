package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
	"github.com/shivamGupta-25/Webster.Shivaji/registration"
)

type Event struct {
	ID                 string        `json:"id"`
	Fest               string        `json:"fest"`
	Name               string        `json:"name"`
	Tagline            string        `json:"tagline,omitempty"`
	Description        string        `json:"description,omitempty"`
	TeamSize           Range         `json:"teamSize"`
	Schedule           Schedule      `json:"schedule"`
	Prizes             []string      `json:"prizes,omitempty"`
	WhatsAppGroupLink  string        `json:"whatsappGroupLink,omitempty"`
	RegistrationStatus string        `json:"registrationStatus"`
	Coordinators       []Coordinator `json:"coordinators,omitempty"`
}

type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Schedule struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Venue string `json:"venue"`
}

type Coordinator struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type GetEventsResponse struct {
	Data        []Event `json:"data"`
	Cursor      *string `json:"cursor,omitempty"`
	HasNextPage bool    `json:"hasNextPage"`
}

func (a *API) getEvents(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		userLimit, err := strconv.Atoi(rawLimit)
		if err != nil || userLimit < 1 || userLimit > 50 {
			writeError(w, http.StatusBadRequest, Error{
				Code:    LimitOutOfBounds,
				Message: "Limit must be between 1 and 50",
			})
			return
		}
		limit = userLimit
	}

	var fest *events.Fest
	if rawFest := r.URL.Query().Get("fest"); rawFest != "" {
		f := events.Fest(rawFest)
		fest = &f
	}

	var cursor *string
	if rawCursor := r.URL.Query().Get("cursor"); rawCursor != "" {
		cursor = &rawCursor
	}

	result, err := a.catalog.GetEvents(r.Context(), fest, int32(limit), cursor)
	if err != nil {
		a.logger.Error("Failed to list events from the catalog", "error", err)

		var eventErr *events.Error
		if errors.As(err, &eventErr) && eventErr.Reason == events.REASON_INVALID_CURSOR {
			writeError(w, http.StatusBadRequest, Error{
				Code:    InvalidCursor,
				Message: "Passed in cursor is invalid",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Failed to list events",
		})
		return
	}

	resp := GetEventsResponse{
		Data:        make([]Event, 0, len(result.Data)),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}
	for _, e := range result.Data {
		resp.Data = append(resp.Data, eventToAPIEvent(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := a.catalog.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		var eventErr *events.Error
		if errors.As(err, &eventErr) && eventErr.Reason == events.REASON_EVENT_DOES_NOT_EXIST {
			writeError(w, http.StatusNotFound, Error{
				Code:    NotFound,
				Message: "Event does not exist",
			})
			return
		}

		a.logger.Error("Failed to fetch an event", "error", err)

		writeError(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Failed to get event",
		})
		return
	}

	writeJSON(w, http.StatusOK, eventToAPIEvent(event))
}

type Registration struct {
	ID           uuid.UUID `json:"id"`
	EventID      string    `json:"eventId"`
	RegisteredAt time.Time `json:"registeredAt"`
	Registrant   Person    `json:"registrant"`
	Course       string    `json:"course"`
	Year         string    `json:"year"`
	Query        string    `json:"query,omitempty"`
	TeamMembers  []Person  `json:"teamMembers,omitempty"`
}

type Person struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	RollNo       string `json:"rollNo"`
	College      string `json:"college"`
	OtherCollege string `json:"otherCollege,omitempty"`
	IDFileName   string `json:"idFileName"`
}

type GetRegistrationsResponse struct {
	Data        []Registration `json:"data"`
	Cursor      *string        `json:"cursor,omitempty"`
	HasNextPage bool           `json:"hasNextPage"`
}

func (a *API) getEventRegistrations(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		userLimit, err := strconv.Atoi(rawLimit)
		if err != nil || userLimit < 1 || userLimit > 50 {
			writeError(w, http.StatusBadRequest, Error{
				Code:    LimitOutOfBounds,
				Message: "Limit must be between 1 and 50",
			})
			return
		}
		limit = userLimit
	}

	var cursor *string
	if rawCursor := r.URL.Query().Get("cursor"); rawCursor != "" {
		cursor = &rawCursor
	}

	eventID := r.PathValue("id")
	result, err := a.registrations.GetRegistrationsForEvent(r.Context(), eventID, int32(limit), cursor)
	if err != nil {
		a.logger.Error("Failed to get registrations for event", "error", err, "eventId", eventID)

		var regErr *registration.Error
		if errors.As(err, &regErr) && regErr.Reason == registration.REASON_INVALID_CURSOR {
			writeError(w, http.StatusBadRequest, Error{
				Code:    InvalidCursor,
				Message: "Cursor is invalid",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Failed to get registrations",
		})
		return
	}

	resp := GetRegistrationsResponse{
		Data:        make([]Registration, 0, len(result.Data)),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}
	for _, reg := range result.Data {
		resp.Data = append(resp.Data, registrationToAPIRegistration(reg))
	}
	writeJSON(w, http.StatusOK, resp)
}

func eventToAPIEvent(event events.Event) Event {
	apiEvent := Event{
		ID:          event.ID,
		Fest:        string(event.Fest),
		Name:        event.Name,
		Tagline:     event.Tagline,
		Description: event.Description,
		TeamSize: Range{
			Min: event.TeamSize.Min,
			Max: event.TeamSize.Max,
		},
		Schedule: Schedule{
			Date:  event.Schedule.Date,
			Time:  event.Schedule.Time,
			Venue: event.Schedule.Venue,
		},
		Prizes:             event.Prizes,
		WhatsAppGroupLink:  event.WhatsAppGroupLink,
		RegistrationStatus: string(event.RegistrationStatus),
	}
	for _, c := range event.Coordinators {
		apiEvent.Coordinators = append(apiEvent.Coordinators, Coordinator{Name: c.Name, Phone: c.Phone})
	}
	return apiEvent
}

func registrationToAPIRegistration(reg registration.Registration) Registration {
	apiReg := Registration{
		ID:           reg.ID,
		EventID:      reg.EventID,
		RegisteredAt: reg.RegisteredAt,
		Registrant:   personToAPIPerson(reg.Registrant),
		Course:       reg.Course,
		Year:         string(reg.Year),
		Query:        reg.Query,
	}
	for _, m := range reg.TeamMembers {
		apiReg.TeamMembers = append(apiReg.TeamMembers, personToAPIPerson(m))
	}
	return apiReg
}

func personToAPIPerson(p registration.PersonInfo) Person {
	return Person{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		RollNo:       p.RollNo,
		College:      string(p.College),
		OtherCollege: p.OtherCollege,
		IDFileName:   p.CollegeID.FileName,
	}
}
