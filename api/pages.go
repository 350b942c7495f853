package api

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/shivamGupta-25/Webster.Shivaji/events"
	"github.com/shivamGupta-25/Webster.Shivaji/registration"
)

//go:embed templates
var pageTemplates embed.FS

var pages = template.Must(template.ParseFS(pageTemplates, "templates/*.tmpl"))

func (a *API) homePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, "home.tmpl", nil); err != nil {
		a.logger.Error("Failed to render home page", "error", err)
	}
}

type confirmationPageData struct {
	FestName          string
	Email             string
	Event             *Event
	AlreadyRegistered bool
	EmailSent         bool
}

// confirmationPage renders behind the token gate; by the time this runs the
// token has been verified. An unknown event id falls back to generic copy
// rather than failing the page.
func (a *API) confirmationPage(w http.ResponseWriter, r *http.Request) {
	data := confirmationPageData{
		FestName:          festNameFromPath(r.URL.Path),
		AlreadyRegistered: r.URL.Query().Get("alreadyRegistered") == "true",
		EmailSent:         r.URL.Query().Get("emailSent") != "false",
	}

	// The gate has already accepted the token; decoding again just extracts
	// the email for display.
	if email, err := registration.VerifyToken(r.URL.Query().Get("token"), a.now()); err == nil {
		data.Email = email
	}

	if eventID := r.URL.Query().Get("event"); eventID != "" {
		event, err := a.catalog.GetEvent(r.Context(), eventID)
		if err == nil {
			apiEvent := eventToAPIEvent(event)
			data.Event = &apiEvent
		} else {
			a.logger.Warn("Confirmation page with unknown event id", "eventId", eventID)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, "confirmation.tmpl", data); err != nil {
		a.logger.Error("Failed to render confirmation page", "error", err)
	}
}

func festNameFromPath(path string) string {
	if strings.HasSuffix(path, string(events.FEST_TECHELONS)) {
		return "Techelons"
	}
	return "Workshop"
}
