package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shivamGupta-25/Webster.Shivaji/email"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
	"github.com/shivamGupta-25/Webster.Shivaji/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

type API struct {
	catalog       events.Repository
	registrations registration.Repository
	emailSender   email.Sender
	logger        *slog.Logger
	env           Environment
	fromAddress   string
	allowedOrigin string

	// now is swappable so token expiry is testable.
	now func() time.Time
}

func NewAPI(catalog events.Repository, registrations registration.Repository, emailSender email.Sender, logger *slog.Logger, env Environment, fromAddress, allowedOrigin string) *API {
	return &API{
		catalog:       catalog,
		registrations: registrations,
		emailSender:   emailSender,
		logger:        logger,
		env:           env,
		fromAddress:   fromAddress,
		allowedOrigin: allowedOrigin,
		now:           time.Now,
	}
}

// Handler assembles the mux and the middleware chain. The token gate sits
// innermost so the access log still records gated requests.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", a.homePage)
	mux.HandleFunc("GET /api/events", a.getEvents)
	mux.HandleFunc("GET /api/events/{id}", a.getEvent)
	mux.HandleFunc("GET /api/events/{id}/registrations", a.getEventRegistrations)
	mux.HandleFunc("POST /api/register", a.postRegister)
	mux.HandleFunc("GET /formsubmitted/workshop", a.confirmationPage)
	mux.HandleFunc("GET /formsubmitted/techelons", a.confirmationPage)

	return useMiddlewares(mux,
		a.tokenGateMiddleware(),
		a.loggingMiddleware(),
		a.corsMiddleware(),
	)
}
