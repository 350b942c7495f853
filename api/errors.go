package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type ErrorCode string

const (
	InternalError      ErrorCode = "InternalError"
	NotFound           ErrorCode = "NotFound"
	InvalidBody        ErrorCode = "InvalidBody"
	ValidationFailed   ErrorCode = "ValidationFailed"
	TeamSizeNotAllowed ErrorCode = "TeamSizeNotAllowed"
	RegistrationClosed ErrorCode = "RegistrationClosed"
	LimitOutOfBounds   ErrorCode = "LimitOutOfBounds"
	InvalidCursor      ErrorCode = "InvalidCursor"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
	Hint    string    `json:"hint,omitempty"`
}

// errorHint adds a contextual nudge based on crude keyword matching of the
// user-facing message. Errors are not finely typed past their code, so this
// is intentionally heuristic.
func errorHint(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "email"):
		return "Double-check the email address you entered"
	case strings.Contains(lower, "file") || strings.Contains(lower, "id"):
		return "Check the uploaded college ID: JPEG, PNG or PDF, 5MB max"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, e Error) {
	writeJSON(w, status, e)
}
