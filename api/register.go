package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/shivamGupta-25/Webster.Shivaji/registration"
)

// Registrant fields arrive flat; each team member is one JSON-encoded field
// (teamMember_<i>) plus its own file part (teamMember_<i>_collegeId), so the
// file payloads stay separable from the JSON metadata.
const (
	// maxRequestBytes allows the registrant's ID plus four member IDs at
	// 5 MB each, with headroom for the text fields.
	maxRequestBytes = 32 << 20
	memberFieldCap  = 16
)

type registerResponse struct {
	RegistrationToken string `json:"registrationToken"`
	EmailSent         bool   `json:"emailSent"`
	AlreadyRegistered bool   `json:"alreadyRegistered"`
	EmailError        string `json:"emailError,omitempty"`
	EmailDetails      string `json:"emailDetails,omitempty"`
}

func (a *API) postRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(maxRequestBytes); err != nil {
		a.logger.Warn("Failed to parse multipart submission", "error", err)

		writeError(w, http.StatusBadRequest, Error{
			Code:    InvalidBody,
			Message: "Request must be multipart/form-data within the size limit",
		})
		return
	}

	reg, err := submissionToRegistration(r)
	if err != nil {
		a.logger.Warn("Invalid registration submission", "error", err)

		writeError(w, http.StatusBadRequest, Error{
			Code:    InvalidBody,
			Message: err.Error(),
			Hint:    errorHint(err.Error()),
		})
		return
	}
	reg.RegisteredAt = a.now()

	event, err := registration.AttemptRegistration(ctx, reg, a.catalog, a.registrations)
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) {
			switch regErr.Reason {
			case registration.REASON_VALIDATION_FAILED:
				writeError(w, http.StatusBadRequest, Error{
					Code:    ValidationFailed,
					Message: regErr.Message,
					Field:   regErr.Field,
					Hint:    errorHint(regErr.Message),
				})
				return
			case registration.REASON_TEAM_SIZE_NOT_ALLOWED:
				writeError(w, http.StatusBadRequest, Error{
					Code:    TeamSizeNotAllowed,
					Message: regErr.Message,
				})
				return
			case registration.REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST:
				writeError(w, http.StatusNotFound, Error{
					Code:    NotFound,
					Message: "Event to register for was not found",
				})
				return
			case registration.REASON_REGISTRATION_CLOSED:
				writeError(w, http.StatusConflict, Error{
					Code:    RegistrationClosed,
					Message: regErr.Message,
				})
				return
			case registration.REASON_REGISTRATION_ALREADY_EXISTS:
				// Still a navigable outcome: the confirmation page tells the
				// user they were already signed up. No email is re-sent.
				writeJSON(w, http.StatusOK, registerResponse{
					RegistrationToken: registration.MintToken(reg.Registrant.Email, a.now()),
					EmailSent:         false,
					AlreadyRegistered: true,
				})
				return
			}
		}

		a.logger.Error("Error trying to register", "error", err)

		writeError(w, http.StatusInternalServerError, Error{
			Code:    InternalError,
			Message: "Failed to register",
		})
		return
	}

	resp := registerResponse{
		RegistrationToken: registration.MintToken(reg.Registrant.Email, a.now()),
		EmailSent:         true,
	}

	result, err := registration.SendConfirmationEmail(ctx, a.emailSender, a.fromAddress, reg, event)
	if err != nil {
		// The registration stands; only the email is reported as failed.
		a.logger.Error("Failed to send confirmation email", "error", err, "eventId", event.ID)

		resp.EmailSent = false
		resp.EmailError = "Confirmation email could not be sent"
	} else {
		resp.EmailDetails = result.MessageID
	}

	writeJSON(w, http.StatusOK, resp)
}

func submissionToRegistration(r *http.Request) (registration.Registration, error) {
	registrant := registration.PersonInfo{
		Name:         r.FormValue("name"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		RollNo:       r.FormValue("rollNo"),
		College:      registration.College(r.FormValue("college")),
		OtherCollege: r.FormValue("otherCollege"),
	}

	fileRef, err := fileRefFromForm(r.MultipartForm, "collegeId")
	if err != nil {
		return registration.Registration{}, err
	}
	registrant.CollegeID = fileRef

	members, err := teamMembersFromForm(r)
	if err != nil {
		return registration.Registration{}, err
	}

	return registration.Registration{
		ID:          uuid.New(),
		Version:     1,
		EventID:     r.FormValue("event"),
		Registrant:  registrant,
		Course:      r.FormValue("course"),
		Year:        registration.Year(r.FormValue("year")),
		Query:       r.FormValue("query"),
		TeamMembers: members,
	}, nil
}

func teamMembersFromForm(r *http.Request) ([]registration.PersonInfo, error) {
	var members []registration.PersonInfo

	for i := 0; i < memberFieldCap; i++ {
		raw := r.FormValue(fmt.Sprintf("teamMember_%d", i))
		if raw == "" {
			break
		}

		var member registration.PersonInfo
		if err := json.Unmarshal([]byte(raw), &member); err != nil {
			return nil, fmt.Errorf("team member %d is not valid JSON", i)
		}

		fileRef, err := fileRefFromForm(r.MultipartForm, fmt.Sprintf("teamMember_%d_collegeId", i))
		if err != nil {
			return nil, fmt.Errorf("team member %d: %w", i, err)
		}
		member.CollegeID = fileRef

		members = append(members, member)
	}

	return members, nil
}

// fileRefFromForm requires exactly one uploaded file under the given field
// name and reduces it to the reference shape the domain validates.
func fileRefFromForm(form *multipart.Form, field string) (registration.FileRef, error) {
	if form == nil {
		return registration.FileRef{}, fmt.Errorf("missing file %q", field)
	}

	headers := form.File[field]
	if len(headers) != 1 {
		return registration.FileRef{}, fmt.Errorf("expected exactly one file for %q, got %d", field, len(headers))
	}

	header := headers[0]
	return registration.FileRef{
		FileName:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
