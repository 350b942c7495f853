package registration

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type College string

const (
	COLLEGE_SHIVAJI College = "Shivaji College"
	COLLEGE_OTHER   College = "Other"
)

type Year string

const (
	YEAR_FIRST  Year = "1st"
	YEAR_SECOND Year = "2nd"
	YEAR_THIRD  Year = "3rd"
)

// MaxIDFileSize caps the uploaded college ID at 5 MB.
const MaxIDFileSize = 5 << 20

// FileRef describes an uploaded identity document. The bytes themselves are
// handled by the transport layer; the domain only checks shape.
type FileRef struct {
	FileName    string `json:"fileName" validate:"required"`
	Size        int64  `json:"size" validate:"gt=0,lte=5242880"`
	ContentType string `json:"contentType" validate:"oneof=image/jpeg image/png application/pdf"`
}

// PersonInfo is the shared person schema: the registrant and every team
// member are validated against the exact same rules.
type PersonInfo struct {
	Name         string  `json:"name" validate:"required,min=2,max=50"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required,inmobile"`
	RollNo       string  `json:"rollNo" validate:"required,min=2,max=20"`
	College      College `json:"college" validate:"required,oneof='Shivaji College' 'Other'"`
	OtherCollege string  `json:"otherCollege" validate:"required_if=College Other,omitempty,min=2,max=100"`
	CollegeID    FileRef `json:"collegeId"`
}

// Indian mobile numbers: 10 digits, leading digit 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

var personValidator = newPersonValidator()

func newPersonValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("failed to register inmobile validation")
	}
	return v
}

// Normalize clears state that is only meaningful conditionally, so that
// re-validation after edits yields stable results. OtherCollege only exists
// while College is "Other".
func (p *PersonInfo) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.RollNo = strings.TrimSpace(p.RollNo)
	if p.College != COLLEGE_OTHER {
		p.OtherCollege = ""
	} else {
		p.OtherCollege = strings.TrimSpace(p.OtherCollege)
	}
}

// Validate normalizes and then checks the shared schema, returning a
// REASON_VALIDATION_FAILED error carrying the first failing field and its
// user-facing message.
func (p *PersonInfo) Validate() error {
	p.Normalize()

	err := personValidator.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return NewValidationFailedError(first.Field(), personFieldMessage(first))
	}
	return NewValidationFailedError("", err.Error())
}

func personFieldMessage(fe validator.FieldError) string {
	if strings.Contains(fe.StructNamespace(), "CollegeID") {
		switch fe.Field() {
		case "FileName":
			return "College ID file is required"
		case "Size":
			return "College ID file must be 5MB or smaller"
		case "ContentType":
			return "College ID file must be a JPEG, PNG or PDF"
		}
	}

	switch fe.Field() {
	case "Name":
		return "Name must be between 2 and 50 characters"
	case "Email":
		return "Enter a valid email address"
	case "Phone":
		return "Phone number must be 10 digits starting with 6, 7, 8 or 9"
	case "RollNo":
		return "Roll number must be between 2 and 20 characters"
	case "College":
		return "Select your college"
	case "OtherCollege":
		if fe.Tag() == "required_if" {
			return "Enter your college name"
		}
		return "College name must be between 2 and 100 characters"
	default:
		return "Invalid value for " + fe.Field()
	}
}
