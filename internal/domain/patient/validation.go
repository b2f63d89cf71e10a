package patient

import (
	"strings"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/validators"
)

const (
	MinNameLen     = 2
	MinPhoneDigits = 7
)

// Intake is the submitted patient registration form.
type Intake struct {
	Name  string
	Email string
	Phone string
}

// ValidateIntake checks the form in submission order.
func ValidateIntake(in Intake) error {
	if validators.TrimmedLen(in.Name) < MinNameLen {
		return httperr.ErrValidation("Name is required (min 2 chars)")
	}
	if !validators.IsEmail(in.Email) {
		return httperr.ErrValidation("Enter a valid email")
	}
	if validators.PhoneDigits(in.Phone) < MinPhoneDigits {
		return httperr.ErrValidation("Enter a valid phone (min 7 digits)")
	}
	return nil
}

// Normalize trims the name. Email and phone are stored as typed.
func (in Intake) Normalize() Intake {
	in.Name = strings.TrimSpace(in.Name)
	return in
}
