package appointment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/validators"
)

const MinReasonLen = 3

// Booking is the submitted booking form.
type Booking struct {
	PatientID uuid.UUID
	Date      string
	Time      string
	Reason    string
	Status    string
}

// ValidateBooking checks the booking form in submission order and returns
// the initial status to store.
func ValidateBooking(b Booking) (Status, error) {
	if b.PatientID == uuid.Nil {
		return "", httperr.ErrValidation("Select a patient")
	}
	if b.Date == "" || !validators.IsISODate(b.Date) {
		return "", httperr.ErrValidation("Choose a valid date")
	}
	if b.Time == "" || !validators.IsClock24(b.Time) {
		return "", httperr.ErrValidation("Choose a valid time")
	}
	if validators.TrimmedLen(b.Reason) < MinReasonLen {
		return "", httperr.ErrValidation("Please include a brief reason")
	}
	return ParseStatus(b.Status)
}

// ValidateChanges checks the edit form and returns the changes to send, with
// the reason trimmed.
func ValidateChanges(ch Changes) (Changes, error) {
	if ch.Date == "" {
		return Changes{}, httperr.ErrValidation("Date is required")
	}
	if !validators.IsISODate(ch.Date) {
		return Changes{}, httperr.ErrValidation("Date must be YYYY-MM-DD")
	}
	if !validators.IsClock24(ch.Time) {
		return Changes{}, httperr.ErrValidation("Time must be HH:MM (24h)")
	}
	if validators.TrimmedLen(ch.Reason) < MinReasonLen {
		return Changes{}, httperr.ErrValidation("Reason must be at least 3 characters")
	}
	return Changes{
		Date:   ch.Date,
		Time:   ch.Time,
		Reason: strings.TrimSpace(ch.Reason),
	}, nil
}
