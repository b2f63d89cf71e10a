package appointment

import "github.com/BruksfildServices01/frontdesk/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled flips Pending and Completed.
func (s Status) Toggled() Status {
	if s == StatusPending {
		return StatusCompleted
	}
	return StatusPending
}

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus accepts an empty value as the initial status.
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return InitialStatus(), nil
	}
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.ErrValidation("Status must be Pending or Completed")
	}
	return s, nil
}
