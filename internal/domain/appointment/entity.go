package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/models"
)

// Row is an appointment with its joined patient summary, as the list view
// consumes it.
type Row struct {
	ID        uuid.UUID
	PatientID uuid.UUID

	PatientName  string
	PatientEmail string
	PatientPhone string

	Date   string
	Time   string
	Reason string
	Status Status
}

// Changes are the only fields the edit form may send.
type Changes struct {
	Date   string
	Time   string
	Reason string
}

// Match selects appointments for the booking conflict check.
type Match struct {
	PatientID uuid.UUID
	Date      string
	Time      string
}

func RowFromModel(ap models.Appointment) Row {
	r := Row{
		ID:        ap.ID,
		PatientID: ap.PatientID,
		Date:      ap.Date,
		Time:      ap.Time,
		Reason:    ap.Reason,
		Status:    Status(ap.Status),
	}
	if ap.Patient != nil {
		r.PatientName = ap.Patient.Name
		r.PatientEmail = ap.Patient.Email
		r.PatientPhone = ap.Patient.Phone
	}
	return r
}

func RowsFromModels(aps []models.Appointment) []Row {
	out := make([]Row, 0, len(aps))
	for _, ap := range aps {
		out = append(out, RowFromModel(ap))
	}
	return out
}
