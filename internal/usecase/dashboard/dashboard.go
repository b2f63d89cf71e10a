// Package dashboard fetches the collections every view renders from. It is
// loaded with every sign in and is the refresh capability mutations call
// afterwards; nothing is cached.
package dashboard

import (
	"context"

	"github.com/rs/zerolog"

	apdomain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/models"
)

type AppointmentSource interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
}

type PatientSource interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
}

type Snapshot struct {
	Patients     []models.Patient
	Appointments []apdomain.Row

	Pending   int
	Completed int
}

type Dashboard struct {
	appointments AppointmentSource
	patients     PatientSource
	log          zerolog.Logger
}

func New(appointments AppointmentSource, patients PatientSource, log zerolog.Logger) *Dashboard {
	return &Dashboard{appointments: appointments, patients: patients, log: log}
}

func (d *Dashboard) Appointments(ctx context.Context) ([]apdomain.Row, error) {
	aps, err := d.appointments.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return apdomain.RowsFromModels(aps), nil
}

func (d *Dashboard) Patients(ctx context.Context) ([]models.Patient, error) {
	return d.patients.ListPatients(ctx)
}

// Snapshot fetches both collections. A failed fetch leaves that collection
// empty rather than failing the whole dashboard.
func (d *Dashboard) Snapshot(ctx context.Context) Snapshot {
	var s Snapshot

	patients, err := d.Patients(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("fetch patients failed")
	}
	s.Patients = patients
	if s.Patients == nil {
		s.Patients = []models.Patient{}
	}

	rows, err := d.Appointments(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("fetch appointments failed")
	}
	s.Appointments = rows
	if s.Appointments == nil {
		s.Appointments = []apdomain.Row{}
	}

	for _, r := range s.Appointments {
		switch r.Status {
		case apdomain.StatusPending:
			s.Pending++
		case apdomain.StatusCompleted:
			s.Completed++
		}
	}
	return s
}
