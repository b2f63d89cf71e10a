package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/models"
)

type Repository interface {
	// ListPatients returns every patient ordered by name ascending.
	ListPatients(ctx context.Context) ([]models.Patient, error)

	CreatePatient(ctx context.Context, p *models.Patient) error

	// DeletePatient removes one patient; the store cascades to appointments.
	DeletePatient(ctx context.Context, id uuid.UUID) error

	DeleteAllPatients(ctx context.Context) error

	// DeleteAllAppointments runs ahead of DeleteAllPatients in the bulk clear
	// fallback.
	DeleteAllAppointments(ctx context.Context) error

	// CallBulkDeleteProcedure invokes the optional server-side procedure that
	// wipes patients and appointments in one call.
	CallBulkDeleteProcedure(ctx context.Context) error
}
