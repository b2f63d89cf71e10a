package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/models"
)

type Repository interface {
	// -------- Read --------

	// ListAppointments returns every appointment with its patient preloaded,
	// ordered by date then time ascending.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)

	FindAppointments(ctx context.Context, match Match, limit int) ([]models.Appointment, error)

	// -------- Write --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointmentFields(ctx context.Context, id uuid.UUID, changes Changes) error

	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status Status) error

	DeleteAppointment(ctx context.Context, id uuid.UUID) error

	DeleteAllAppointments(ctx context.Context) error
}
