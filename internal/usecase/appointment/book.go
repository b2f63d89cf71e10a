package appointment

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/models"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/confirm"
)

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the form, asks c when the patient already holds the slot,
// and inserts. A declined prompt returns nil without writing.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in domain.Booking,
	c confirm.Confirmer,
) error {

	status, err := domain.ValidateBooking(in)
	if err != nil {
		return err
	}

	// --------------------------------------------------
	// Conflict advisory
	// --------------------------------------------------
	existing, err := uc.repo.FindAppointments(ctx, domain.Match{
		PatientID: in.PatientID,
		Date:      in.Date,
		Time:      in.Time,
	}, 1)
	if err != nil {
		uc.log.Warn().Err(err).Msg("conflict check failed, booking anyway")
	} else if len(existing) > 0 && !c.Confirm(ctx, PromptConflict) {
		return nil
	}

	// --------------------------------------------------
	// Insert
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID: in.PatientID,
		Date:      in.Date,
		Time:      in.Time,
		Reason:    strings.TrimSpace(in.Reason),
		Status:    string(status),
	}
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "appointment_booked",
		Entity:   entity,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"patient_id": ap.PatientID,
			"date":       ap.Date,
			"time":       ap.Time,
			"conflict":   len(existing) > 0,
		},
	})

	return nil
}
