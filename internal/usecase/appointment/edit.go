package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
)

// ======================================================
// OPEN
// ======================================================

type OpenEdit struct {
	repo domain.Repository
}

func NewOpenEdit(repo domain.Repository) *OpenEdit {
	return &OpenEdit{repo: repo}
}

// Execute returns the form pre-filled with the stored date, time and reason.
func (uc *OpenEdit) Execute(ctx context.Context, id uuid.UUID) (domain.Changes, error) {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return domain.Changes{}, err
	}
	return domain.Changes{Date: ap.Date, Time: ap.Time, Reason: ap.Reason}, nil
}

// ======================================================
// SAVE
// ======================================================

type SaveEdit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveEdit(repo domain.Repository, audit *audit.Dispatcher) *SaveEdit {
	return &SaveEdit{repo: repo, audit: audit}
}

// Execute validates the form and sends only date, time and reason.
func (uc *SaveEdit) Execute(ctx context.Context, id uuid.UUID, in domain.Changes) error {
	changes, err := domain.ValidateChanges(in)
	if err != nil {
		return err
	}

	if err := uc.repo.UpdateAppointmentFields(ctx, id, changes); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "appointment_updated",
		Entity:   entity,
		EntityID: &id,
		Metadata: map[string]any{"date": changes.Date, "time": changes.Time},
	})
	return nil
}
