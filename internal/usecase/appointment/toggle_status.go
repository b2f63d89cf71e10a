package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/rowlock"
)

type ToggleStatus struct {
	repo  domain.Repository
	locks *rowlock.Locker
	audit *audit.Dispatcher
}

func NewToggleStatus(repo domain.Repository, locks *rowlock.Locker, audit *audit.Dispatcher) *ToggleStatus {
	return &ToggleStatus{repo: repo, locks: locks, audit: audit}
}

// Execute flips Pending and Completed. The row reads busy until the write
// returns.
func (uc *ToggleStatus) Execute(ctx context.Context, id uuid.UUID) error {
	release, err := uc.locks.Acquire(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	from := domain.Status(ap.Status)
	to := from.Toggled()
	if err := uc.repo.UpdateAppointmentStatus(ctx, id, to); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "appointment_status_toggled",
		Entity:   entity,
		EntityID: &id,
		Metadata: map[string]any{"from": from, "to": to},
	})
	return nil
}
