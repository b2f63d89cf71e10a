package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/rowlock"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/confirm"
)

// ======================================================
// DELETE ONE
// ======================================================

type DeleteAppointment struct {
	repo  domain.Repository
	locks *rowlock.Locker
	audit *audit.Dispatcher
}

func NewDeleteAppointment(repo domain.Repository, locks *rowlock.Locker, audit *audit.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, locks: locks, audit: audit}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uuid.UUID, c confirm.Confirmer) error {
	if !c.Confirm(ctx, PromptDelete) {
		return nil
	}

	release, err := uc.locks.Acquire(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "appointment_deleted",
		Entity:   entity,
		EntityID: &id,
	})
	return nil
}

// ======================================================
// CLEAR ALL
// ======================================================

type ClearAppointments struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewClearAppointments(repo domain.Repository, audit *audit.Dispatcher) *ClearAppointments {
	return &ClearAppointments{repo: repo, audit: audit}
}

func (uc *ClearAppointments) Execute(ctx context.Context, c confirm.Confirmer) error {
	if !c.Confirm(ctx, PromptClearAll) {
		return nil
	}

	if err := uc.repo.DeleteAllAppointments(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: audit.ActorFrom(ctx),
		Action: "appointments_cleared",
		Entity: entity,
	})
	return nil
}
