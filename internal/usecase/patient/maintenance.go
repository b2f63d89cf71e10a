package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/patient"
	"github.com/BruksfildServices01/frontdesk/internal/models"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/confirm"
)

// ======================================================
// LIST
// ======================================================

type ListPatients struct {
	repo domain.Repository
}

func NewListPatients(repo domain.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

func (uc *ListPatients) Execute(ctx context.Context) ([]models.Patient, error) {
	return uc.repo.ListPatients(ctx)
}

// ======================================================
// DELETE ONE
// ======================================================

type DeletePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePatient(repo domain.Repository, audit *audit.Dispatcher) *DeletePatient {
	return &DeletePatient{repo: repo, audit: audit}
}

// Execute removes the patient; their appointments go with them.
func (uc *DeletePatient) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.DeletePatient(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "patient_deleted",
		Entity:   entity,
		EntityID: &id,
	})
	return nil
}

// ======================================================
// CLEAR ALL
// ======================================================

type ClearPatients struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewClearPatients(repo domain.Repository, audit *audit.Dispatcher, log zerolog.Logger) *ClearPatients {
	return &ClearPatients{repo: repo, audit: audit, log: log}
}

// Execute wipes every patient and appointment after confirmation. The
// server-side procedure is tried first; the per-table deletes run regardless.
func (uc *ClearPatients) Execute(ctx context.Context, c confirm.Confirmer) error {
	if !c.Confirm(ctx, PromptClearAll) {
		return nil
	}

	if err := uc.repo.CallBulkDeleteProcedure(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("bulk delete procedure failed, using table deletes")
	}

	if err := uc.repo.DeleteAllAppointments(ctx); err != nil {
		return err
	}
	if err := uc.repo.DeleteAllPatients(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: audit.ActorFrom(ctx),
		Action: "patients_cleared",
		Entity: entity,
	})
	return nil
}
