package patient

import (
	"context"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/patient"
	"github.com/BruksfildServices01/frontdesk/internal/models"
)

// Store failure fallbacks, shown when the store gives no message.
const (
	FallbackRegister = "Failed to save patient"
	FallbackDelete   = "Failed to delete patient"
	FallbackClear    = "Failed to clear patients"
	FallbackLoad     = "Failed to load patients"
)

const PromptClearAll = "Clear ALL patients? This will remove related appointments."

const entity = "patient"

type RegisterPatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterPatient(repo domain.Repository, audit *audit.Dispatcher) *RegisterPatient {
	return &RegisterPatient{repo: repo, audit: audit}
}

// Execute validates the intake form and inserts the patient. Email
// uniqueness is left to the store.
func (uc *RegisterPatient) Execute(ctx context.Context, in domain.Intake) error {
	if err := domain.ValidateIntake(in); err != nil {
		return err
	}
	in = in.Normalize()

	p := &models.Patient{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := uc.repo.CreatePatient(ctx, p); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "patient_registered",
		Entity:   entity,
		EntityID: &p.ID,
	})
	return nil
}
