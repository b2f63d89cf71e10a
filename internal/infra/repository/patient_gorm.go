package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/patient"
	"github.com/BruksfildServices01/frontdesk/internal/models"
)

// BulkDeleteProcedure is installed by the migrate command. Deployments may
// drop it; callers treat its absence as non-fatal.
const BulkDeleteProcedure = "delete_all_patients_and_appointments"

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (r *PatientGormRepository) CreatePatient(ctx context.Context, p *models.Patient) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PatientGormRepository) DeletePatient(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id)
	return affected(res, patientNotFound)
}

func (r *PatientGormRepository) DeleteAllPatients(ctx context.Context) error {
	return translate(r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Patient{}).Error)
}

func (r *PatientGormRepository) DeleteAllAppointments(ctx context.Context) error {
	return translate(r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Appointment{}).Error)
}

func (r *PatientGormRepository) CallBulkDeleteProcedure(ctx context.Context) error {
	return translate(r.db.WithContext(ctx).
		Exec("SELECT " + BulkDeleteProcedure + "()").Error)
}

var _ domain.Repository = (*PatientGormRepository)(nil)
