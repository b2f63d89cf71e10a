package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, lookup(err, appointmentNotFound)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindAppointments(
	ctx context.Context,
	match domain.Match,
	limit int,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("patient_id = ? AND date = ? AND time = ?", match.PatientID, match.Date, match.Time).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, translate(err)
	}
	return aps, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) UpdateAppointmentFields(
	ctx context.Context,
	id uuid.UUID,
	changes domain.Changes,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"date":   changes.Date,
			"time":   changes.Time,
			"reason": changes.Reason,
		})
	return affected(res, appointmentNotFound)
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status))
	return affected(res, appointmentNotFound)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	return affected(res, appointmentNotFound)
}

func (r *AppointmentGormRepository) DeleteAllAppointments(ctx context.Context) error {
	return translate(r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Appointment{}).Error)
}

// ===== Compile-time check =====
var _ domain.Repository = (*AppointmentGormRepository)(nil)
