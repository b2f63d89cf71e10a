package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/frontdesk/internal/models"
)

type PatientDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

func Patient(p models.Patient) PatientDTO {
	return PatientDTO{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone}
}

func Patients(ps []models.Patient) []PatientDTO {
	out := make([]PatientDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, Patient(p))
	}
	return out
}

// Requests

type CreatePatientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookAppointmentRequest struct {
	PatientID       string `json:"patient_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	ConfirmConflict *bool  `json:"confirm_conflict"`
}

type EditAppointmentRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
