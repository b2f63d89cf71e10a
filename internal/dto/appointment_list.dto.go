package dto

import (
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
)

// BusyFunc reports whether a row currently has a write in flight.
type BusyFunc func(id uuid.UUID) bool

type AppointmentRowDTO struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"patient_email"`
	Phone       string    `json:"patient_phone"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	TimeDisplay string    `json:"time_display"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	Busy        bool      `json:"busy"`
}

type AppointmentPageDTO struct {
	Rows       []AppointmentRowDTO `json:"rows"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"total_pages"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Sort       string              `json:"sort"`
}

func AppointmentRow(r domain.Row, busy bool) AppointmentRowDTO {
	return AppointmentRowDTO{
		ID:          r.ID,
		PatientID:   r.PatientID,
		DisplayName: domain.DisplayName(r.PatientName),
		Email:       r.PatientEmail,
		Phone:       r.PatientPhone,
		Date:        r.Date,
		Time:        r.Time,
		TimeDisplay: domain.FormatTime12h(r.Time),
		Reason:      r.Reason,
		Status:      string(r.Status),
		Busy:        busy,
	}
}

func AppointmentPage(p domain.Page, busy BusyFunc) AppointmentPageDTO {
	rows := make([]AppointmentRowDTO, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, AppointmentRow(r, busy != nil && busy(r.ID)))
	}
	return AppointmentPageDTO{
		Rows:       rows,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Sort:       string(p.Sort),
	}
}
