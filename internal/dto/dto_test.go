package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
)

func TestAppointmentPageMarksBusyRows(t *testing.T) {
	busyID := uuid.New()
	page := domain.Page{
		Rows: []domain.Row{
			{ID: busyID, PatientName: "Bob", Time: "14:05", Status: domain.StatusPending},
			{ID: uuid.New(), PatientName: "", Time: "00:00", Status: domain.StatusCompleted},
		},
		Total: 2, TotalPages: 1, Page: 1, PageSize: 10, Sort: domain.SortDateAsc,
	}

	got := AppointmentPage(page, func(id uuid.UUID) bool { return id == busyID })

	assert.Len(t, got.Rows, 2)
	assert.True(t, got.Rows[0].Busy)
	assert.Equal(t, "02:05 PM", got.Rows[0].TimeDisplay)
	assert.False(t, got.Rows[1].Busy)
	assert.Equal(t, "-", got.Rows[1].DisplayName)
	assert.Equal(t, "12:00 AM", got.Rows[1].TimeDisplay)
	assert.Equal(t, "dateAsc", got.Sort)
}

func TestAppointmentPageNilBusy(t *testing.T) {
	got := AppointmentPage(domain.Page{}, nil)
	assert.NotNil(t, got.Rows)
	assert.Empty(t, got.Rows)
}
