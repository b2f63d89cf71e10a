package appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/models"
	"github.com/BruksfildServices01/frontdesk/internal/timezone"
)

func seeded() *fakeRepo {
	repo := newFakeRepo()
	bob := repo.addPatient("Bob")
	ann := repo.addPatient("Ann")
	repo.add(models.Appointment{PatientID: bob, Date: "2024-01-05", Time: "10:00", Reason: "Checkup", Status: "Pending"})
	repo.add(models.Appointment{PatientID: ann, Date: "2024-01-05", Time: "09:00", Reason: "Flu, cough", Status: "Completed"})
	return repo
}

func TestListViewDerivesFromFreshFetch(t *testing.T) {
	ctx := context.Background()
	repo := seeded()
	view := NewListView(repoSource{repo})

	page, err := view.Execute(ctx, domain.DefaultViewParams())
	require.NoError(t, err)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "Ann", page.Rows[0].PatientName)

	repo.add(models.Appointment{PatientID: repo.addPatient("Cid"), Date: "2023-12-31", Time: "08:00", Reason: "Rash", Status: "Pending"})

	page, err = view.Execute(ctx, domain.DefaultViewParams())
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "Cid", page.Rows[0].PatientName)
}

func TestListViewRejectsUnknownStatus(t *testing.T) {
	params := domain.DefaultViewParams()
	params.Status = "Cancelled"

	_, err := NewListView(repoSource{seeded()}).Execute(context.Background(), params)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestExportAppointments(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
	arch := &fakeArchiver{err: errors.New("bucket missing")}
	uc := NewExportAppointments(NewListView(repoSource{seeded()}), arch, timezone.FixedClock(at), nil, zerolog.Nop())

	params := domain.DefaultViewParams()
	params.PageSize = 10
	params.Page = 5

	out, err := uc.Execute(ctx, params)
	require.NoError(t, err, "archive failures do not fail the export")

	assert.Equal(t, "appointments_2024-03-09.csv", out.FileName)
	assert.Equal(t, 2, out.Rows)
	lines := strings.Split(string(out.Body), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Patient Name,Email,Phone,Date,Time,Reason,Status", lines[0])
	assert.Equal(t, `Ann,,,2024-01-05,09:00,"Flu, cough",Completed`, lines[1])
	assert.Equal(t, []string{"exports/appointments_2024-03-09_1709996400.csv"}, arch.keys)
}

func TestExportNothingToExport(t *testing.T) {
	params := domain.DefaultViewParams()
	params.Search = "nobody"
	arch := &fakeArchiver{}
	uc := NewExportAppointments(NewListView(repoSource{seeded()}), arch, timezone.FixedClock(time.Now()), nil, zerolog.Nop())

	_, err := uc.Execute(context.Background(), params)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNothingToExport))
	assert.Empty(t, arch.keys)
}
