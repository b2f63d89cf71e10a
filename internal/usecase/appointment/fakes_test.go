package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/infra/kv"
	"github.com/BruksfildServices01/frontdesk/internal/models"
	"github.com/BruksfildServices01/frontdesk/internal/rowlock"
)

// fakeRepo is an in-memory appointment store.
type fakeRepo struct {
	mu       sync.Mutex
	items    map[uuid.UUID]models.Appointment
	patients map[uuid.UUID]*models.Patient

	findErr   error
	createErr error
	updates   []domain.Changes

	// blockUpdate, when set, is received from before a status update lands.
	blockUpdate chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:    map[uuid.UUID]models.Appointment{},
		patients: map[uuid.UUID]*models.Patient{},
	}
}

func (f *fakeRepo) addPatient(name string) uuid.UUID {
	id := uuid.New()
	f.patients[id] = &models.Patient{ID: id, Name: name}
	return id
}

func (f *fakeRepo) add(ap models.Appointment) uuid.UUID {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	f.items[ap.ID] = ap
	return ap.ID
}

func (f *fakeRepo) ListAppointments(context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, 0, len(f.items))
	for _, ap := range f.items {
		ap.Patient = f.patients[ap.PatientID]
		out = append(out, ap)
	}
	return out, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.items[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (f *fakeRepo) FindAppointments(_ context.Context, m domain.Match, limit int) ([]models.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.items {
		if ap.PatientID == m.PatientID && ap.Date == m.Date && ap.Time == m.Time {
			out = append(out, ap)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.patients[ap.PatientID]; !ok {
		return httperr.ErrStore("Selected patient does not exist", nil)
	}
	ap.ID = uuid.New()
	f.items[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) UpdateAppointmentFields(_ context.Context, id uuid.UUID, ch domain.Changes) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.items[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	f.updates = append(f.updates, ch)
	ap.Date, ap.Time, ap.Reason = ch.Date, ch.Time, ch.Reason
	f.items[id] = ap
	return nil
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, id uuid.UUID, s domain.Status) error {
	if f.blockUpdate != nil {
		<-f.blockUpdate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.items[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	ap.Status = string(s)
	f.items[id] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) DeleteAllAppointments(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = map[uuid.UUID]models.Appointment{}
	return nil
}

// repoSource adapts fakeRepo to Refresher the way the dashboard does.
type repoSource struct{ repo domain.Repository }

func (s repoSource) Appointments(ctx context.Context) ([]domain.Row, error) {
	aps, err := s.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RowsFromModels(aps), nil
}

type fakeArchiver struct {
	keys []string
	err  error
}

func (a *fakeArchiver) Archive(_ context.Context, key, _ string, _ []byte) error {
	a.keys = append(a.keys, key)
	return a.err
}

func newLocker() *rowlock.Locker {
	return rowlock.New(kv.NewMemory(), time.Minute, zerolog.Nop())
}
