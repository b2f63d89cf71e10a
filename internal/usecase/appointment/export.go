package appointment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/timezone"
)

const csvContentType = "text/csv; charset=utf-8"

type Export struct {
	FileName    string
	ContentType string
	Body        []byte
	Rows        int
}

type ExportAppointments struct {
	view     *ListView
	archiver Archiver
	clock    *timezone.Clock
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewExportAppointments(
	view *ListView,
	archiver Archiver,
	clock *timezone.Clock,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *ExportAppointments {
	return &ExportAppointments{
		view:     view,
		archiver: archiver,
		clock:    clock,
		audit:    audit,
		log:      log,
	}
}

// Execute builds the CSV from the filtered and sorted rows, ignoring
// pagination. An empty result is ErrNothingToExport.
func (uc *ExportAppointments) Execute(ctx context.Context, params domain.ViewParams) (*Export, error) {
	page, err := uc.view.Execute(ctx, params)
	if err != nil {
		return nil, err
	}

	body, err := domain.BuildCSV(page)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	out := &Export{
		FileName:    domain.ExportFileName(now),
		ContentType: csvContentType,
		Body:        body,
		Rows:        len(page.Filtered),
	}

	key := fmt.Sprintf("exports/appointments_%s_%d.csv", now.Format("2006-01-02"), now.Unix())
	if err := uc.archiver.Archive(ctx, key, csvContentType, body); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("export archive failed")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ActorFrom(ctx),
		Action:   "appointments_exported",
		Entity:   entity,
		Metadata: map[string]any{"rows": out.Rows, "file": out.FileName},
	})

	return out, nil
}
