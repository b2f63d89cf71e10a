package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
)

// Refresher re-fetches the full appointment collection from the store.
type Refresher interface {
	Appointments(ctx context.Context) ([]domain.Row, error)
}

// Archiver keeps a copy of every generated export.
type Archiver interface {
	Archive(ctx context.Context, key, contentType string, body []byte) error
}

// Store failure fallbacks, shown when the store gives no message.
const (
	FallbackBook   = "Failed to book appointment"
	FallbackSave   = "Failed to save changes"
	FallbackUpdate = "Failed to update status"
	FallbackDelete = "Failed to delete appointment"
	FallbackClear  = "Failed to clear appointments"
	FallbackLoad   = "Failed to load appointments"
)

// Confirmation prompts.
const (
	PromptConflict = "This patient already has an appointment at this time. Book anyway?"
	PromptDelete   = "Delete this appointment?"
	PromptClearAll = "Clear ALL appointments?"
)

const entity = "appointment"
