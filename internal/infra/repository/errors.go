package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const (
	appointmentNotFound = "Appointment not found"
	patientNotFound     = "Patient not found"
	userNotFound        = "User not found"
	recordNotFound      = "Record not found"
)

// translate maps driver errors onto the error taxonomy. Messages on the
// returned StoreError are shown to staff verbatim.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(recordNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return httperr.ErrStore("A patient with this email already exists", err)
		case pgForeignKeyViolation:
			return httperr.ErrStore("Selected patient does not exist", err)
		}
		return httperr.ErrStore(pgErr.Message, err)
	}

	return httperr.ErrStore("", err)
}

// lookup is translate for single-row reads, naming the missing record.
func lookup(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(notFound)
	}
	return translate(err)
}

// affected reports a write that matched no row as notFound.
func affected(res *gorm.DB, notFound string) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(notFound)
	}
	return nil
}
