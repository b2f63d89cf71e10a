package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	assert.True(t, httperr.IsBusiness(translate(gorm.ErrRecordNotFound), httperr.CodeNotFound))

	err := lookup(fmt.Errorf("first: %w", gorm.ErrRecordNotFound), appointmentNotFound)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	assert.EqualError(t, err, "Appointment not found")
	assert.Equal(t, "relation does not exist",
		httperr.StoreMessage(lookup(&pgconn.PgError{Message: "relation does not exist"}, appointmentNotFound), ""))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unique", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, "A patient with this email already exists"},
		{"foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), "Selected patient does not exist"},
		{"other pg", &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}, "relation does not exist"},
		{"plain", errors.New("connection refused"), "Failed to save"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err)
			assert.Equal(t, tt.want, httperr.StoreMessage(got, "Failed to save"))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestAffectedNamesMissingRow(t *testing.T) {
	err := affected(&gorm.DB{RowsAffected: 0}, patientNotFound)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	assert.EqualError(t, err, "Patient not found")

	assert.NoError(t, affected(&gorm.DB{RowsAffected: 1}, patientNotFound))

	err = affected(&gorm.DB{Error: errors.New("connection refused")}, patientNotFound)
	assert.Equal(t, "Failed", httperr.StoreMessage(err, "Failed"))
}
