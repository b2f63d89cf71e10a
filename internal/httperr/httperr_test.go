package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, err, "fallback message")

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondMapsTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody HTTPError
	}{
		{"validation", ErrValidation("Enter a valid email"), http.StatusBadRequest, HTTPError{CodeValidation, "Enter a valid email"}},
		{"not found", ErrNotFound("Patient not found"), http.StatusNotFound, HTTPError{CodeNotFound, "Patient not found"}},
		{"not found without message", ErrBusiness(CodeNotFound), http.StatusNotFound, HTTPError{CodeNotFound, "Record not found"}},
		{"busy", BusinessError{Code: CodeRowBusy, Message: "busy"}, http.StatusConflict, HTTPError{CodeRowBusy, "busy"}},
		{"nothing to export", BusinessError{Code: CodeNothingToExport, Message: "No appointments to export."}, http.StatusUnprocessableEntity, HTTPError{CodeNothingToExport, "No appointments to export."}},
		{"wrapped business", fmt.Errorf("ctx: %w", ErrValidation("bad")), http.StatusBadRequest, HTTPError{CodeValidation, "bad"}},
		{"store with message", ErrStore("A patient with this email already exists", errors.New("23505")), http.StatusBadGateway, HTTPError{CodeStore, "A patient with this email already exists"}},
		{"plain error", errors.New("boom"), http.StatusBadGateway, HTTPError{CodeStore, "fallback message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := respond(t, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness(CodeRowBusy))
	assert.True(t, IsBusiness(err, CodeRowBusy))
	assert.False(t, IsBusiness(err, CodeNotFound))
	assert.False(t, IsBusiness(errors.New("x"), CodeRowBusy))
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("conn refused")
	err := ErrStore("Store unavailable", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Store unavailable", StoreMessage(err, "x"))
	assert.Equal(t, "x", StoreMessage(cause, "x"))
}
