package httpresp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recorder() (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return w, c
}

func TestListNeverEncodesNull(t *testing.T) {
	w, c := recorder()
	List[string](c, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

func TestCancelled(t *testing.T) {
	w, c := recorder()
	Cancelled(c)

	assert.JSONEq(t, `{"cancelled":true}`, w.Body.String())
}

func TestAttachment(t *testing.T) {
	w, c := recorder()
	Attachment(c, "appointments_2024-01-05.csv", "text/csv", []byte("a,b"))

	assert.Equal(t, `attachment; filename="appointments_2024-01-05.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "a,b", w.Body.String())
}
