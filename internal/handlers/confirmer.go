package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/httpresp"
)

// requestConfirmer answers prompts with the reply the client sent along with
// the request. With no reply it declines and remembers the prompt so the
// handler can ask the client.
type requestConfirmer struct {
	answer *bool
	prompt string
}

func (r *requestConfirmer) Confirm(_ context.Context, message string) bool {
	r.prompt = message
	return r.answer != nil && *r.answer
}

func (r *requestConfirmer) asked() bool {
	return r.prompt != ""
}

// confirmFromQuery reads ?confirm=true|false. Anything unparsable is no reply.
func confirmFromQuery(c *gin.Context) *requestConfirmer {
	raw := c.Query("confirm")
	if raw == "" {
		return &requestConfirmer{}
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return &requestConfirmer{}
	}
	return &requestConfirmer{answer: &v}
}

// settle writes the response for a prompt that did not go ahead and reports
// whether it did so.
func (r *requestConfirmer) settle(c *gin.Context) bool {
	if !r.asked() {
		return false
	}
	if r.answer == nil {
		httperr.Write(c, http.StatusConflict, httperr.CodeConfirmationRequired, r.prompt)
		return true
	}
	if !*r.answer {
		httpresp.Cancelled(c)
		return true
	}
	return false
}
