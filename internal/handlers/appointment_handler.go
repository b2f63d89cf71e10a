package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/frontdesk/internal/dto"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/frontdesk/internal/rowlock"
	ucappointment "github.com/BruksfildServices01/frontdesk/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	View   *ucappointment.ListView
	Book   *ucappointment.BookAppointment
	Toggle *ucappointment.ToggleStatus
	Open   *ucappointment.OpenEdit
	Save   *ucappointment.SaveEdit
	Delete *ucappointment.DeleteAppointment
	Clear  *ucappointment.ClearAppointments
	Export *ucappointment.ExportAppointments
}

type AppointmentHandler struct {
	uc    AppointmentUseCases
	locks *rowlock.Locker
}

func NewAppointmentHandler(uc AppointmentUseCases, locks *rowlock.Locker) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, locks: locks}
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	h.respondPage(c, ucappointment.FallbackLoad)
}

// respondPage re-fetches the collection and answers with the page the query
// string asks for. Every mutation ends here.
func (h *AppointmentHandler) respondPage(c *gin.Context, fallback string) {
	ctx := c.Request.Context()

	page, err := h.uc.View.Execute(ctx, viewParams(c))
	if err != nil {
		httperr.Respond(c, err, fallback)
		return
	}

	httpresp.OK(c, dto.AppointmentPage(page, h.busy(ctx)))
}

func (h *AppointmentHandler) busy(ctx context.Context) dto.BusyFunc {
	return func(id uuid.UUID) bool { return h.locks.Busy(ctx, id) }
}

func (h *AppointmentHandler) Export(c *gin.Context) {
	out, err := h.uc.Export.Execute(c.Request.Context(), viewParams(c))
	if err != nil {
		httperr.Respond(c, err, "Failed to export appointments")
		return
	}
	httpresp.Attachment(c, out.FileName, out.ContentType, out.Body)
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body")
		return
	}

	// an unparsable id reads as no patient selected
	patientID, _ := uuid.Parse(req.PatientID)

	conf := confirmFromQuery(c)
	if req.ConfirmConflict != nil {
		conf = &requestConfirmer{answer: req.ConfirmConflict}
	}

	err := h.uc.Book.Execute(c.Request.Context(), domain.Booking{
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    req.Status,
	}, conf)
	if err != nil {
		httperr.Respond(c, err, ucappointment.FallbackBook)
		return
	}
	if conf.settle(c) {
		return
	}

	h.respondPage(c, ucappointment.FallbackLoad)
}

// ======================================================
// ROW ACTIONS
// ======================================================

func (h *AppointmentHandler) ToggleStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.Toggle.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, ucappointment.FallbackUpdate)
		return
	}
	h.respondPage(c, ucappointment.FallbackLoad)
}

type editForm struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Time   string    `json:"time"`
	Reason string    `json:"reason"`
}

func (h *AppointmentHandler) OpenEdit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	form, err := h.uc.Open.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, ucappointment.FallbackLoad)
		return
	}
	httpresp.OK(c, editForm{ID: id, Date: form.Date, Time: form.Time, Reason: form.Reason})
}

func (h *AppointmentHandler) SaveEdit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.EditAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body")
		return
	}

	err := h.uc.Save.Execute(c.Request.Context(), id, domain.Changes{
		Date:   req.Date,
		Time:   req.Time,
		Reason: req.Reason,
	})
	if err != nil {
		httperr.Respond(c, err, ucappointment.FallbackSave)
		return
	}
	h.respondPage(c, ucappointment.FallbackLoad)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	conf := confirmFromQuery(c)
	if err := h.uc.Delete.Execute(c.Request.Context(), id, conf); err != nil {
		httperr.Respond(c, err, ucappointment.FallbackDelete)
		return
	}
	if conf.settle(c) {
		return
	}
	h.respondPage(c, ucappointment.FallbackLoad)
}

func (h *AppointmentHandler) ClearAll(c *gin.Context) {
	conf := confirmFromQuery(c)
	if err := h.uc.Clear.Execute(c.Request.Context(), conf); err != nil {
		httperr.Respond(c, err, ucappointment.FallbackClear)
		return
	}
	if conf.settle(c) {
		return
	}
	h.respondPage(c, ucappointment.FallbackLoad)
}
