package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/frontdesk/internal/domain/patient"
	"github.com/BruksfildServices01/frontdesk/internal/dto"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/httpresp"
	ucpatient "github.com/BruksfildServices01/frontdesk/internal/usecase/patient"
)

type PatientUseCases struct {
	List     *ucpatient.ListPatients
	Register *ucpatient.RegisterPatient
	Delete   *ucpatient.DeletePatient
	Clear    *ucpatient.ClearPatients
}

type PatientHandler struct {
	uc PatientUseCases
}

func NewPatientHandler(uc PatientUseCases) *PatientHandler {
	return &PatientHandler{uc: uc}
}

func (h *PatientHandler) List(c *gin.Context) {
	h.respondList(c)
}

func (h *PatientHandler) respondList(c *gin.Context) {
	patients, err := h.uc.List.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, ucpatient.FallbackLoad)
		return
	}
	httpresp.List(c, dto.Patients(patients))
}

func (h *PatientHandler) Register(c *gin.Context) {
	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body")
		return
	}

	err := h.uc.Register.Execute(c.Request.Context(), domain.Intake{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err, ucpatient.FallbackRegister)
		return
	}
	h.respondList(c)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, ucpatient.FallbackDelete)
		return
	}
	h.respondList(c)
}

func (h *PatientHandler) ClearAll(c *gin.Context) {
	conf := confirmFromQuery(c)
	if err := h.uc.Clear.Execute(c.Request.Context(), conf); err != nil {
		httperr.Respond(c, err, ucpatient.FallbackClear)
		return
	}
	if conf.settle(c) {
		return
	}
	h.respondList(c)
}
