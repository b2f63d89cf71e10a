package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/frontdesk/internal/dto"
	"github.com/BruksfildServices01/frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboard *dashboard.Dashboard
}

func NewDashboardHandler(d *dashboard.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: d}
}

type dashboardResponse struct {
	Patients     []dto.PatientDTO `json:"patients"`
	Appointments int              `json:"appointments"`
	Pending      int              `json:"pending"`
	Completed    int              `json:"completed"`
}

func newDashboardResponse(s dashboard.Snapshot) dashboardResponse {
	return dashboardResponse{
		Patients:     dto.Patients(s.Patients),
		Appointments: len(s.Appointments),
		Pending:      s.Pending,
		Completed:    s.Completed,
	}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	httpresp.OK(c, newDashboardResponse(h.dashboard.Snapshot(c.Request.Context())))
}
