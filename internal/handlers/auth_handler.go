package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/frontdesk/internal/dto"
	"github.com/BruksfildServices01/frontdesk/internal/httperr"
	"github.com/BruksfildServices01/frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/frontdesk/internal/middleware"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/dashboard"
	"github.com/BruksfildServices01/frontdesk/internal/usecase/session"
)

type AuthHandler struct {
	sessions  *session.Manager
	dashboard *dashboard.Dashboard
}

func NewAuthHandler(sessions *session.Manager, d *dashboard.Dashboard) *AuthHandler {
	return &AuthHandler{sessions: sessions, dashboard: d}
}

// signedIn is the session plus the dashboard the client lands on.
type signedIn struct {
	session.Session
	Dashboard dashboardResponse `json:"dashboard"`
}

func (h *AuthHandler) landing(c *gin.Context, s *session.Session) signedIn {
	return signedIn{Session: *s, Dashboard: newDashboardResponse(h.dashboard.Snapshot(c.Request.Context()))}
}

func bindCredentials(c *gin.Context) (dto.CredentialsRequest, bool) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body")
		return req, false
	}
	return req, true
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	s, err := h.sessions.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeEmailTaken) {
			httperr.Conflict(c, httperr.CodeEmailTaken, "An account with this email already exists")
			return
		}
		httperr.Respond(c, err, "Failed to sign up")
		return
	}
	httpresp.Created(c, h.landing(c, s))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	s, err := h.sessions.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Invalid email or password")
			return
		}
		httperr.Respond(c, err, "Failed to sign in")
		return
	}
	httpresp.OK(c, h.landing(c, s))
}

// Session reports the current session, if any. A missing or dead token is
// {"session":null}, not an error.
func (h *AuthHandler) Session(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}

	s, err := h.sessions.CurrentSession(c.Request.Context(), token)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeUnauthorized) {
			c.JSON(http.StatusOK, gin.H{"session": nil})
			return
		}
		httperr.Respond(c, err, "Failed to check session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if token, ok := middleware.BearerToken(c); ok {
		if err := h.sessions.SignOut(c.Request.Context(), token); err != nil {
			httperr.Respond(c, err, "Failed to sign out")
			return
		}
	}
	c.Status(http.StatusNoContent)
}
