package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps err onto the error taxonomy. fallback is shown for store
// failures that carry no message of their own.
func Respond(c *gin.Context, err error, fallback string) {
	var be BusinessError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		switch be.Code {
		case CodeNotFound:
			if be.Message == "" {
				msg = "Record not found"
			}
			NotFound(c, be.Code, msg)
		case CodeRowBusy, CodeEmailTaken:
			Conflict(c, be.Code, msg)
		case CodeInvalidCredentials, CodeUnauthorized:
			Unauthorized(c, be.Code, msg)
		case CodeNothingToExport:
			Write(c, http.StatusUnprocessableEntity, be.Code, msg)
		default:
			BadRequest(c, be.Code, msg)
		}
		return
	}

	Write(c, http.StatusBadGateway, CodeStore, StoreMessage(err, fallback))
}
