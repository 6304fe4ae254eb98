package httperr

import (
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

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Business maps the known business error codes onto their HTTP status and
// writes the response. Unknown codes fall through to 500.
func Business(c *gin.Context, err error) {
	code := BusinessCode(err)
	switch code {
	case "unauthenticated", "invalid_credentials":
		Unauthorized(c, code, messageFor(code))
	case "forbidden":
		Forbidden(c, code, messageFor(code))
	case "not_found":
		NotFound(c, code, messageFor(code))
	case "slot_unavailable", "email_taken":
		Conflict(c, code, messageFor(code))
	case "invalid_date_or_time", "invalid_status", "invalid_state":
		BadRequest(c, code, messageFor(code))
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}

func messageFor(code string) string {
	switch code {
	case "unauthenticated":
		return "You must be logged in to do that."
	case "invalid_credentials":
		return "Invalid email or password."
	case "forbidden":
		return "You are not authorized to do that."
	case "not_found":
		return "Resource not found."
	case "slot_unavailable":
		return "This time slot is no longer available."
	case "email_taken":
		return "Email already in use."
	case "invalid_date_or_time":
		return "Invalid date or time."
	case "invalid_status":
		return "Invalid status."
	case "invalid_state":
		return "The appointment is not in a state that allows this."
	default:
		return "Something went wrong."
	}
}
