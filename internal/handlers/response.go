package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondServiceError maps the typed error kinds onto transport codes.
func RespondServiceError(c *gin.Context, err error) {
	switch apierr.KindOf(err) {
	case apierr.KindNotFound:
		RespondError(c, http.StatusNotFound, "not_found", err)
	case apierr.KindConflict:
		RespondError(c, http.StatusConflict, "conflict", err)
	case apierr.KindUnavailable:
		RespondError(c, http.StatusServiceUnavailable, "unavailable", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

// pathID parses a uint path parameter, responding 400 on garbage input.
func pathID(c *gin.Context, name string) (uint, bool) {
	return parseID(c, c.Param(name))
}

// queryID does the same for raw query values.
func queryID(c *gin.Context, raw string) (uint, bool) {
	return parseID(c, raw)
}

func parseID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return 0, false
	}
	return uint(id), true
}
