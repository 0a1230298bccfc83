package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/application"
	"github.com/oksasatya/shopcart-api/pkg/response"
)

const (
	msgInvalidBody = "Invalid request body."
	msgInternal    = "internal server error"
)

var statusByKind = map[application.Kind]int{
	application.KindValidation:         http.StatusBadRequest,
	application.KindConflict:           http.StatusConflict,
	application.KindNotFound:           http.StatusNotFound,
	application.KindInvalidCredentials: http.StatusBadRequest,
	application.KindInvalidToken:       http.StatusBadRequest,
	application.KindUnauthenticated:    http.StatusUnauthorized,
	application.KindUnauthorized:       http.StatusForbidden,
	application.KindStorage:            http.StatusInternalServerError,
}

// writeError maps err to a status and a {message} body.
// Storage and unclassified errors are logged and never leak their detail.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	appErr, ok := asAppError(err)
	if !ok {
		logger.WithError(err).WithFields(requestFields(c)).Error("unhandled error")
		response.Error(c, http.StatusInternalServerError, msgInternal)
		return
	}
	status, known := statusByKind[appErr.Kind]
	if !known {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		logger.WithError(err).WithFields(requestFields(c)).Error("request failed")
		response.Error(c, status, msgInternal)
		return
	}
	response.Error(c, status, appErr.Message)
}

func asAppError(err error) (*application.Error, bool) {
	var appErr *application.Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func requestFields(c *gin.Context) logrus.Fields {
	return logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}
}
