package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/pkg/response"
	"github.com/oksasatya/shopcart-api/pkg/validation"
)

// bindJSON decodes the JSON body; on failure it answers 400 and returns false.
func bindJSON(c *gin.Context, logger *logrus.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.WithFields(requestFields(c)).WithField("details", validation.ToDetails(err)).Debug("bad request body")
		response.Error(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}
